// FILE: example/gnet/main.go
package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/lixenwraith/bwdebug"
	"github.com/lixenwraith/bwdebug/compat"
)

// echoServer dumps every received payload before echoing it back
type echoServer struct {
	gnet.BuiltinEventEngine
	logger *bwdebug.Logger
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	es.logger.Dump(string(buf), bwdebug.WithLabel(c.RemoteAddr().String()))
	c.Write(buf)
	return gnet.None
}

func main() {
	logger, err := bwdebug.NewBuilder().
		Directory("./logs/gnet").
		OutputMethod(bwdebug.MethodDump).
		Build()
	if err != nil {
		panic(err)
	}

	// Engine messages go to the secondary file, traffic to the primary
	gnetAdapter := compat.NewGnetAdapter(logger, compat.WithGnetStream(bwdebug.StreamSecondary))

	err = gnet.Run(
		&echoServer{logger: logger},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
