// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/bwdebug"
	"github.com/lixenwraith/bwdebug/compat"
)

func main() {
	logger := bwdebug.NewLogger()
	err := logger.ApplyOverride(
		"primary_file=./logs/fasthttp.log",
		"secondary_file=./logs/fasthttp_errors.log",
		"show_caller=false",
	)
	if err != nil {
		panic(err)
	}

	// Errors go to the secondary file so they can be tailed separately
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithErrorStream(bwdebug.StreamSecondary),
		compat.WithSeverityDetector(customSeverityDetector),
	)

	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			logger.Section(fmt.Sprintf("**request#%s#%s", ctx.Method(), ctx.Path()))
			logger.Dump(map[string]string{
				"remote": ctx.RemoteAddr().String(),
				"agent":  string(ctx.UserAgent()),
			}, bwdebug.WithLabel("client"))
			ctx.SetContentType("text/plain")
			fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
		},
		Logger: fasthttpAdapter,

		Name:         "bwdebug-example",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	fmt.Println("Starting server on :8080, tail ./logs/fasthttp.log")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func customSeverityDetector(msg string) compat.Severity {
	if strings.Contains(msg, "connection cannot be served") {
		return compat.SeverityWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return compat.SeverityError
	}
	return compat.DetectSeverity(msg)
}
