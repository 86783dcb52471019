// FILE: lixenwraith/bwdebug/compat/builder.go
package compat

import (
	"fmt"

	"github.com/lixenwraith/bwdebug"
)

// Builder provides a flexible way to create configured logger adapters for gnet, fasthttp and Fiber
// It can use an existing *bwdebug.Logger instance or create a new one from a *bwdebug.Config
type Builder struct {
	logger *bwdebug.Logger
	cfg    *bwdebug.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters
// If this is set WithConfig is ignored
func (b *Builder) WithLogger(l *bwdebug.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("bwdebug/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance
// This is used only if an existing logger is NOT provided via WithLogger
// If neither WithLogger nor WithConfig is used, the package default logger is used
func (b *Builder) WithConfig(cfg *bwdebug.Config) *Builder {
	b.cfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*bwdebug.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	if b.cfg == nil {
		b.logger = bwdebug.Default()
		return b.logger, nil
	}

	l := bwdebug.NewLogger()
	if err := l.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// BuildFiber creates a Fiber v2.54.x adapter
func (b *Builder) BuildFiber(opts ...FiberOption) (*FiberAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFiberAdapter(l, opts...), nil
}

// GetLogger returns the underlying *bwdebug.Logger instance
func (b *Builder) GetLogger() (*bwdebug.Logger, error) {
	return b.getLogger()
}

// --- Example Usage ---
//
//	appLogger, err := bwdebug.NewBuilder().Directory("./logs").Build()
//	if err != nil { /* handle error */ }
//
//	builder := compat.NewBuilder().WithLogger(appLogger)
//
//	gnetLogger, _ := builder.BuildGnet(compat.WithGnetStream(bwdebug.StreamSecondary))
//	fasthttpLogger, _ := builder.BuildFastHTTP(compat.WithErrorStream(bwdebug.StreamSecondary))
//
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	server := &fasthttp.Server{Handler: handler, Logger: fasthttpLogger}
//	go server.ListenAndServe(":8080")
