package sql

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// Context of a planning or execution operation. Carries the engine
// settings, the tracer, the logger and the process wide compiled
// expression cache.
type Context struct {
	context.Context
	Settings Settings
	// CompiledExpressionCache is shared between all DAGs built with this
	// context. May be nil.
	CompiledExpressionCache KeyValueCache

	tracer opentracing.Tracer
	logger *logrus.Entry
}

// ContextOption is a function to configure the context.
type ContextOption func(*Context)

// WithTracer returns an option to set the tracer of the context.
func WithTracer(t opentracing.Tracer) ContextOption {
	return func(ctx *Context) {
		ctx.tracer = t
	}
}

// WithLogger returns an option to set the logger of the context.
func WithLogger(l *logrus.Entry) ContextOption {
	return func(ctx *Context) {
		ctx.logger = l
	}
}

// WithSettings returns an option to set the settings of the context.
func WithSettings(s Settings) ContextOption {
	return func(ctx *Context) {
		ctx.Settings = s
	}
}

// WithCompiledExpressionCache returns an option to set the compiled
// expression cache of the context.
func WithCompiledExpressionCache(c KeyValueCache) ContextOption {
	return func(ctx *Context) {
		ctx.CompiledExpressionCache = c
	}
}

// NewContext creates a new context. Options can be passed to configure it.
// By default the context has default settings, a noop tracer, no cache and
// a logger derived from the standard logger.
func NewContext(ctx context.Context, opts ...ContextOption) *Context {
	c := &Context{
		Context:  ctx,
		Settings: DefaultSettings(),
		tracer:   opentracing.NoopTracer{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewEmptyContext returns a default context with default values.
func NewEmptyContext() *Context { return NewContext(context.TODO()) }

// Span creates a new tracing span with the given context.
// It will return the span and a new context that should be passed to all
// children of this span.
func (c *Context) Span(
	opName string,
	opts ...opentracing.StartSpanOption,
) (opentracing.Span, *Context) {
	parentSpan := opentracing.SpanFromContext(c.Context)
	if parentSpan != nil {
		opts = append(opts, opentracing.ChildOf(parentSpan.Context()))
	}
	span := c.tracer.StartSpan(opName, opts...)
	ctx := opentracing.ContextWithSpan(c.Context, span)

	return span, c.WithContext(ctx)
}

// WithContext returns a new context with the given underlying context.
func (c *Context) WithContext(ctx context.Context) *Context {
	nc := *c
	nc.Context = ctx
	return &nc
}

// Logger returns the logger of this context, deriving one from the
// standard logger the first time it is needed.
func (c *Context) Logger() *logrus.Entry {
	if c.logger == nil {
		c.logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return c.logger
}
