package impl

import (
	"github.com/anoideaopen/reflection/core/meta"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Base.
type Option func(b *Base)

// WithRegistry resolves the wrapped type and the handler owner through r, so
// declared overloads, properties, events and unexported handlers are visible.
func WithRegistry(r *meta.Registry) Option {
	return func(b *Base) {
		b.registry = r
	}
}

// WithResolver describes the wrapped type through r instead of the registry.
// The registry still resolves the handler owner.
func WithResolver(r meta.Resolver) Option {
	return func(b *Base) {
		b.resolver = r
	}
}

// WithHandlers sets the object whose methods AddEvent and RemoveEvent bind as
// handlers. A type embedding *Base passes itself. Defaults to the Base.
func WithHandlers(owner any) Option {
	return func(b *Base) {
		b.handlers = owner
	}
}

// WithLogger sets the logger. Defaults to logger.Logger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Base) {
		b.log = l
	}
}

// WithTracer sets the tracer. Defaults to the module tracer of the global
// provider.
func WithTracer(t trace.Tracer) Option {
	return func(b *Base) {
		b.tracer = t
	}
}
