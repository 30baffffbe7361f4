package impl

import (
	"context"
	"errors"
	"reflect"

	"github.com/anoideaopen/reflection/core/logger"
	"github.com/anoideaopen/reflection/core/meta"
	"github.com/anoideaopen/reflection/core/reflecterr"
	"github.com/anoideaopen/reflection/core/signature"
	"github.com/anoideaopen/reflection/core/telemetry"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// Base wraps an object and reaches its members by name. It is meant to be
// embedded by a typed facade, so that code using the facade does not depend on
// the wrapped object's package:
//
//	type Plugin struct {
//	    *impl.Base
//	}
//
//	func (p *Plugin) Start(port int) error {
//	    return p.ExecuteMethod("Start", []any{port})
//	}
//
// Every operation resolves its member again from the type metadata, checks all
// inputs before invoking anything and returns a *reflecterr.Error on failure.
// Base adds no locking; concurrent use is as safe as the wrapped object.
type Base struct {
	id       string
	instance any
	value    reflect.Value
	registry *meta.Registry
	resolver meta.Resolver
	handlers any
	log      logrus.FieldLogger
	tracer   trace.Tracer
}

// New wraps instance.
//
// Parameters:
//   - instance: The object to wrap. A nil interface or nil pointer is absent.
//   - opts: Registry, handler owner, logger and tracer options.
//
// Returns:
//   - *Base: The wrapper.
//   - error: NullArgument("impl") when instance is absent.
func New(instance any, opts ...Option) (*Base, error) {
	if signature.IsNil(instance) {
		return nil, reflecterr.NullArgument("impl")
	}

	b := &Base{
		id:       uuid.NewString(),
		instance: instance,
		value:    reflect.ValueOf(instance),
	}
	for _, opt := range opts {
		opt(b)
	}

	if signature.IsNil(b.handlers) {
		b.handlers = b
	}
	if b.log == nil {
		b.log = logger.Logger()
	}
	if b.tracer == nil {
		b.tracer = telemetry.Tracer()
	}

	b.log = b.log.WithFields(logrus.Fields{
		"wrapper_id": b.id,
		"type":       b.Type().FullName(),
	})

	return b, nil
}

// ID returns the identifier the wrapper logs and traces with.
func (b *Base) ID() string {
	return b.id
}

// Instance returns the wrapped object.
func (b *Base) Instance() any {
	return b.instance
}

// Type describes the wrapped object's type.
func (b *Base) Type() meta.Type {
	if b.resolver != nil {
		return b.resolver.Resolve(b.value.Type())
	}

	return b.registry.Resolve(b.value.Type())
}

// observe opens a span for one operation. The returned func logs the outcome
// and ends the span.
func (b *Base) observe(op telemetry.Operation, member string) func(err error) {
	_, span := telemetry.StartSpan(context.Background(), b.tracer, op, member,
		telemetry.WrapperID(b.id),
		telemetry.TypeName(b.Type().FullName()),
	)

	return func(err error) {
		entry := b.log.WithFields(logrus.Fields{
			"operation": op.String(),
			"member":    member,
		})
		if err != nil {
			entry.WithError(err).Debug("operation failed")
		} else {
			entry.Debug("operation completed")
		}

		telemetry.EndSpan(span, err)
	}
}

// method resolves the instance method name with exactly the parameter types
// sig. param names the argument that carried name.
func (b *Base) method(param, name string, sig signature.Signature) (meta.Method, error) {
	if name == "" {
		return nil, reflecterr.NullArgument(param)
	}
	if sig == nil {
		return nil, reflecterr.NullArgument("parameterTypes")
	}

	m, err := meta.LookupMethod(b.Type(), name, sig)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, reflecterr.MethodNotFound(param, name)
	}

	return m, nil
}

// call converts args to m's parameter types and invokes m.
func (b *Base) call(m meta.Method, args []any) (any, error) {
	in, err := signature.Values(m.Name(), m.Params(), args)
	if err != nil {
		return nil, err
	}

	return b.invoke(m, in)
}

// invoke calls m on the wrapped object and applies the return value policy: a
// trailing error result becomes an Invocation error, no other result gives nil,
// one gives the value, several give []any.
func (b *Base) invoke(m meta.Method, in []reflect.Value) (any, error) {
	out, err := m.Invoke(b.value, in)
	if err != nil {
		var re *reflecterr.Error
		if errors.As(err, &re) {
			return nil, err
		}
		return nil, reflecterr.Invocation(m.Name(), err)
	}

	if n := len(out); n > 0 && m.Results()[n-1] == errorType {
		if last := out[n-1]; !last.IsNil() {
			return nil, reflecterr.Invocation(m.Name(), last.Interface().(error))
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		values := make([]any, len(out))
		for i, v := range out {
			values[i] = v.Interface()
		}
		return values, nil
	}
}

var errorType = signature.For[error]()
