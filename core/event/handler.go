package event

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/reflection/core/meta"
	"github.com/anoideaopen/reflection/core/reflecterr"
	"github.com/anoideaopen/reflection/core/signature"
)

var errorType = signature.For[error]()

// Handler is a method bound to its receiver, the Go form of an event delegate
// with the shape func(sender any, args T). Two handlers are equal when they
// share the receiver, the method name and the registry, so a Handler bound twice
// the same way removes the subscription made by the first one.
//
// The method is resolved again on every Invoke.
type Handler[T any] struct {
	target   any
	method   string
	registry *meta.Registry
}

// NewHandler binds the exported method of target called method.
func NewHandler[T any](target any, method string) (Handler[T], error) {
	return Bind[T](nil, target, method)
}

// Bind binds the method of target called method, resolving it through reg.
// Declared methods make unexported handlers reachable.
//
// Parameters:
//   - reg: The registry to resolve through; nil uses reflection only.
//   - target: The receiver. Must be a non-nil pointer.
//   - method: The method name. The method must accept (any, T) and return
//     nothing or an error.
//
// Returns:
//   - Handler[T]: The bound handler.
//   - error: NullArgument("target"), HandlerNotFound(method) if no method with
//     that name and shape exists, HandlerTypeMismatch for a non-pointer target.
func Bind[T any](reg *meta.Registry, target any, method string) (Handler[T], error) {
	if signature.IsNil(target) {
		return Handler[T]{}, reflecterr.NullArgument("target")
	}

	t := reflect.TypeOf(target)
	if t.Kind() != reflect.Pointer {
		return Handler[T]{}, reflecterr.HandlerTypeMismatch(method, t.String(), "pointer receiver")
	}

	h := Handler[T]{
		target:   target,
		method:   method,
		registry: reg,
	}
	if _, err := h.resolve(); err != nil {
		return Handler[T]{}, err
	}

	return h, nil
}

// Signature returns the parameter list every handler of T accepts.
func Signature[T any]() signature.Signature {
	return signature.Signature{signature.For[any](), signature.For[T]()}
}

// Target returns the receiver.
func (h Handler[T]) Target() any {
	return h.target
}

// Method returns the bound method name.
func (h Handler[T]) Method() string {
	return h.method
}

// IsZero reports whether h is unbound.
func (h Handler[T]) IsZero() bool {
	return h.target == nil
}

func (h Handler[T]) String() string {
	if h.IsZero() {
		return "<unbound>"
	}

	return fmt.Sprintf("%T.%s", h.target, h.method)
}

// Invoke calls the handler with sender and args and returns the error the
// handler returned, if any.
func (h Handler[T]) Invoke(sender any, args T) error {
	if h.IsZero() {
		return reflecterr.HandlerNotFound(h.method)
	}

	m, err := h.resolve()
	if err != nil {
		return err
	}

	out, err := m.Invoke(reflect.ValueOf(h.target), []reflect.Value{
		reflect.ValueOf(&sender).Elem(),
		reflect.ValueOf(&args).Elem(),
	})
	if err != nil {
		return err
	}
	if len(out) == 1 && !out[0].IsNil() {
		return out[0].Interface().(error)
	}

	return nil
}

func (h Handler[T]) resolve() (meta.Method, error) {
	m, err := meta.LookupMethod(h.registry.Resolve(reflect.TypeOf(h.target)), h.method, Signature[T]())
	if err != nil {
		return nil, err
	}
	if m == nil || !returnsNothingOrError(m.Results()) {
		return nil, reflecterr.HandlerNotFound(h.method)
	}

	return m, nil
}

func returnsNothingOrError(results []reflect.Type) bool {
	return len(results) == 0 || (len(results) == 1 && results[0] == errorType)
}
