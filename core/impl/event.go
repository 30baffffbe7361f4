package impl

import (
	"reflect"

	"github.com/anoideaopen/reflection/core/event"
	"github.com/anoideaopen/reflection/core/meta"
	"github.com/anoideaopen/reflection/core/reflecterr"
	"github.com/anoideaopen/reflection/core/telemetry"
)

// AddEvent subscribes the handler owner's method handlerName, of the shape
// func(sender any, args T), to the event eventName of the wrapped object.
//
// Returns NullArgument("eventName"), EventNotFound, NullArgument("handlerName"),
// HandlerNotFound, HandlerTypeMismatch when the event does not take an
// event.Handler[T], or Invocation when subscribing fails.
//
// Example:
//
//	type Facade struct {
//	    *impl.Base
//	    clicks int
//	}
//
//	func (f *Facade) OnClick(_ any, _ ClickArgs) { f.clicks++ }
//
//	f := &Facade{}
//	f.Base, _ = impl.New(button, impl.WithHandlers(f))
//	err := impl.AddEvent[ClickArgs](f.Base, "Clicked", "OnClick")
func AddEvent[T any](b *Base, eventName, handlerName string) (err error) {
	done := b.observe(telemetry.OperationAddEvent, eventName)
	defer func() { done(err) }()

	e, h, err := bindHandler[T](b, eventName, handlerName)
	if err != nil {
		return err
	}

	_, err = b.call(e.AddMethod(), []any{h})

	return err
}

// RemoveEvent unsubscribes the handler AddEvent subscribed with the same names.
// It fails like AddEvent.
func RemoveEvent[T any](b *Base, eventName, handlerName string) (err error) {
	done := b.observe(telemetry.OperationRemoveEvent, eventName)
	defer func() { done(err) }()

	e, h, err := bindHandler[T](b, eventName, handlerName)
	if err != nil {
		return err
	}

	_, err = b.call(e.RemoveMethod(), []any{h})

	return err
}

func bindHandler[T any](b *Base, eventName, handlerName string) (meta.Event, event.Handler[T], error) {
	var zero event.Handler[T]

	if eventName == "" {
		return nil, zero, reflecterr.NullArgument("eventName")
	}

	e := b.Type().Event(eventName)
	if e == nil {
		return nil, zero, reflecterr.EventNotFound(eventName)
	}

	if handlerName == "" {
		return nil, zero, reflecterr.NullArgument("handlerName")
	}

	h, err := event.Bind[T](b.registry, b.handlers, handlerName)
	if err != nil {
		return nil, zero, err
	}

	if handlerType := reflect.TypeOf(h); e.HandlerType() != handlerType {
		return nil, zero, reflecterr.HandlerTypeMismatch(eventName, handlerType.String(), e.HandlerType().String())
	}

	return e, h, nil
}
