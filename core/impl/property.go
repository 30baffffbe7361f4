package impl

import (
	"fmt"

	"github.com/anoideaopen/reflection/core/meta"
	"github.com/anoideaopen/reflection/core/reflecterr"
	"github.com/anoideaopen/reflection/core/signature"
	"github.com/anoideaopen/reflection/core/telemetry"
)

const (
	accessorGet = "get"
	accessorSet = "set"
)

// GetProperty reads the property name of the wrapped object as a T.
//
// Returns NullArgument("propertyName"), PropertyNotFound,
// PropertyAccessorMissing(name, "get") for a write-only property, InvalidCast
// when the value is not a T, or Invocation when the getter fails.
func GetProperty[T any](b *Base, name string) (value T, err error) {
	done := b.observe(telemetry.OperationGetProperty, name)
	defer func() { done(err) }()

	getter, err := b.accessor(name, accessorGet)
	if err != nil {
		return value, err
	}

	result, err := b.call(getter, []any{})
	if err != nil {
		return value, err
	}

	if result == nil {
		return value, nil
	}

	value, ok := result.(T)
	if !ok {
		return value, reflecterr.InvalidCast(name, fmt.Sprintf("%T", result), signature.For[T]().String())
	}

	return value, nil
}

// SetProperty writes value to the property name of the wrapped object.
//
// Returns NullArgument("propertyName"), PropertyNotFound,
// PropertyAccessorMissing(name, "set") for a read-only property,
// ArgumentMismatch when a T cannot be assigned to the property, or Invocation
// when the setter fails.
func SetProperty[T any](b *Base, name string, value T) (err error) {
	done := b.observe(telemetry.OperationSetProperty, name)
	defer func() { done(err) }()

	setter, err := b.accessor(name, accessorSet)
	if err != nil {
		return err
	}

	_, err = b.call(setter, []any{value})

	return err
}

func (b *Base) accessor(name, which string) (meta.Method, error) {
	if name == "" {
		return nil, reflecterr.NullArgument("propertyName")
	}

	p := b.Type().Property(name)
	if p == nil {
		return nil, reflecterr.PropertyNotFound(name)
	}

	m := p.Getter()
	if which == accessorSet {
		m = p.Setter()
	}
	if m == nil {
		return nil, reflecterr.PropertyAccessorMissing(name, which)
	}

	return m, nil
}
