package impl

import (
	"reflect"

	"github.com/anoideaopen/reflection/core/reflecterr"
	"github.com/anoideaopen/reflection/core/signature"
	"github.com/anoideaopen/reflection/core/telemetry"
)

// ExecuteFunction calls the instance method name whose parameter list is
// exactly paramTypes and returns its result.
//
// Parameters:
//   - name: The method name. Must not be empty.
//   - paramTypes: The parameter types selecting the overload. Must not be nil;
//     use an empty slice for a method without parameters.
//   - args: The arguments, one per parameter. nil means no arguments.
//
// Returns:
//   - any: nil for a method without results, the value for one result, []any
//     for several. A trailing error result is not part of the value.
//   - error: NullArgument("functionName"), NullArgument("parameterTypes"),
//     MethodNotFound, ArgumentMismatch, or Invocation wrapping the error the
//     method returned.
//
// Example:
//
//	v, err := b.ExecuteFunction("Function", []reflect.Type{reflect.TypeOf(0)}, []any{42})
func (b *Base) ExecuteFunction(name string, paramTypes []reflect.Type, args []any) (result any, err error) {
	done := b.observe(telemetry.OperationExecuteFunction, name)
	defer func() { done(err) }()

	m, err := b.method("functionName", name, paramTypes)
	if err != nil {
		return nil, err
	}

	return b.call(m, args)
}

// ExecuteMethod calls the instance method name, selecting the overload from the
// runtime types of args, and discards its result. Every argument must be
// non-nil; pass the types explicitly with ExecuteMethodWithTypes otherwise.
//
// Returns NullArgument("parameters") for nil args, NullArgument("methodName"),
// ArgumentTypeIndeterminate for a nil argument, MethodNotFound, or Invocation.
func (b *Base) ExecuteMethod(name string, args []any) (err error) {
	done := b.observe(telemetry.OperationExecuteMethod, name)
	defer func() { done(err) }()

	if args == nil {
		return reflecterr.NullArgument("parameters")
	}
	if name == "" {
		return reflecterr.NullArgument("methodName")
	}

	sig, err := signature.Of(args)
	if err != nil {
		return err
	}

	m, err := b.method("methodName", name, sig)
	if err != nil {
		return err
	}

	_, err = b.call(m, args)

	return err
}

// ExecuteMethodWithTypes calls the instance method name whose parameter list is
// exactly paramTypes and discards its result. Arguments may be nil where the
// parameter type allows it.
func (b *Base) ExecuteMethodWithTypes(name string, paramTypes []reflect.Type, args []any) (err error) {
	done := b.observe(telemetry.OperationExecuteMethod, name)
	defer func() { done(err) }()

	if args == nil {
		return reflecterr.NullArgument("parameters")
	}

	m, err := b.method("methodName", name, paramTypes)
	if err != nil {
		return err
	}

	_, err = b.call(m, args)

	return err
}
