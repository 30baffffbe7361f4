package impl

import (
	"reflect"

	"github.com/anoideaopen/reflection/core/meta"
	"github.com/anoideaopen/reflection/core/reflecterr"
	"github.com/anoideaopen/reflection/core/reflectx"
	"github.com/anoideaopen/reflection/core/telemetry"
)

// InvokeText calls the instance method name with arguments given as text and
// returns the encoded result. It is the entry point for callers that receive
// member names and arguments from outside the process.
//
// The overload is the first instance method called name with len(args)
// parameters whose arguments all decode; see reflectx for the decoding rules.
//
// Returns:
//   - []byte: The result encoded with reflectx.Encode: "null" for a method
//     without results, the value for one result, a JSON array for several.
//   - error: NullArgument("methodName"), MethodNotFound, ArgumentMismatch when
//     no overload accepts the arguments, or Invocation.
//
// Example:
//
//	out, err := b.InvokeText("Transfer", `{"group":"A"}`, "7")
func (b *Base) InvokeText(name string, args ...string) (result []byte, err error) {
	done := b.observe(telemetry.OperationInvokeText, name)
	defer func() { done(err) }()

	m, in, err := b.decodeText(name, args)
	if err != nil {
		return nil, err
	}

	value, err := b.invoke(m, in)
	if err != nil {
		return nil, err
	}

	return reflectx.Encode(value)
}

// CheckText resolves and decodes like InvokeText without calling the method.
func (b *Base) CheckText(name string, args ...string) (err error) {
	done := b.observe(telemetry.OperationCheckText, name)
	defer func() { done(err) }()

	_, _, err = b.decodeText(name, args)

	return err
}

func (b *Base) decodeText(name string, args []string) (meta.Method, []reflect.Value, error) {
	if name == "" {
		return nil, nil, reflecterr.NullArgument("methodName")
	}

	var first error
	for _, m := range meta.Instance(b.Type().Methods(name)) {
		if len(m.Params()) != len(args) {
			continue
		}

		in, err := reflectx.Arguments(m.Name(), m.Params(), args)
		if err == nil {
			return m, in, nil
		}
		if first == nil {
			first = err
		}
	}

	if first != nil {
		return nil, nil, first
	}

	return nil, nil, reflecterr.MethodNotFound("methodName", name)
}
