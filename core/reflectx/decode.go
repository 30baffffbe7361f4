package reflectx

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/anoideaopen/reflection/core/reflecterr"
	"github.com/anoideaopen/reflection/core/signature"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// ErrNoDecoder is the cause of a decode failure when no decoder applies to the
// target type.
var ErrNoDecoder = errors.New("no decoder")

// decoder fills ptr from raw. applies reports whether the decoder can handle
// ptr and raw at all; decoders that do not apply are skipped silently.
type decoder struct {
	name    string
	applies func(ptr any, raw []byte) bool
	decode  func(ptr any, raw []byte) error
}

// decoders are tried in order; the first success wins.
var decoders = []decoder{
	{
		name: "protojson",
		applies: func(ptr any, raw []byte) bool {
			_, ok := ptr.(proto.Message)
			return ok && json.Valid(raw)
		},
		decode: func(ptr any, raw []byte) error {
			return protojson.Unmarshal(raw, ptr.(proto.Message))
		},
	},
	{
		name: "json",
		applies: func(ptr any, raw []byte) bool {
			_, ok := ptr.(proto.Message)
			return !ok && json.Valid(raw)
		},
		decode: func(ptr any, raw []byte) error {
			return json.Unmarshal(raw, ptr)
		},
	},
	{
		name: "text",
		applies: func(ptr any, _ []byte) bool {
			_, ok := ptr.(encoding.TextUnmarshaler)
			return ok
		},
		decode: func(ptr any, raw []byte) error {
			return ptr.(encoding.TextUnmarshaler).UnmarshalText(raw)
		},
	},
	{
		name: "bytes",
		applies: func(ptr any, _ []byte) bool {
			_, ok := ptr.(BytesDecoder)
			return ok
		},
		decode: func(ptr any, raw []byte) error {
			return ptr.(BytesDecoder).DecodeFromBytes(raw)
		},
	},
	{
		name: "proto",
		applies: func(ptr any, _ []byte) bool {
			_, ok := ptr.(proto.Message)
			return ok
		},
		decode: func(ptr any, raw []byte) error {
			return proto.Unmarshal(raw, ptr.(proto.Message))
		},
	},
	{
		name: "binary",
		applies: func(ptr any, _ []byte) bool {
			_, ok := ptr.(encoding.BinaryUnmarshaler)
			return ok
		},
		decode: func(ptr any, raw []byte) error {
			return ptr.(encoding.BinaryUnmarshaler).UnmarshalBinary(raw)
		},
	},
}

// Decode converts the text s to a value of type t. Strings and string pointers
// take s as is; every other type goes through the decoders in order: protojson
// or json for valid JSON, then TextUnmarshaler, BytesDecoder, proto wire format
// and BinaryUnmarshaler.
//
// A failure is ArgumentMismatch. Its cause joins the error of every decoder
// tried, each prefixed with the decoder name, or is ErrNoDecoder when none
// applied.
func Decode(member, s string, t reflect.Type) (reflect.Value, error) {
	if t.Kind() == reflect.String {
		return reflect.ValueOf(s).Convert(t), nil
	}

	// Each attempt gets a fresh target so a partial decode does not leak into
	// the next one.
	alloc := func() (any, reflect.Value) {
		if t.Kind() == reflect.Pointer {
			ptr := reflect.New(t.Elem())
			return ptr.Interface(), ptr
		}
		ptr := reflect.New(t)
		return ptr.Interface(), ptr.Elem()
	}

	if t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.String {
		_, out := alloc()
		out.Elem().SetString(s)
		return out, nil
	}

	raw := []byte(s)

	var failures []error
	for _, dec := range decoders {
		ptr, out := alloc()
		if !dec.applies(ptr, raw) {
			continue
		}
		err := dec.decode(ptr, raw)
		if err == nil {
			return out, nil
		}
		failures = append(failures, fmt.Errorf("%s: %w", dec.name, err))
	}

	mismatch := reflecterr.ArgumentMismatch(member, "string", t.String())
	mismatch.Cause = errors.Join(failures...)
	if len(failures) == 0 {
		mismatch.Cause = fmt.Errorf("%w for '%s'", ErrNoDecoder, t.String())
	}

	return reflect.Value{}, mismatch
}

// Arguments decodes args against the parameter list sig and validates every
// decoded value that implements Validator.
//
// Returns ParameterCountMismatch, ArgumentMismatch from Decode, or
// ArgumentMismatch with the validation error as the cause.
func Arguments(member string, sig signature.Signature, args []string) ([]reflect.Value, error) {
	if len(sig) != len(args) {
		return nil, reflecterr.ParameterCountMismatch(member, len(sig), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		v, err := Decode(member, arg, sig[i])
		if err != nil {
			return nil, err
		}

		if err = validate(v); err != nil {
			mismatch := reflecterr.ArgumentMismatch(member, "string", sig[i].String())
			mismatch.Cause = fmt.Errorf("argument %d: validation failed: %w", i, err)
			return nil, mismatch
		}

		in[i] = v
	}

	return in, nil
}

func validate(v reflect.Value) error {
	if !v.CanInterface() {
		return nil
	}
	if validator, ok := v.Interface().(Validator); ok {
		return validator.Validate()
	}
	if v.CanAddr() {
		if validator, ok := v.Addr().Interface().(Validator); ok {
			return validator.Validate()
		}
	}

	return nil
}
