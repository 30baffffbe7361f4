package signature

import (
	"reflect"
	"strings"

	"github.com/anoideaopen/reflection/core/reflecterr"
)

// Signature is an ordered list of parameter type identities.
type Signature []reflect.Type

// String renders the signature as "(int, string)".
func (s Signature) String() string {
	names := make([]string, len(s))
	for i, t := range s {
		if t == nil {
			names[i] = "<nil>"
			continue
		}
		names[i] = t.String()
	}

	return "(" + strings.Join(names, ", ") + ")"
}

// Matches reports whether candidate is exactly paramList: same length and the
// identical type at every position. Assignable, convertible or implementing
// types do not match.
func Matches(paramList, candidate Signature) bool {
	if len(paramList) != len(candidate) {
		return false
	}

	for i := range paramList {
		if paramList[i] != candidate[i] {
			return false
		}
	}

	return true
}

// Of derives a signature from the runtime types of args. An untyped nil argument
// is absent, so it fails with KindArgumentTypeIndeterminate. Absent means the
// same as for IsNil: typed nil pointers, maps, slices, funcs and channels count
// too; pass their types explicitly instead.
//
// Parameters:
//   - args: The argument values. Must not be nil; use an empty slice for no arguments.
//
// Returns:
//   - Signature: The dynamic type of every argument, in order.
//   - error: NullArgument("parameters") for a nil slice, ArgumentTypeIndeterminate
//     for a nil element.
func Of(args []any) (Signature, error) {
	if args == nil {
		return nil, reflecterr.NullArgument("parameters")
	}

	sig := make(Signature, len(args))
	for i, arg := range args {
		if IsNil(arg) {
			return nil, reflecterr.ArgumentTypeIndeterminate("parameters", i)
		}
		sig[i] = reflect.TypeOf(arg)
	}

	return sig, nil
}

// TypesOf builds a signature from sample values. Unlike Of it never fails:
// nil samples produce nil entries, which match nothing.
func TypesOf(samples ...any) Signature {
	sig := make(Signature, len(samples))
	for i, sample := range samples {
		sig[i] = reflect.TypeOf(sample)
	}

	return sig
}

// For returns the type identity of T, including interface types.
func For[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Values converts args into call arguments for the parameter types of sig. It
// checks arity and assignability first, so reflect.Value.Call never panics on
// the result.
//
// Parameters:
//   - member: The member name, used in the error payload.
//   - sig: The parameter types of the resolved member.
//   - args: The argument values; nil is accepted for nillable parameter types.
//
// Returns:
//   - []reflect.Value: The call arguments.
//   - error: A KindArgumentMismatch error on count or type mismatch.
func Values(member string, sig Signature, args []any) ([]reflect.Value, error) {
	if len(sig) != len(args) {
		return nil, reflecterr.ParameterCountMismatch(member, len(sig), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		v, err := value(member, sig[i], arg)
		if err != nil {
			return nil, err
		}
		in[i] = v
	}

	return in, nil
}

func value(member string, t reflect.Type, arg any) (reflect.Value, error) {
	if arg == nil {
		if !nillable(t) {
			return reflect.Value{}, reflecterr.ArgumentMismatch(member, "<nil>", t.String())
		}
		return reflect.Zero(t), nil
	}

	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, reflecterr.ArgumentMismatch(member, v.Type().String(), t.String())
	}

	return v, nil
}

// IsNil reports whether v is absent: a nil interface or a nil pointer, map,
// slice, func, channel or interface value.
func IsNil(v any) bool {
	return isNil(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	if nillable(rv.Type()) {
		return rv.IsNil()
	}

	return false
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface,
		reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
