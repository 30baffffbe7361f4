package meta

import (
	"sort"

	"github.com/anoideaopen/reflection/core/reflecterr"
	"github.com/anoideaopen/reflection/core/signature"
	"github.com/anoideaopen/reflection/core/stringsx"
)

// Instance keeps the non-static methods.
func Instance(methods []Method) []Method {
	var result []Method
	for _, m := range methods {
		if !m.IsStatic() {
			result = append(result, m)
		}
	}

	return result
}

// WithSignature keeps the methods whose parameter list is exactly sig.
//
// Returns:
//   - []Method: The matching methods, in order.
//   - error: NullArgument("parameterTypes") if sig is nil.
func WithSignature(methods []Method, sig signature.Signature) ([]Method, error) {
	if sig == nil {
		return nil, reflecterr.NullArgument("parameterTypes")
	}

	var result []Method
	for _, m := range methods {
		if signature.Matches(m.Params(), sig) {
			result = append(result, m)
		}
	}

	return result, nil
}

// LookupMethod finds the instance method of t called name whose parameter list
// is exactly sig. The first match wins; a nil Method with a nil error means
// nothing matched.
//
// Parameters:
//   - t: The type to search. Must not be nil.
//   - name: The method name, matched exactly.
//   - sig: The parameter types. Must not be nil; use an empty signature for none.
//
// Returns:
//   - Method: The resolved method, or nil.
//   - error: NullArgument("type") or NullArgument("parameterTypes").
func LookupMethod(t Type, name string, sig signature.Signature) (Method, error) {
	if t == nil {
		return nil, reflecterr.NullArgument("type")
	}

	matched, err := WithSignature(Instance(t.Methods(name)), sig)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, nil
	}

	return matched[0], nil
}

// LookupProperty finds the property of t called name, or returns nil.
func LookupProperty(t Type, name string) (Property, error) {
	if t == nil {
		return nil, reflecterr.NullArgument("type")
	}

	return t.Property(name), nil
}

// BaseType returns the base of t, or nil.
func BaseType(t Type) (Type, error) {
	if t == nil {
		return nil, reflecterr.NullArgument("type")
	}

	return t.Base(), nil
}

// MethodNames lists the exported method names of the Go type behind t, sorted.
// Accessor and event methods are listed too; declared members are not.
func MethodNames(t Type) []string {
	if t == nil || t.Identity() == nil {
		return nil
	}

	rt := t.Identity()
	names := make([]string, 0, rt.NumMethod())
	for i := 0; i < rt.NumMethod(); i++ {
		names = append(names, rt.Method(i).Name)
	}
	sort.Strings(names)

	return names
}

// PropertyNames lists the property names reachable through the native accessor
// convention on the Go type behind t, sorted.
func PropertyNames(t Type) []string {
	if t == nil || t.Identity() == nil {
		return nil
	}

	seen := make(map[string]struct{})
	for _, name := range MethodNames(t) {
		candidate, _ := stringsx.TrimMemberPrefix(name, setterPrefix, getterPrefix)
		if t.Property(candidate) != nil {
			seen[candidate] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
