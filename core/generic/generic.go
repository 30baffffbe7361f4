package generic

import (
	"strings"

	"github.com/anoideaopen/reflection/core/meta"
	"github.com/anoideaopen/reflection/core/reflecterr"
	"github.com/anoideaopen/reflection/core/stringsx"
)

// Close binds typeArguments positionally to the parameters of the open type.
//
// Parameters:
//   - open: An open generic type, usually a *meta.GenericType.
//   - typeArguments: One argument per declared parameter. Must not be nil.
//
// Returns:
//   - meta.Type: The closed type. Its full name embeds every argument in order.
//   - error: NullArgument("typeArguments"), TemplateArityMismatch on a count
//     mismatch, NotGenericDefinition if open has no parameters and none were
//     provided.
//
// Example:
//
//	tmpl := meta.NewTemplate("example.com/p", "Template", meta.Param("T"))
//	_, err := generic.Close(tmpl, []meta.Type{base, base})
//	// err: Type arguments to close example.com/p.Template[T] generic type are
//	// (<T>), while provided (example.com/p.BaseClass, example.com/p.BaseClass).
//	// Array counts mismatch (1 != 2)
func Close(open meta.Type, typeArguments []meta.Type) (meta.Type, error) {
	if open == nil {
		return nil, reflecterr.NullArgument("type")
	}
	if typeArguments == nil {
		return nil, reflecterr.NullArgument("typeArguments")
	}

	count := ParameterCount(open)
	if len(typeArguments) != count {
		return nil, meta.ArityMismatch(open, typeArguments)
	}

	tmpl, ok := open.(meta.Template)
	if !ok || count == 0 {
		return nil, reflecterr.NotGenericDefinition(open.FullName())
	}

	return tmpl.Instantiate(typeArguments)
}

// ParameterCount returns the number of open parameters declared on t.
func ParameterCount(t meta.Type) int {
	return len(Parameters(t))
}

// Parameters returns the open parameters declared on t, in order.
func Parameters(t meta.Type) []meta.TypeParameter {
	if t == nil {
		return nil
	}

	return t.TypeParameters()
}

// IsContravariant reports whether p is an input-only parameter.
func IsContravariant(p meta.TypeParameter) bool {
	return p.Variance == meta.Contravariant
}

// NonGenericName returns the simple name of an open generic type without its
// parameter list. Types without open parameters, closed instantiations
// included, keep their name unchanged.
func NonGenericName(t meta.Type) string {
	if t == nil {
		return ""
	}
	if ParameterCount(t) == 0 {
		return t.Name()
	}

	return stringsx.StripTypeArguments(t.Name())
}

// ParameterizedName renders t closed over a single argument, marking an input
// parameter with "in ": IContravariantInterface{in BaseClass}. Only the first
// type parameter decides the marker.
func ParameterizedName(t meta.Type, templateArgument meta.Type) (string, error) {
	if templateArgument == nil {
		return "", reflecterr.NullArgument("templateArgument")
	}

	params := Parameters(t)
	if len(params) == 0 {
		return NonGenericName(t), nil
	}

	var b strings.Builder
	b.WriteString(NonGenericName(t))
	b.WriteByte('{')
	if IsContravariant(params[0]) {
		b.WriteString("in ")
	}
	b.WriteString(templateArgument.Name())
	b.WriteByte('}')

	return b.String(), nil
}
