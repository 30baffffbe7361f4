package meta

import (
	"reflect"

	"github.com/anoideaopen/reflection/core/signature"
)

// Type is the query surface over a runtime type: its names, its members and its
// generic parameters. Lookups are by exact name and return nil or an empty
// slice when nothing matches.
type Type interface {
	// Name returns the simple name, e.g. "Template[T]" or "BaseClass".
	Name() string
	// FullName returns the name qualified with the package path.
	FullName() string
	// Identity returns the Go type this description is backed by, or nil for
	// synthesized types such as open templates.
	Identity() reflect.Type
	// Base returns the embedded base type, or nil.
	Base() Type
	// Methods returns the declared methods with the given name, overloads included.
	Methods(name string) []Method
	// Property returns the property with the given name, or nil.
	Property(name string) Property
	// Event returns the event with the given name, or nil.
	Event(name string) Event
	// TypeParameters returns the open generic parameters declared on the type.
	TypeParameters() []TypeParameter
}

// Resolver describes runtime types. *Registry is the default Resolver.
type Resolver interface {
	Resolve(t reflect.Type) Type
}

// Method is an invocable member.
type Method interface {
	Name() string
	// Params returns the parameter types, receiver excluded.
	Params() signature.Signature
	Results() []reflect.Type
	IsStatic() bool
	// Invoke calls the method on target. Static methods ignore target.
	// Arguments must already fit Params; a variadic parameter takes its slice.
	Invoke(target reflect.Value, args []reflect.Value) ([]reflect.Value, error)
}

// Property is a named value with optional accessors. A nil Getter or Setter
// means the accessor does not exist.
type Property interface {
	Name() string
	Type() reflect.Type
	Getter() Method
	Setter() Method
}

// Event is a named subscription point. AddMethod and RemoveMethod take a single
// argument of HandlerType.
type Event interface {
	Name() string
	HandlerType() reflect.Type
	AddMethod() Method
	RemoveMethod() Method
}

// Template is an open generic type that can be closed with type arguments.
type Template interface {
	Type
	// Instantiate binds args positionally to the type parameters. The caller
	// guarantees len(args) == len(TypeParameters()).
	Instantiate(args []Type) (Type, error)
}
