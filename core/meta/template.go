package meta

import (
	"reflect"
	"strings"
	"sync"

	"github.com/anoideaopen/reflection/core/reflecterr"
	"github.com/anoideaopen/reflection/core/signature"
)

// Variance is the declared variance of a generic type parameter.
type Variance int

const (
	Invariant Variance = iota
	Covariant
	Contravariant
)

func (v Variance) String() string {
	switch v {
	case Invariant:
		return "invariant"
	case Covariant:
		return "covariant"
	case Contravariant:
		return "contravariant"
	default:
		return "unknown"
	}
}

// Keyword returns the declaration keyword of the variance: "out", "in" or "".
func (v Variance) Keyword() string {
	switch v {
	case Covariant:
		return "out"
	case Contravariant:
		return "in"
	default:
		return ""
	}
}

// TypeParameter describes one open parameter of a generic type.
type TypeParameter struct {
	Name     string
	Position int
	Variance Variance
}

// Placeholder renders the parameter as it appears in arity errors, e.g. "<T>".
func (p TypeParameter) Placeholder() string {
	return "<" + p.Name + ">"
}

// Param declares an invariant type parameter.
func Param(name string) TypeParameter {
	return TypeParameter{Name: name, Variance: Invariant}
}

// Out declares a covariant type parameter.
func Out(name string) TypeParameter {
	return TypeParameter{Name: name, Variance: Covariant}
}

// In declares a contravariant type parameter.
func In(name string) TypeParameter {
	return TypeParameter{Name: name, Variance: Contravariant}
}

// Instantiation is a closed generic type. It remembers the template it was
// built from and the arguments bound to it.
type Instantiation interface {
	Type
	Definition() Template
	Arguments() []Type
}

// GenericType is an open generic type declared by name. Go keeps no open
// generic types at run time, so the template is described explicitly and may
// be bound to the concrete Go instantiations that exist in the program.
type GenericType struct {
	pkgPath string
	name    string
	params  []TypeParameter

	mu       sync.RWMutex
	bindings []binding
}

type binding struct {
	args     []reflect.Type
	instance reflect.Type
}

var _ Template = (*GenericType)(nil)

// NewTemplate declares an open generic type. Parameter positions are assigned
// in order.
//
// Example:
//
//	list := meta.NewTemplate("example.com/coll", "List", meta.Param("T"))
//	list.Name()     // "List[T]"
//	list.FullName() // "example.com/coll.List[T]"
func NewTemplate(pkgPath, name string, params ...TypeParameter) *GenericType {
	declared := make([]TypeParameter, len(params))
	for i, p := range params {
		p.Position = i
		declared[i] = p
	}

	return &GenericType{
		pkgPath: pkgPath,
		name:    name,
		params:  declared,
	}
}

func (g *GenericType) Name() string {
	if len(g.params) == 0 {
		return g.name
	}

	names := make([]string, len(g.params))
	for i, p := range g.params {
		names[i] = p.Name
	}

	return g.name + "[" + strings.Join(names, ",") + "]"
}

func (g *GenericType) FullName() string {
	return qualify(g.pkgPath, g.Name())
}

func (g *GenericType) Identity() reflect.Type {
	return nil
}

func (g *GenericType) Base() Type {
	return nil
}

func (g *GenericType) Methods(string) []Method {
	return nil
}

func (g *GenericType) Property(string) Property {
	return nil
}

func (g *GenericType) Event(string) Event {
	return nil
}

func (g *GenericType) TypeParameters() []TypeParameter {
	return append([]TypeParameter(nil), g.params...)
}

// Bind records instance as the Go type produced by closing the template over
// args. A later Bind with the same arguments replaces the earlier one.
func (g *GenericType) Bind(instance reflect.Type, args ...reflect.Type) error {
	if instance == nil {
		return reflecterr.NullArgument("instance")
	}
	if len(args) != len(g.params) {
		provided := make([]Type, len(args))
		for i, a := range args {
			provided[i] = Of(a)
		}
		return ArityMismatch(g, provided)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.bindings {
		if signature.Matches(g.bindings[i].args, args) {
			g.bindings[i].instance = instance
			return nil
		}
	}
	g.bindings = append(g.bindings, binding{
		args:     append([]reflect.Type(nil), args...),
		instance: instance,
	})

	return nil
}

// Instantiate closes the template over args. A bound Go instantiation is
// described natively; otherwise a closed type is synthesized.
func (g *GenericType) Instantiate(args []Type) (Type, error) {
	if len(args) != len(g.params) {
		return nil, ArityMismatch(g, args)
	}

	closed := &closedType{
		definition: g,
		args:       append([]Type(nil), args...),
	}
	if instance := g.bound(args); instance != nil {
		closed.native = nativeType{t: instance}
		closed.bound = true
	}

	return closed, nil
}

func (g *GenericType) bound(args []Type) reflect.Type {
	identities := make([]reflect.Type, len(args))
	for i, a := range args {
		if a == nil || a.Identity() == nil {
			return nil
		}
		identities[i] = a.Identity()
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, b := range g.bindings {
		if signature.Matches(b.args, identities) {
			return b.instance
		}
	}

	return nil
}

// ArityMismatch builds the error returned when t is closed over the wrong
// number of type arguments.
func ArityMismatch(t Type, args []Type) error {
	params := t.TypeParameters()

	expected := make([]string, len(params))
	for i, p := range params {
		expected[i] = p.Placeholder()
	}

	provided := make([]string, len(args))
	for i, a := range args {
		if a == nil {
			provided[i] = "<nil>"
			continue
		}
		provided[i] = a.FullName()
	}

	return reflecterr.TemplateArityMismatch(t.FullName(), expected, provided)
}

type closedType struct {
	definition *GenericType
	args       []Type
	native     nativeType
	bound      bool
}

var _ Instantiation = (*closedType)(nil)

func (c *closedType) Definition() Template {
	return c.definition
}

func (c *closedType) Arguments() []Type {
	return append([]Type(nil), c.args...)
}

func (c *closedType) Name() string {
	names := make([]string, len(c.args))
	for i, a := range c.args {
		if a == nil {
			names[i] = "<nil>"
			continue
		}
		names[i] = a.FullName()
	}

	return c.definition.name + "[" + strings.Join(names, ",") + "]"
}

func (c *closedType) FullName() string {
	return qualify(c.definition.pkgPath, c.Name())
}

func (c *closedType) Identity() reflect.Type {
	if !c.bound {
		return nil
	}

	return c.native.t
}

func (c *closedType) Base() Type {
	if !c.bound {
		return nil
	}

	return c.native.Base()
}

func (c *closedType) Methods(name string) []Method {
	if !c.bound {
		return nil
	}

	return c.native.Methods(name)
}

func (c *closedType) Property(name string) Property {
	if !c.bound {
		return nil
	}

	return c.native.Property(name)
}

func (c *closedType) Event(name string) Event {
	if !c.bound {
		return nil
	}

	return c.native.Event(name)
}

func (c *closedType) TypeParameters() []TypeParameter {
	return nil
}

func qualify(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}

	return pkgPath + "." + name
}
