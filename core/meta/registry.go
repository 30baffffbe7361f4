package meta

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/anoideaopen/reflection/core/signature"
)

// Declaration errors.
var (
	ErrNotAFunction     = errors.New("declared member is not a function")
	ErrInvalidReceiver  = errors.New("method expression receiver does not accept the declared type")
	ErrInvalidAccessor  = errors.New("invalid accessor signature")
	ErrEmptyMemberName  = errors.New("member name is empty")
	ErrMemberRedeclared = errors.New("member has already been declared with the same signature")
)

// Registry holds explicit member declarations for Go types. It describes what
// reflection alone cannot: overloaded methods, properties and events backed by
// arbitrary functions, unexported behavior exposed under a name.
//
// A Registry is an ordinary value owned by the application; there is no
// package-level registry. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	decls map[reflect.Type]*Declaration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		decls: make(map[reflect.Type]*Declaration),
	}
}

// Declare runs build against the declaration of t and stores the result. Calling
// Declare again for the same type extends the existing declaration. If build
// records an error, nothing is stored and the error is returned.
//
// build runs without holding the registry lock and may call back into r. When
// a concurrent Declare for t stores first, build runs again on the newer
// declaration.
//
// Example:
//
//	r := meta.NewRegistry()
//	err := r.Declare(reflect.TypeOf(&Counter{}), func(d *meta.Declaration) {
//	    d.Method("Add", (*Counter).AddOne)
//	    d.Method("Add", (*Counter).AddN)
//	    d.Property("Value", (*Counter).Value, nil)
//	})
func (r *Registry) Declare(t reflect.Type, build func(d *Declaration)) error {
	if t == nil {
		return fmt.Errorf("%w: nil type", ErrInvalidReceiver)
	}

	for {
		r.mu.RLock()
		base := r.decls[t]
		r.mu.RUnlock()

		d := newDeclaration(t)
		if base != nil {
			d = base.clone()
		}

		build(d)
		if d.err != nil {
			return d.err
		}

		r.mu.Lock()
		if r.decls[t] == base {
			r.decls[t] = d
			r.mu.Unlock()

			return nil
		}
		r.mu.Unlock()
	}
}

// Resolve describes t, merging its declaration, if any, over the native
// reflection view. A nil registry resolves to the native view.
func (r *Registry) Resolve(t reflect.Type) Type {
	if t == nil {
		return nil
	}
	if r == nil {
		return Of(t)
	}

	r.mu.RLock()
	d, ok := r.decls[t]
	if ok {
		d = d.clone()
	}
	r.mu.RUnlock()

	if !ok {
		return Of(t)
	}

	return &declaredType{
		nativeType: nativeType{t: t},
		decl:       d,
	}
}

// Types returns the declared types sorted by full name.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]reflect.Type, 0, len(r.decls))
	for t := range r.decls {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return fullName(types[i]) < fullName(types[j])
	})

	return types
}

// Declaration collects the members declared for one type. Its methods record
// the first error and ignore later calls.
type Declaration struct {
	typ        reflect.Type
	methods    map[string][]Method
	properties map[string]Property
	events     map[string]Event
	err        error
}

func newDeclaration(t reflect.Type) *Declaration {
	return &Declaration{
		typ:        t,
		methods:    make(map[string][]Method),
		properties: make(map[string]Property),
		events:     make(map[string]Event),
	}
}

func (d *Declaration) clone() *Declaration {
	c := newDeclaration(d.typ)
	for name, ms := range d.methods {
		c.methods[name] = append([]Method(nil), ms...)
	}
	for name, p := range d.properties {
		c.properties[name] = p
	}
	for name, e := range d.events {
		c.events[name] = e
	}

	return c
}

// Err returns the first error recorded by the declaration.
func (d *Declaration) Err() error {
	return d.err
}

// Method declares an instance method. fn is a method expression such as
// (*T).Do or any function whose first parameter accepts the declared type.
// Several functions may be declared under one name as long as their parameter
// signatures differ.
func (d *Declaration) Method(name string, fn any) *Declaration {
	if d.err != nil {
		return d
	}

	m, err := d.newMethod(name, fn, false)
	if err != nil {
		d.err = err
		return d
	}

	d.addMethod(m)

	return d
}

// Static declares a function that is looked up with the type's methods but
// does not take a receiver.
func (d *Declaration) Static(name string, fn any) *Declaration {
	if d.err != nil {
		return d
	}

	m, err := d.newMethod(name, fn, true)
	if err != nil {
		d.err = err
		return d
	}

	d.addMethod(m)

	return d
}

// Property declares a property. getter has the shape func(T) V or
// func(T) (V, error), setter func(T, V) or func(T, V) error. Either may be nil,
// not both.
func (d *Declaration) Property(name string, getter, setter any) *Declaration {
	if d.err != nil {
		return d
	}
	if getter == nil && setter == nil {
		d.err = fmt.Errorf("%w: property %s has no accessors", ErrInvalidAccessor, name)
		return d
	}

	p := &property{name: name}
	if getter != nil {
		m, err := d.newMethod(name, getter, false)
		if err != nil {
			d.err = err
			return d
		}
		results := m.Results()
		if len(m.Params()) != 0 || len(results) == 0 || len(results) > 2 ||
			(len(results) == 2 && results[1] != errorType) {
			d.err = fmt.Errorf("%w: getter of %s", ErrInvalidAccessor, name)
			return d
		}
		p.typ = results[0]
		p.getter = m
	}
	if setter != nil {
		m, err := d.newMethod(name, setter, false)
		if err != nil {
			d.err = err
			return d
		}
		if len(m.Params()) != 1 || !returnsNothingOrError(m.Results()) {
			d.err = fmt.Errorf("%w: setter of %s", ErrInvalidAccessor, name)
			return d
		}
		if p.typ != nil && p.typ != m.Params()[0] {
			d.err = fmt.Errorf("%w: accessors of %s disagree on the property type", ErrInvalidAccessor, name)
			return d
		}
		p.typ = m.Params()[0]
		p.setter = m
	}

	d.properties[name] = p

	return d
}

// Event declares an event through its subscribe and unsubscribe functions,
// both of the shape func(T, H) where H is the handler type.
func (d *Declaration) Event(name string, add, remove any) *Declaration {
	if d.err != nil {
		return d
	}

	addMethod, err := d.newMethod(name, add, false)
	if err != nil {
		d.err = err
		return d
	}
	removeMethod, err := d.newMethod(name, remove, false)
	if err != nil {
		d.err = err
		return d
	}

	if len(addMethod.Params()) != 1 || len(removeMethod.Params()) != 1 ||
		addMethod.Params()[0] != removeMethod.Params()[0] {
		d.err = fmt.Errorf("%w: add and remove of event %s must take the same handler type", ErrInvalidAccessor, name)
		return d
	}

	d.events[name] = &event{
		name:        name,
		handlerType: addMethod.Params()[0],
		add:         addMethod,
		remove:      removeMethod,
	}

	return d
}

func (d *Declaration) newMethod(name string, fn any, static bool) (*declaredMethod, error) {
	if name == "" {
		return nil, ErrEmptyMemberName
	}

	v := reflect.ValueOf(fn)
	if fn == nil || v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFunction, name)
	}

	if !static {
		ft := v.Type()
		if ft.NumIn() == 0 || !d.typ.AssignableTo(ft.In(0)) {
			return nil, fmt.Errorf("%w: %s on %s", ErrInvalidReceiver, name, d.typ)
		}
	}

	return &declaredMethod{
		name:   name,
		fn:     v,
		static: static,
	}, nil
}

func (d *Declaration) addMethod(m *declaredMethod) {
	for _, existing := range d.methods[m.name] {
		if signature.Matches(existing.Params(), m.Params()) && existing.IsStatic() == m.IsStatic() {
			d.err = fmt.Errorf("%w: %s%s", ErrMemberRedeclared, m.name, m.Params())
			return
		}
	}

	d.methods[m.name] = append(d.methods[m.name], m)
}

type declaredMethod struct {
	name   string
	fn     reflect.Value
	static bool
}

func (m *declaredMethod) Name() string {
	return m.name
}

func (m *declaredMethod) Params() signature.Signature {
	ft := m.fn.Type()

	first := 1
	if m.static {
		first = 0
	}

	params := make(signature.Signature, 0, ft.NumIn()-first)
	for i := first; i < ft.NumIn(); i++ {
		params = append(params, ft.In(i))
	}

	return params
}

func (m *declaredMethod) Results() []reflect.Type {
	ft := m.fn.Type()

	results := make([]reflect.Type, ft.NumOut())
	for i := range results {
		results[i] = ft.Out(i)
	}

	return results
}

func (m *declaredMethod) IsStatic() bool {
	return m.static
}

func (m *declaredMethod) Invoke(target reflect.Value, args []reflect.Value) ([]reflect.Value, error) {
	in := args
	if !m.static {
		in = make([]reflect.Value, 0, len(args)+1)
		in = append(in, target)
		in = append(in, args...)
	}

	if m.fn.Type().IsVariadic() {
		return m.fn.CallSlice(in), nil
	}

	return m.fn.Call(in), nil
}

// declaredType overlays a declaration on the native view. Declared methods come
// first; the native method of the same name is kept unless a declared overload
// already has its signature.
type declaredType struct {
	nativeType
	decl *Declaration
}

func (d *declaredType) Methods(name string) []Method {
	methods := append([]Method(nil), d.decl.methods[name]...)

	native := d.nativeType.method(name)
	if native == nil {
		return methods
	}
	for _, m := range methods {
		if !m.IsStatic() && signature.Matches(m.Params(), native.Params()) {
			return methods
		}
	}

	return append(methods, native)
}

func (d *declaredType) Property(name string) Property {
	if p, ok := d.decl.properties[name]; ok {
		return p
	}

	return d.nativeType.Property(name)
}

func (d *declaredType) Event(name string) Event {
	if e, ok := d.decl.events[name]; ok {
		return e
	}

	return d.nativeType.Event(name)
}
