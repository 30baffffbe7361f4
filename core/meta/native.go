package meta

import (
	"reflect"

	"github.com/anoideaopen/reflection/core/signature"
)

const (
	getterPrefix = "Get"
	setterPrefix = "Set"
	addPrefix    = "Add"
	removePrefix = "Remove"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Of describes t with Go reflection. Methods are the exported methods of t,
// properties are accessor methods X()/GetX() and SetX(v), events are method
// pairs AddX(h)/RemoveX(h). It returns nil for a nil type.
func Of(t reflect.Type) Type {
	if t == nil {
		return nil
	}

	return nativeType{t: t}
}

// TypeOf describes the dynamic type of v.
func TypeOf(v any) Type {
	return Of(reflect.TypeOf(v))
}

type nativeType struct {
	t reflect.Type
}

func (n nativeType) Name() string {
	return typeName(n.t)
}

func (n nativeType) FullName() string {
	return fullName(n.t)
}

func (n nativeType) Identity() reflect.Type {
	return n.t
}

func (n nativeType) Base() Type {
	s := indirect(n.t)
	if s.Kind() != reflect.Struct {
		return nil
	}

	for i := 0; i < s.NumField(); i++ {
		if f := s.Field(i); f.Anonymous {
			return Of(f.Type)
		}
	}

	return nil
}

func (n nativeType) Methods(name string) []Method {
	if m := n.method(name); m != nil {
		return []Method{m}
	}

	return nil
}

func (n nativeType) method(name string) *nativeMethod {
	m, ok := n.t.MethodByName(name)
	if !ok {
		return nil
	}

	return &nativeMethod{
		name:  name,
		fn:    m.Type,
		iface: n.t.Kind() == reflect.Interface,
	}
}

func (n nativeType) Property(name string) Property {
	if name == "" {
		return nil
	}

	var (
		getter = n.getter(name)
		setter = n.setter(setterPrefix + name)
	)
	if getter == nil {
		getter = n.getter(getterPrefix + name)
	}

	switch {
	case getter == nil && setter == nil:
		return nil
	case getter != nil && setter != nil && getter.Results()[0] != setter.Params()[0]:
		setter = nil
	}

	p := &property{name: name}
	if getter != nil {
		p.typ = getter.Results()[0]
		p.getter = getter
	}
	if setter != nil {
		p.typ = setter.Params()[0]
		p.setter = setter
	}

	return p
}

func (n nativeType) getter(name string) Method {
	m := n.method(name)
	if m == nil {
		return nil
	}

	results := m.Results()
	if len(m.Params()) != 0 || len(results) != 1 || results[0] == errorType {
		return nil
	}

	return m
}

func (n nativeType) setter(name string) Method {
	m := n.method(name)
	if m == nil || len(m.Params()) != 1 || !returnsNothingOrError(m.Results()) {
		return nil
	}

	return m
}

func (n nativeType) Event(name string) Event {
	if name == "" {
		return nil
	}

	add := n.setter(addPrefix + name)
	remove := n.setter(removePrefix + name)
	if add == nil || remove == nil || add.Params()[0] != remove.Params()[0] {
		return nil
	}

	return &event{
		name:        name,
		handlerType: add.Params()[0],
		add:         add,
		remove:      remove,
	}
}

func (n nativeType) TypeParameters() []TypeParameter {
	return nil
}

type nativeMethod struct {
	name  string
	fn    reflect.Type
	iface bool // fn has no receiver parameter
}

func (m *nativeMethod) Name() string {
	return m.name
}

func (m *nativeMethod) Params() signature.Signature {
	first := 1
	if m.iface {
		first = 0
	}

	params := make(signature.Signature, 0, m.fn.NumIn()-first)
	for i := first; i < m.fn.NumIn(); i++ {
		params = append(params, m.fn.In(i))
	}

	return params
}

func (m *nativeMethod) Results() []reflect.Type {
	results := make([]reflect.Type, m.fn.NumOut())
	for i := range results {
		results[i] = m.fn.Out(i)
	}

	return results
}

func (m *nativeMethod) IsStatic() bool {
	return false
}

func (m *nativeMethod) Invoke(target reflect.Value, args []reflect.Value) ([]reflect.Value, error) {
	fn := target.MethodByName(m.name)
	if m.fn.IsVariadic() {
		return fn.CallSlice(args), nil
	}

	return fn.Call(args), nil
}

type property struct {
	name   string
	typ    reflect.Type
	getter Method
	setter Method
}

func (p *property) Name() string       { return p.name }
func (p *property) Type() reflect.Type { return p.typ }
func (p *property) Getter() Method     { return p.getter }
func (p *property) Setter() Method     { return p.setter }

type event struct {
	name        string
	handlerType reflect.Type
	add         Method
	remove      Method
}

func (e *event) Name() string              { return e.name }
func (e *event) HandlerType() reflect.Type { return e.handlerType }
func (e *event) AddMethod() Method         { return e.add }
func (e *event) RemoveMethod() Method      { return e.remove }

func returnsNothingOrError(results []reflect.Type) bool {
	return len(results) == 0 || (len(results) == 1 && results[0] == errorType)
}

func indirect(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}

	return t
}

func typeName(t reflect.Type) string {
	t = indirect(t)
	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}

func fullName(t reflect.Type) string {
	t = indirect(t)
	if t.Name() == "" || t.PkgPath() == "" {
		return typeName(t)
	}

	return t.PkgPath() + "." + t.Name()
}
