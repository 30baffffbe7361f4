package protometa

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/reflection/core/meta"
	"github.com/anoideaopen/reflection/core/reflecterr"
	"github.com/anoideaopen/reflection/core/signature"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

var (
	listType = reflect.TypeOf((*protoreflect.List)(nil)).Elem()
	mapType  = reflect.TypeOf((*protoreflect.Map)(nil)).Elem()
	enumType = reflect.TypeOf(protoreflect.EnumNumber(0))
)

type field struct {
	fd  protoreflect.FieldDescriptor
	typ reflect.Type
}

func newField(fd protoreflect.FieldDescriptor) *field {
	return &field{fd: fd, typ: goType(fd)}
}

func (f *field) Name() string       { return string(f.fd.Name()) }
func (f *field) Type() reflect.Type { return f.typ }

func (f *field) Getter() meta.Method {
	return &accessor{field: f}
}

// Setter is nil for repeated, map and oneof member fields.
func (f *field) Setter() meta.Method {
	if f.fd.IsList() || f.fd.IsMap() {
		return nil
	}
	if oneof := f.fd.ContainingOneof(); oneof != nil && !oneof.IsSynthetic() {
		return nil
	}

	return &accessor{field: f, set: true}
}

type accessor struct {
	field *field
	set   bool
}

func (a *accessor) Name() string {
	return a.field.Name()
}

func (a *accessor) Params() signature.Signature {
	if a.set {
		return signature.Signature{a.field.typ}
	}

	return signature.Signature{}
}

func (a *accessor) Results() []reflect.Type {
	if a.set {
		return nil
	}

	return []reflect.Type{a.field.typ}
}

func (a *accessor) IsStatic() bool {
	return false
}

func (a *accessor) Invoke(target reflect.Value, args []reflect.Value) ([]reflect.Value, error) {
	if !target.IsValid() || !target.CanInterface() {
		return nil, reflecterr.NullArgument("target")
	}

	m, ok := target.Interface().(proto.Message)
	if !ok || signature.IsNil(m) {
		return nil, reflecterr.NullArgument("target")
	}

	if a.set {
		if len(args) != 1 {
			return nil, reflecterr.ParameterCountMismatch(a.Name(), 1, len(args))
		}
		return nil, a.field.set(m.ProtoReflect(), args[0])
	}

	return []reflect.Value{a.field.get(m.ProtoReflect())}, nil
}

func (f *field) get(msg protoreflect.Message) reflect.Value {
	out := reflect.New(f.typ).Elem()

	switch {
	case f.fd.IsList():
		out.Set(reflect.ValueOf(msg.Get(f.fd).List()))
	case f.fd.IsMap():
		out.Set(reflect.ValueOf(msg.Get(f.fd).Map()))
	case f.fd.Message() != nil:
		if msg.Has(f.fd) {
			out.Set(reflect.ValueOf(msg.Get(f.fd).Message().Interface()))
		}
	default:
		v := msg.Get(f.fd)
		if f.fd.Enum() != nil {
			out.Set(reflect.ValueOf(v.Enum()))
		} else {
			out.Set(reflect.ValueOf(v.Interface()))
		}
	}

	return out
}

func (f *field) set(msg protoreflect.Message, arg reflect.Value) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e := reflecterr.ArgumentMismatch(f.Name(), typeOf(arg), f.typ.String())
			e.Cause = fmt.Errorf("%v", r)
			err = e
		}
	}()

	if want := f.fd.Message(); want != nil {
		value, _ := arg.Interface().(proto.Message)
		if signature.IsNil(value) {
			msg.Clear(f.fd)
			return nil
		}

		got := value.ProtoReflect().Descriptor().FullName()
		if got != want.FullName() {
			return reflecterr.ArgumentMismatch(f.Name(), string(got), string(want.FullName()))
		}

		msg.Set(f.fd, protoreflect.ValueOfMessage(value.ProtoReflect()))
		return nil
	}

	msg.Set(f.fd, protoreflect.ValueOf(arg.Interface()))

	return nil
}

func typeOf(v reflect.Value) string {
	if !v.IsValid() || (v.Kind() == reflect.Interface && v.IsNil()) {
		return "<nil>"
	}

	return fmt.Sprintf("%T", v.Interface())
}

func goType(fd protoreflect.FieldDescriptor) reflect.Type {
	switch {
	case fd.IsList():
		return listType
	case fd.IsMap():
		return mapType
	}

	switch fd.Kind() {
	case protoreflect.BoolKind:
		return reflect.TypeOf(false)
	case protoreflect.EnumKind:
		return enumType
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return reflect.TypeOf(int32(0))
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return reflect.TypeOf(uint32(0))
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return reflect.TypeOf(int64(0))
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return reflect.TypeOf(uint64(0))
	case protoreflect.FloatKind:
		return reflect.TypeOf(float32(0))
	case protoreflect.DoubleKind:
		return reflect.TypeOf(float64(0))
	case protoreflect.StringKind:
		return reflect.TypeOf("")
	case protoreflect.BytesKind:
		return reflect.TypeOf([]byte(nil))
	default:
		return messageType
	}
}
