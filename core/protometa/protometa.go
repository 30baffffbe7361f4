package protometa

import (
	"reflect"
	"strings"

	"github.com/anoideaopen/reflection/core/meta"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

var messageType = reflect.TypeOf((*proto.Message)(nil)).Elem()

// Resolver describes proto message types with TypeOf and leaves every other
// type to Registry. A nil Registry resolves through reflection only.
type Resolver struct {
	Registry *meta.Registry
}

// Resolve implements meta.Resolver.
func (r Resolver) Resolve(t reflect.Type) meta.Type {
	inner := r.Registry.Resolve(t)
	if t == nil || !t.Implements(messageType) {
		return inner
	}

	m, ok := reflect.Zero(t).Interface().(proto.Message)
	if !ok {
		return inner
	}

	return describe(m.ProtoReflect().Descriptor(), inner)
}

// TypeOf describes the message type of m. m may be a typed nil pointer of a
// generated message type.
func TypeOf(m proto.Message) meta.Type {
	if m == nil {
		return nil
	}

	return describe(m.ProtoReflect().Descriptor(), meta.Of(reflect.TypeOf(m)))
}

func describe(desc protoreflect.MessageDescriptor, inner meta.Type) meta.Type {
	return &message{
		Type: inner,
		desc: desc,
	}
}

// message overlays the fields of desc over the Go type description inner.
type message struct {
	meta.Type
	desc protoreflect.MessageDescriptor
}

func (m *message) Name() string {
	return string(m.desc.Name())
}

func (m *message) FullName() string {
	return string(m.desc.FullName())
}

func (m *message) Base() meta.Type {
	return nil
}

func (m *message) Property(name string) meta.Property {
	if fd := Field(m.desc, name); fd != nil {
		return newField(fd)
	}

	return m.Type.Property(name)
}

// Field finds the field of desc by proto name, then by JSON name, then by JSON
// name ignoring case. It returns nil when nothing matches.
func Field(desc protoreflect.MessageDescriptor, name string) protoreflect.FieldDescriptor {
	if name == "" {
		return nil
	}

	fields := desc.Fields()
	if fd := fields.ByName(protoreflect.Name(name)); fd != nil {
		return fd
	}
	if fd := fields.ByJSONName(name); fd != nil {
		return fd
	}

	for i := 0; i < fields.Len(); i++ {
		if fd := fields.Get(i); strings.EqualFold(fd.JSONName(), name) {
			return fd
		}
	}

	return nil
}

// FieldNames lists the proto names of the fields of m, in declaration order.
func FieldNames(m proto.Message) []string {
	if m == nil {
		return nil
	}

	fields := m.ProtoReflect().Descriptor().Fields()
	names := make([]string, fields.Len())
	for i := range names {
		names[i] = string(fields.Get(i).Name())
	}

	return names
}
