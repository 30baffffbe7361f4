package reflecterr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes a reflection failure.
type Kind int

const (
	KindNullArgument Kind = iota + 1
	KindMethodNotFound
	KindPropertyNotFound
	KindPropertyAccessorMissing
	KindEventNotFound
	KindHandlerNotFound
	KindTemplateArityMismatch
	KindArgumentTypeIndeterminate
	KindArgumentMismatch
	KindInvalidCast
	KindHandlerTypeMismatch
	KindNotGenericDefinition
	KindInvocation
)

func (k Kind) String() string {
	switch k {
	case KindNullArgument:
		return "null_argument"
	case KindMethodNotFound:
		return "method_not_found"
	case KindPropertyNotFound:
		return "property_not_found"
	case KindPropertyAccessorMissing:
		return "property_accessor_missing"
	case KindEventNotFound:
		return "event_not_found"
	case KindHandlerNotFound:
		return "handler_not_found"
	case KindTemplateArityMismatch:
		return "template_arity_mismatch"
	case KindArgumentTypeIndeterminate:
		return "argument_type_indeterminate"
	case KindArgumentMismatch:
		return "argument_mismatch"
	case KindInvalidCast:
		return "invalid_cast"
	case KindHandlerTypeMismatch:
		return "handler_type_mismatch"
	case KindNotGenericDefinition:
		return "not_generic_definition"
	case KindInvocation:
		return "invocation"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per kind. Every *Error matches the sentinel of its kind
// with errors.Is.
var (
	ErrNullArgument              = errors.New("null argument")
	ErrMethodNotFound            = errors.New("method not found")
	ErrPropertyNotFound          = errors.New("property not found")
	ErrPropertyAccessorMissing   = errors.New("property accessor missing")
	ErrEventNotFound             = errors.New("event not found")
	ErrHandlerNotFound           = errors.New("handler not found")
	ErrTemplateArityMismatch     = errors.New("template arity mismatch")
	ErrArgumentTypeIndeterminate = errors.New("argument type indeterminate")
	ErrArgumentMismatch          = errors.New("argument mismatch")
	ErrInvalidCast               = errors.New("invalid cast")
	ErrHandlerTypeMismatch       = errors.New("handler type mismatch")
	ErrNotGenericDefinition      = errors.New("not a generic type definition")
	ErrInvocation                = errors.New("invocation failed")
)

var sentinels = map[Kind]error{
	KindNullArgument:              ErrNullArgument,
	KindMethodNotFound:            ErrMethodNotFound,
	KindPropertyNotFound:          ErrPropertyNotFound,
	KindPropertyAccessorMissing:   ErrPropertyAccessorMissing,
	KindEventNotFound:             ErrEventNotFound,
	KindHandlerNotFound:           ErrHandlerNotFound,
	KindTemplateArityMismatch:     ErrTemplateArityMismatch,
	KindArgumentTypeIndeterminate: ErrArgumentTypeIndeterminate,
	KindArgumentMismatch:          ErrArgumentMismatch,
	KindInvalidCast:               ErrInvalidCast,
	KindHandlerTypeMismatch:       ErrHandlerTypeMismatch,
	KindNotGenericDefinition:      ErrNotGenericDefinition,
	KindInvocation:                ErrInvocation,
}

// Fixed diagnostic texts. Existing callers match on them, keep them verbatim.
const (
	msgNullArgument         = "Value cannot be null."
	msgMethodNotFound       = "Class method with given name does not exist!"
	msgPropertyNotFound     = "Property does not exist!"
	msgEventNotFound        = "Invalid event name supplied!"
	msgHandlerNotFound      = "Invalid handler name supplied!"
	msgOutOfRange           = "Specified argument was out of the range of valid values."
	msgParameterCount       = "Parameter count mismatch."
	msgInvalidCast          = "Specified cast is not valid."
	msgHandlerTypeMismatch  = "Cannot bind to the target method because its signature is not compatible with that of the delegate type."
	msgInvocationFailedWith = "Exception has been thrown by the target of an invocation."
)

// Error is the structured error returned by every operation of the module.
// Kind selects the fixed Message; the remaining fields carry the payload.
type Error struct {
	Kind    Kind
	Param   string // name of the offending parameter, if any
	Member  string // name of the member that was looked up, if any
	Message string

	// Expected and Provided are set for KindTemplateArityMismatch.
	Expected []string
	Provided []string

	Cause error
}

// Error renders Message with the parameter name appended, the form existing
// callers parse.
func (e *Error) Error() string {
	if e.Param == "" {
		return e.Message
	}

	return fmt.Sprintf("%s (Parameter '%s')", e.Message, e.Param)
}

// Is reports whether target is the sentinel of this error's kind, or an *Error
// of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}

	return sentinels[e.Kind] == target
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf returns the kind of err when it is an *Error, zero otherwise.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}

	return 0
}

// NullArgument reports an absent required input.
func NullArgument(param string) *Error {
	return &Error{
		Kind:    KindNullArgument,
		Param:   param,
		Message: msgNullArgument,
	}
}

// MethodNotFound reports that no method with the name and signature exists.
// param is the caller's parameter that carried the name.
func MethodNotFound(param, name string) *Error {
	return &Error{
		Kind:    KindMethodNotFound,
		Param:   param,
		Member:  name,
		Message: msgMethodNotFound,
	}
}

// PropertyNotFound reports a missing property.
func PropertyNotFound(name string) *Error {
	return &Error{
		Kind:    KindPropertyNotFound,
		Param:   "propertyName",
		Member:  name,
		Message: msgPropertyNotFound,
	}
}

// PropertyAccessorMissing reports a property without the requested accessor.
// which is "get" or "set". The accessor text travels as the parameter of an
// out-of-range message.
func PropertyAccessorMissing(name, which string) *Error {
	return &Error{
		Kind:    KindPropertyAccessorMissing,
		Param:   fmt.Sprintf("Property %s does not exist for %s!", which, name),
		Member:  name,
		Message: msgOutOfRange,
	}
}

// EventNotFound reports a missing event.
func EventNotFound(name string) *Error {
	return &Error{
		Kind:    KindEventNotFound,
		Param:   "eventName",
		Member:  name,
		Message: msgEventNotFound,
	}
}

// HandlerNotFound reports a missing handler method.
func HandlerNotFound(name string) *Error {
	return &Error{
		Kind:    KindHandlerNotFound,
		Param:   "handlerName",
		Member:  name,
		Message: msgHandlerNotFound,
	}
}

// TemplateArityMismatch reports a wrong number of type arguments. expected holds
// the rendered parameter placeholders, provided the argument full names.
func TemplateArityMismatch(fullName string, expected, provided []string) *Error {
	return &Error{
		Kind:   KindTemplateArityMismatch,
		Member: fullName,
		Message: fmt.Sprintf(
			"Type arguments to close %s generic type are %s, while provided %s. Array counts mismatch (%d != %d)",
			fullName,
			renderList(expected),
			renderList(provided),
			len(expected),
			len(provided),
		),
		Expected: expected,
		Provided: provided,
	}
}

// ArgumentTypeIndeterminate reports a nil argument whose runtime type is needed.
func ArgumentTypeIndeterminate(param string, index int) *Error {
	return &Error{
		Kind:    KindArgumentTypeIndeterminate,
		Param:   param,
		Member:  fmt.Sprintf("%s[%d]", param, index),
		Message: msgOutOfRange,
	}
}

// ParameterCountMismatch reports an argument list of the wrong length.
func ParameterCountMismatch(member string, want, got int) *Error {
	return &Error{
		Kind:    KindArgumentMismatch,
		Member:  member,
		Message: msgParameterCount,
		Cause:   fmt.Errorf("found %d but expected %d", got, want),
	}
}

// ArgumentMismatch reports an argument that cannot be passed as the parameter type.
func ArgumentMismatch(member, from, to string) *Error {
	return &Error{
		Kind:    KindArgumentMismatch,
		Member:  member,
		Message: fmt.Sprintf("Object of type '%s' cannot be converted to type '%s'.", from, to),
	}
}

// InvalidCast reports a value that is not of the requested type.
func InvalidCast(member, from, to string) *Error {
	return &Error{
		Kind:    KindInvalidCast,
		Member:  member,
		Message: msgInvalidCast,
		Cause:   fmt.Errorf("cannot cast '%s' to '%s'", from, to),
	}
}

// HandlerTypeMismatch reports a handler that cannot be bound to the event's
// delegate type.
func HandlerTypeMismatch(eventName, handlerType, delegateType string) *Error {
	return &Error{
		Kind:    KindHandlerTypeMismatch,
		Member:  eventName,
		Message: msgHandlerTypeMismatch,
		Cause:   fmt.Errorf("handler type '%s', event type '%s'", handlerType, delegateType),
	}
}

// NotGenericDefinition reports an attempt to close a type without open parameters.
func NotGenericDefinition(fullName string) *Error {
	return &Error{
		Kind:    KindNotGenericDefinition,
		Member:  fullName,
		Message: fmt.Sprintf("%s is not a generic type definition.", fullName),
	}
}

// Invocation wraps an error returned by an invoked member.
func Invocation(member string, cause error) *Error {
	return &Error{
		Kind:    KindInvocation,
		Member:  member,
		Message: msgInvocationFailedWith,
		Cause:   cause,
	}
}

func renderList(items []string) string {
	return "(" + strings.Join(items, ", ") + ")"
}
