package telemetry

import "go.opentelemetry.io/otel/attribute"

// Operation is the wrapper operation a span belongs to.
type Operation int

func (o Operation) String() string {
	switch o {
	case OperationExecuteFunction:
		return "execute_function"
	case OperationExecuteMethod:
		return "execute_method"
	case OperationGetProperty:
		return "get_property"
	case OperationSetProperty:
		return "set_property"
	case OperationAddEvent:
		return "add_event"
	case OperationRemoveEvent:
		return "remove_event"
	case OperationInvokeText:
		return "invoke_text"
	case OperationCheckText:
		return "check_text"
	case OperationUnknown:
		fallthrough
	default:
		return "unknown"
	}
}

const (
	OperationUnknown Operation = iota
	OperationExecuteFunction
	OperationExecuteMethod
	OperationGetProperty
	OperationSetProperty
	OperationAddEvent
	OperationRemoveEvent
	OperationInvokeText
	OperationCheckText
)

const (
	KeyOperation = attribute.Key("operation")
	KeyMember    = attribute.Key("member")
	KeyType      = attribute.Key("type")
	KeyWrapperID = attribute.Key("wrapper_id")
)

func OperationAttr(o Operation) attribute.KeyValue {
	return KeyOperation.String(o.String())
}

func Member(name string) attribute.KeyValue {
	return KeyMember.String(name)
}

func TypeName(name string) attribute.KeyValue {
	return KeyType.String(name)
}

func WrapperID(id string) attribute.KeyValue {
	return KeyWrapperID.String(id)
}
