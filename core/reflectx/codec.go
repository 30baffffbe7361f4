package reflectx

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// BytesEncoder defines an interface for encoding an object to bytes.
type BytesEncoder interface {
	EncodeToBytes() ([]byte, error)
}

// BytesDecoder defines an interface for decoding an object from bytes.
type BytesDecoder interface {
	DecodeFromBytes([]byte) error
}

// Validator is implemented by argument types that can validate themselves.
type Validator interface {
	Validate() error
}

// Encode renders a call result as bytes. A BytesEncoder encodes itself, a proto
// message is rendered with protojson, anything else with encoding/json.
func Encode(v any) ([]byte, error) {
	switch value := v.(type) {
	case BytesEncoder:
		return value.EncodeToBytes()
	case proto.Message:
		return protojson.Marshal(value)
	default:
		return json.Marshal(v)
	}
}
