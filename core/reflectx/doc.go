// Package reflectx converts between text and typed values at the reflection
// boundary: it decodes string arguments into parameter types and encodes
// results back to bytes.
//
// A string argument is decoded in this order:
//  1. string and *string parameters take the text as is;
//  2. valid JSON is unmarshaled with protojson for proto messages and with
//     encoding/json otherwise;
//  3. encoding.TextUnmarshaler;
//  4. BytesDecoder;
//  5. proto.Unmarshal for proto messages;
//  6. encoding.BinaryUnmarshaler.
//
// The first successful decoder wins. Decoded values implementing Validator are
// validated before use.
package reflectx
