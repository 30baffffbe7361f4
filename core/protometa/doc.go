// Package protometa describes protobuf messages as meta types. The fields of a
// message are its properties, addressed by proto name or JSON name; methods
// and events are those of the generated Go type.
//
//	b, err := impl.New(ts, impl.WithResolver(protometa.Resolver{}))
//	seconds, err := impl.GetProperty[int64](b, "seconds")
package protometa
