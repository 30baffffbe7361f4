// Package meta describes runtime types for dynamic invocation.
//
// A Type answers the questions a dynamic caller asks: which methods carry a
// name and with which parameter lists, which properties and events exist, what
// the base type is and which generic parameters are open. Three sources feed
// it:
//
//   - Of and TypeOf read a Go type with reflection. Properties follow the
//     accessor convention X()/GetX() and SetX(v); events follow AddX(h) and
//     RemoveX(h).
//   - A Registry overlays explicit declarations on that view, for members Go
//     cannot express natively, most notably overloads.
//   - NewTemplate declares an open generic type that can be closed over type
//     arguments, either into a bound Go instantiation or a synthesized type.
//
// Lookups never fail on absent members; they return nil. Only nil inputs are
// errors, reported as *reflecterr.Error.
package meta
