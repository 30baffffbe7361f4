// Package impl wraps an object so that its methods, properties and events are
// reached by name at run time. Overloads are selected by exact parameter
// types; failures are *reflecterr.Error values.
package impl
