// Package generic inspects and closes open generic types described by the meta
// package: parameter counts, variance, display names and positional binding of
// type arguments.
package generic
