// Package reflecterr defines the error taxonomy of the reflection module.
//
// Every failure is an *Error carrying a Kind, the offending parameter or member
// name and a fixed human-readable message. Callers that only need to branch use
// errors.Is with the package sentinels:
//
//	if errors.Is(err, reflecterr.ErrMethodNotFound) {
//	    // wiring problem, not a programming error
//	}
//
// Callers that need the payload use errors.As:
//
//	var re *reflecterr.Error
//	if errors.As(err, &re) && re.Kind == reflecterr.KindTemplateArityMismatch {
//	    fmt.Println(re.Expected, re.Provided)
//	}
//
// Absent required inputs (KindNullArgument) are programming errors, missing
// members (KindMethodNotFound, KindPropertyNotFound, KindEventNotFound,
// KindHandlerNotFound) are configuration errors. Nothing in the module retries.
package reflecterr
