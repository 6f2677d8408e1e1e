// Package errors provides structured error types for the rawvalue module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: request path, Go and declared type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseClassify, errors.KindTypeMismatch).
//		Path("Products(1)", "Price", "$value").
//		GoType("string").
//		DeclaredType("f64").
//		Detail("cannot format string as a floating-point value").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseClassify, "string", "f64")
//	err := errors.NullValue(errors.PhaseClassify, "option<s32>")
//
// All errors implement the standard error interface and support errors.Is/As.
// Every error is terminal for a serializer call: nothing is written to the sink.
package errors
