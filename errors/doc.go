// Package errors provides structured error types for the cl-core library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/CL type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConvert, errors.KindInvalidEnum).
//		Path("format", "channel_order").
//		CLType("cl_channel_order").
//		Detail("code 0x%x is not a known channel order", raw).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidEnum(errors.PhaseConvert, path, raw, "cl_channel_order")
//	err := errors.OutOfBounds(errors.PhaseValidate, path, 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
