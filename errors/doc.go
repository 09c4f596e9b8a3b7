// Package errors provides structured error types for the tzresolve library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the failing field path, the offending value, an optional
// OS error code and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindIllformedString).
//		Path("record", "TimeZoneKeyName").
//		Value(0x00e9).
//		Detail("code unit %#04x at index %d is not ASCII", 0x00e9, 3).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TimeZoneUnknown(errors.PhaseResolve, "no mapping for %q", id)
//	err := errors.Syscall("GetUserDefaultGeoName", code, cause)
//
// Callers match on kind with the standard library and the exported sentinels:
//
//	if errors.Is(err, tzerrors.ErrTimeZoneUnknown) { ... }
package errors
