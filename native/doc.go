// Package native reads the host's dynamic time zone record and geographic
// region, and decodes them into owned Go values.
//
// The Windows implementation calls GetDynamicTimeZoneInformation and
// GetUserDefaultGeoName from kernel32. Status interpretation and buffer
// decoding are platform independent (FromStatus, DecodeRecord,
// DecodeGeoName) so they can be exercised on any OS.
//
// A native record is only read after the OS status affirms that it was
// written. Decoding is all-or-nothing: either every text field passes the
// bounded ASCII decoder and a complete record is returned, or an error is
// returned and no record exists.
//
// On other platforms QueryTimeZone and QueryGeoHint fail with an
// unsupported error.
package native
