// Package tzresolve resolves the operating system's configured time zone to
// an IANA identifier.
//
// # Architecture Overview
//
//	tzresolve/           Public operations: GetNativeTimeZone, GetIANATimeZone, Resolve
//	├── native/          OS queries for the dynamic time zone record and region code
//	├── asciistr/        Bounded ASCII decoding of fixed-width UTF-16 buffers
//	├── windowszones/    CLDR windowsZones table: loading and resolution
//	├── errors/          Structured error types
//	└── cmd/tzresolve/   Command line front end
//
// # Quick Start
//
//	id, err := tzresolve.GetIANATimeZone()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loc, err := time.LoadLocation(id)
//
// Translate a stored Windows key name without touching the OS:
//
//	id, err := tzresolve.Resolve("GMT Standard Time", "IE") // "Europe/Dublin"
//
// An empty territory resolves against the world territory "001". A specific
// territory that has no entry is an error; use WithFallback to retry with
// "001" instead.
//
// # Errors
//
// All failures are *errors.Error values and can be matched with errors.Is
// against the sentinels in the errors package, e.g. errors.ErrTimeZoneUnknown.
// Nothing is retried and nothing is logged by the resolution path.
//
// # Thread Safety
//
// All functions are safe for concurrent use. The bundled table is parsed once
// on first use and shared read-only.
package tzresolve
