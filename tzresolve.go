package tzresolve

import (
	"github.com/wippyai/tzresolve/native"
	"github.com/wippyai/tzresolve/windowszones"
)

// Resolver translates native time zones into IANA identifiers.
// The zero-option Resolver uses the bundled CLDR table and no fallback.
type Resolver struct {
	table    *windowszones.Table
	fallback bool

	queryTimeZone func() (native.TimeZoneMode, error)
	queryGeoHint  func() (string, error)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTable resolves against t instead of the bundled table.
func WithTable(t *windowszones.Table) Option {
	return func(r *Resolver) {
		r.table = t
	}
}

// WithFallback retries with the world territory when the requested
// territory has no entry.
func WithFallback(enabled bool) Option {
	return func(r *Resolver) {
		r.fallback = enabled
	}
}

// NewResolver creates a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		queryTimeZone: native.QueryTimeZone,
		queryGeoHint:  native.QueryGeoHint,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Table returns the table the resolver uses, loading the bundled one if needed.
func (r *Resolver) Table() (*windowszones.Table, error) {
	if r.table != nil {
		return r.table, nil
	}
	return windowszones.Default()
}

// Resolve maps a native identifier and optional territory to an IANA identifier.
func (r *Resolver) Resolve(nativeID, territory string) (string, error) {
	t, err := r.Table()
	if err != nil {
		return "", err
	}
	if r.fallback {
		return t.ResolveWithFallback(nativeID, territory)
	}
	return t.Resolve(nativeID, territory)
}

// IANATimeZone queries the OS time zone and region and resolves them.
// It stops at the first failing step.
func (r *Resolver) IANATimeZone() (string, error) {
	mode, err := r.queryTimeZone()
	if err != nil {
		return "", err
	}
	territory, err := r.queryGeoHint()
	if err != nil {
		return "", err
	}
	return r.Resolve(mode.Record().KeyName.String(), territory)
}

// GetNativeTimeZone returns the OS's dynamic time zone record.
func GetNativeTimeZone() (native.TimeZoneMode, error) {
	return native.QueryTimeZone()
}

// GetIANATimeZone returns the IANA identifier of the OS's time zone.
func GetIANATimeZone() (string, error) {
	return NewResolver().IANATimeZone()
}

// Resolve maps a native identifier to an IANA identifier using the bundled
// table. An empty territory means the world territory "001".
func Resolve(nativeID, territory string) (string, error) {
	return NewResolver().Resolve(nativeID, territory)
}
