//go:build !windows

package native

import "github.com/wippyai/tzresolve/errors"

// QueryTimeZone is only implemented on Windows.
func QueryTimeZone() (TimeZoneMode, error) {
	return nil, errors.Unsupported(errors.PhaseQuery, procGetDynamicTimeZoneInformation)
}

// QueryGeoHint is only implemented on Windows.
func QueryGeoHint() (string, error) {
	return "", errors.Unsupported(errors.PhaseQuery, procGetUserDefaultGeoName)
}
