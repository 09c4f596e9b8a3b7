package native

import (
	"github.com/wippyai/tzresolve/asciistr"
	"github.com/wippyai/tzresolve/errors"
)

const procGetUserDefaultGeoName = "GetUserDefaultGeoName"

// DecodeGeoName decodes the region code written by GetUserDefaultGeoName.
// The last slot is reserved for the terminator and is dropped before decoding.
func DecodeGeoName(buf [GeoNameLen]uint16) (string, error) {
	s, err := asciistr.FromUTF16(buf[:GeoNameLen-1])
	if err != nil {
		return "", errors.WithPath(err, "geo")
	}
	return s.String(), nil
}
