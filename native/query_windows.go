//go:build windows

package native

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/wippyai/tzresolve/errors"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procDynamicTimeZone = modkernel32.NewProc(procGetDynamicTimeZoneInformation)
	procUserGeoName     = modkernel32.NewProc(procGetUserDefaultGeoName)
)

// QueryTimeZone returns the OS's current dynamic time zone record.
func QueryTimeZone() (TimeZoneMode, error) {
	if err := procDynamicTimeZone.Find(); err != nil {
		return nil, errors.New(errors.PhaseQuery, errors.KindUnsupported).
			Detail("%s unavailable", procGetDynamicTimeZoneInformation).
			Cause(err).
			Build()
	}

	var raw RawDynamicTimeZone
	r1, _, _ := procDynamicTimeZone.Call(uintptr(unsafe.Pointer(&raw)))

	return FromStatus(uint32(r1), func() *RawDynamicTimeZone { return &raw })
}

// QueryGeoHint returns the user's configured region code, e.g. "US".
func QueryGeoHint() (string, error) {
	if err := procUserGeoName.Find(); err != nil {
		return "", errors.New(errors.PhaseQuery, errors.KindUnsupported).
			Detail("%s unavailable", procGetUserDefaultGeoName).
			Cause(err).
			Build()
	}

	var buf [GeoNameLen]uint16
	r1, _, e1 := procUserGeoName.Call(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if int32(r1) == 0 {
		return "", syscallError(procGetUserDefaultGeoName, e1)
	}

	return DecodeGeoName(buf)
}

func syscallError(fn string, err error) error {
	errno, ok := err.(windows.Errno)
	if !ok {
		return errors.Syscall(fn, 0, err)
	}
	return errors.Syscall(fn, uint32(errno), errno)
}
