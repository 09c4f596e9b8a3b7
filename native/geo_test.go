package native

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/tzresolve/errors"
)

func TestDecodeGeoName(t *testing.T) {
	tests := []struct {
		name    string
		buf     [GeoNameLen]uint16
		want    string
		wantErr error
	}{
		{"two letters", [GeoNameLen]uint16{'U', 'S', 0}, "US", nil},
		{"terminator slot ignored", [GeoNameLen]uint16{'I', 'E', 'X'}, "IE", nil},
		{"empty", [GeoNameLen]uint16{}, "", nil},
		{"one letter", [GeoNameLen]uint16{'Q', 0, 0}, "Q", nil},
		{"non-ascii", [GeoNameLen]uint16{'D', 0x00c4, 0}, "", errors.ErrIllformedTimeZoneString},
		{"gap", [GeoNameLen]uint16{0, 'E', 0}, "", errors.ErrIllformedTimeZoneString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeGeoName(tt.buf)
			if tt.wantErr != nil {
				if !stderrors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
