package asciistr

import (
	"strconv"

	"github.com/wippyai/tzresolve/errors"
)

// MaxASCII is the largest code unit accepted by the decoder.
const MaxASCII = 0x7F

// Str is an owned ASCII string with a fixed capacity in bytes.
// The zero value is an empty string with zero capacity.
type Str struct {
	value    string
	capacity int
}

// String returns the decoded text.
func (s Str) String() string { return s.value }

// Len returns the length of the text in bytes.
func (s Str) Len() int { return len(s.value) }

// Cap returns the capacity the string was decoded against.
func (s Str) Cap() int { return s.capacity }

// IsEmpty reports whether the text is empty.
func (s Str) IsEmpty() bool { return s.value == "" }

// Equal compares text only; capacities may differ.
func (s Str) Equal(o Str) bool { return s.value == o.value }

// FromUTF16 decodes units using len(units) as capacity.
func FromUTF16(units []uint16) (Str, error) {
	return FromUTF16Cap(units, len(units))
}

// FromUTF16Cap decodes a NUL-padded buffer of UTF-16 code units.
// Decoding stops at the first NUL; every unit after it must also be NUL.
func FromUTF16Cap(units []uint16, capacity int) (Str, error) {
	if capacity < 0 {
		return Str{}, errors.IllformedString(nil, "negative capacity "+strconv.Itoa(capacity))
	}

	n := 0
	for n < len(units) && units[n] != 0 {
		n++
	}
	for i := n + 1; i < len(units); i++ {
		if units[i] != 0 {
			return Str{}, errors.New(errors.PhaseDecode, errors.KindIllformedString).
				Path(index(i)).
				Value(units[i]).
				Detail("non-NUL code unit %#04x after terminator at index %d", units[i], n).
				Build()
		}
	}
	if n > capacity {
		return Str{}, errors.Overflow(nil, n, capacity)
	}

	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		u := units[i]
		if u > MaxASCII {
			return Str{}, errors.New(errors.PhaseDecode, errors.KindIllformedString).
				Path(index(i)).
				Value(u).
				Detail("code unit %#04x is not ASCII", u).
				Build()
		}
		buf[i] = byte(u)
	}

	return Str{value: string(buf), capacity: capacity}, nil
}

// FromString validates s against the same rules as the UTF-16 decoder.
// Embedded NUL bytes are rejected since s carries no padding.
func FromString(s string, capacity int) (Str, error) {
	if capacity < 0 {
		return Str{}, errors.IllformedString(nil, "negative capacity "+strconv.Itoa(capacity))
	}
	if len(s) > capacity {
		return Str{}, errors.Overflow(nil, len(s), capacity)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 0 || c > MaxASCII {
			return Str{}, errors.New(errors.PhaseDecode, errors.KindIllformedString).
				Path(index(i)).
				Value(c).
				Detail("byte %#02x is not allowed in an ASCII identifier", c).
				Build()
		}
	}
	return Str{value: s, capacity: capacity}, nil
}

// MustFromString is like FromString but panics on error.
// Intended for package-level constants and tests.
func MustFromString(s string, capacity int) Str {
	v, err := FromString(s, capacity)
	if err != nil {
		panic(err)
	}
	return v
}

func index(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
