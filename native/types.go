package native

import (
	"fmt"

	"github.com/wippyai/tzresolve/asciistr"
)

// Buffer sizes of the native record, in UTF-16 code units.
const (
	NameLen    = 32
	KeyNameLen = 128
	GeoNameLen = 3
)

// Status codes returned by GetDynamicTimeZoneInformation.
const (
	StatusUnknown  uint32 = 0
	StatusStandard uint32 = 1
	StatusDaylight uint32 = 2
	StatusInvalid  uint32 = 0xFFFFFFFF
)

// RawSystemTime mirrors the native SYSTEMTIME layout.
type RawSystemTime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

// RawDynamicTimeZone mirrors the native DYNAMIC_TIME_ZONE_INFORMATION layout.
// Its memory is owned by the query and must not outlive it.
type RawDynamicTimeZone struct {
	Bias                        int32
	StandardName                [NameLen]uint16
	StandardDate                RawSystemTime
	StandardBias                int32
	DaylightName                [NameLen]uint16
	DaylightDate                RawSystemTime
	DaylightBias                int32
	TimeZoneKeyName             [KeyNameLen]uint16
	DynamicDaylightTimeDisabled uint8
}

// SystemTime is a native wall-clock point used as a transition rule.
// No arithmetic is performed on it.
type SystemTime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

// IsZero reports whether the rule is unset, which the OS uses for zones
// without daylight saving transitions.
func (t SystemTime) IsZero() bool {
	return t == SystemTime{}
}

func (t SystemTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d(dow %d) %02d:%02d:%02d.%03d",
		t.Year, t.Month, t.Day, t.DayOfWeek, t.Hour, t.Minute, t.Second, t.Milliseconds)
}

func systemTimeFromRaw(r RawSystemTime) SystemTime {
	return SystemTime(r)
}

// TimeZoneRecord is the decoded dynamic time zone record.
type TimeZoneRecord struct {
	StandardName                asciistr.Str
	DaylightName                asciistr.Str
	KeyName                     asciistr.Str
	StandardDate                SystemTime
	DaylightDate                SystemTime
	Bias                        int32
	StandardBias                int32
	DaylightBias                int32
	DynamicDaylightTimeDisabled uint8
}

// DynamicDaylightDisabled reports whether automatic daylight adjustment is off.
func (r TimeZoneRecord) DynamicDaylightDisabled() bool {
	return r.DynamicDaylightTimeDisabled != 0
}

// TimeZoneMode is either Standard or DaylightSaving.
// It is set once from the native status and never changes.
type TimeZoneMode interface {
	Record() TimeZoneRecord
	IsDaylightSaving() bool
	String() string
	isTimeZoneMode()
}

// Standard means standard time is currently in effect.
type Standard struct {
	TimeZoneRecord
}

func (m Standard) Record() TimeZoneRecord { return m.TimeZoneRecord }
func (Standard) IsDaylightSaving() bool   { return false }
func (Standard) isTimeZoneMode()          {}

func (m Standard) String() string {
	return "standard(" + m.KeyName.String() + ")"
}

// DaylightSaving means daylight saving time is currently in effect.
type DaylightSaving struct {
	TimeZoneRecord
}

func (m DaylightSaving) Record() TimeZoneRecord { return m.TimeZoneRecord }
func (DaylightSaving) IsDaylightSaving() bool   { return true }
func (DaylightSaving) isTimeZoneMode()          {}

func (m DaylightSaving) String() string {
	return "daylight(" + m.KeyName.String() + ")"
}
