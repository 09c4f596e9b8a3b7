package native

import (
	"github.com/wippyai/tzresolve/asciistr"
	"github.com/wippyai/tzresolve/errors"
)

const procGetDynamicTimeZoneInformation = "GetDynamicTimeZoneInformation"

// FromStatus interprets the status returned by GetDynamicTimeZoneInformation.
//
// load is called only when status affirms that the record was written
// (StatusStandard or StatusDaylight). For StatusUnknown and any unexpected
// status the record is never touched. A nil load is treated as a nil record.
func FromStatus(status uint32, load func() *RawDynamicTimeZone) (TimeZoneMode, error) {
	switch status {
	case StatusUnknown:
		return nil, errors.TimeZoneUnknown(errors.PhaseQuery, "no time zone is configured")

	case StatusStandard:
		rec, err := decodeLoaded(load)
		if err != nil {
			return nil, err
		}
		return Standard{rec}, nil

	case StatusDaylight:
		rec, err := decodeLoaded(load)
		if err != nil {
			return nil, err
		}
		return DaylightSaving{rec}, nil

	default:
		return nil, errors.InvalidReturnCode(procGetDynamicTimeZoneInformation, status)
	}
}

func decodeLoaded(load func() *RawDynamicTimeZone) (TimeZoneRecord, error) {
	if load == nil {
		return DecodeRecord(nil)
	}
	return DecodeRecord(load())
}

// DecodeRecord copies raw into an owned TimeZoneRecord.
// It fails without a partial result if any text field is ill-formed.
func DecodeRecord(raw *RawDynamicTimeZone) (TimeZoneRecord, error) {
	if raw == nil {
		return TimeZoneRecord{}, errors.New(errors.PhaseDecode, errors.KindIllformedString).
			Path("record").
			Detail("nil native record").
			Build()
	}

	standardName, err := decodeField("StandardName", raw.StandardName[:])
	if err != nil {
		return TimeZoneRecord{}, err
	}
	daylightName, err := decodeField("DaylightName", raw.DaylightName[:])
	if err != nil {
		return TimeZoneRecord{}, err
	}
	keyName, err := decodeField("TimeZoneKeyName", raw.TimeZoneKeyName[:])
	if err != nil {
		return TimeZoneRecord{}, err
	}

	return TimeZoneRecord{
		Bias:                        raw.Bias,
		StandardName:                standardName,
		StandardDate:                systemTimeFromRaw(raw.StandardDate),
		StandardBias:                raw.StandardBias,
		DaylightName:                daylightName,
		DaylightDate:                systemTimeFromRaw(raw.DaylightDate),
		DaylightBias:                raw.DaylightBias,
		KeyName:                     keyName,
		DynamicDaylightTimeDisabled: raw.DynamicDaylightTimeDisabled,
	}, nil
}

func decodeField(name string, units []uint16) (asciistr.Str, error) {
	s, err := asciistr.FromUTF16(units)
	if err != nil {
		return asciistr.Str{}, errors.WithPath(err, "record", name)
	}
	return s, nil
}
