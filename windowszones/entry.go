package windowszones

import "strings"

// WorldTerritory is the territory used when no region is given.
const WorldTerritory = "001"

// Entry is one (native identifier, territory, IANA identifiers) triple.
type Entry struct {
	Native    string // Windows time zone key name, CLDR "_other"
	Territory string // region code or "001", CLDR "_territory"
	Zones     string // space separated IANA identifiers, CLDR "_type"
}

// Canonical returns the first IANA identifier listed for the entry.
func (e Entry) Canonical() string {
	if i := strings.IndexByte(e.Zones, ' '); i >= 0 {
		return e.Zones[:i]
	}
	return e.Zones
}

// Aliases returns every IANA identifier listed for the entry, canonical first.
func (e Entry) Aliases() []string {
	return strings.Fields(e.Zones)
}

// Version describes the CLDR release a table was built from.
type Version struct {
	Unicode string
	CLDR    string
}

// wire types for the CLDR JSON document

type document struct {
	Supplemental *supplementalData `json:"supplemental"`
}

type supplementalData struct {
	Version      *versionData      `json:"version"`
	WindowsZones *windowsZonesData `json:"windowsZones"`
}

type versionData struct {
	UnicodeVersion string `json:"_unicodeVersion"`
	CLDRVersion    string `json:"_cldrVersion"`
}

type windowsZonesData struct {
	MapTimezones *[]mapZoneElem `json:"mapTimezones"`
}

// mapZoneElem accepts both the CLDR form {"mapZone": {...}} and a flat triple.
type mapZoneElem struct {
	MapZone *mapZone `json:"mapZone"`
	mapZone
}

type mapZone struct {
	Other     string `json:"_other"`
	Type      string `json:"_type"`
	Territory string `json:"_territory"`
}

func (m mapZoneElem) zone() mapZone {
	if m.MapZone != nil {
		return *m.MapZone
	}
	return m.mapZone
}
