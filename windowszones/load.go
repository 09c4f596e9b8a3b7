package windowszones

import (
	_ "embed"
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/wippyai/tzresolve/errors"
)

//go:embed data/windowsZones.json
var bundled []byte

var (
	defaultTable *Table
	defaultErr   error
	defaultOnce  sync.Once
)

// Default returns the table bundled with the module.
// It is parsed on first use and shared read-only afterwards.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Parse(bundled)
	})
	return defaultTable, defaultErr
}

// LoadFile reads a CLDR windowsZones JSON document from the OS filesystem.
func LoadFile(path string) (*Table, error) {
	return Load(afero.NewOsFs(), path)
}

// Load reads a CLDR windowsZones JSON document from fs.
func Load(fs afero.Fs, path string) (*Table, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.FileRead(path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, err
	}
	Logger().Debug("loaded windows zones table", zap.String("path", path))
	return t, nil
}

// Parse decodes a CLDR windowsZones JSON document.
// The document must contain supplemental.windowsZones.mapTimezones.
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Deserialize(nil, "invalid windowsZones document", err)
	}
	if doc.Supplemental == nil {
		return nil, missing("supplemental")
	}
	if doc.Supplemental.WindowsZones == nil {
		return nil, missing("supplemental", "windowsZones")
	}
	if doc.Supplemental.WindowsZones.MapTimezones == nil {
		return nil, missing("supplemental", "windowsZones", "mapTimezones")
	}

	elems := *doc.Supplemental.WindowsZones.MapTimezones
	entries := make([]Entry, 0, len(elems))
	for i, elem := range elems {
		e, err := entryFromWire(elem.zone())
		if err != nil {
			return nil, errors.WithPath(err, "supplemental", "windowsZones", "mapTimezones["+strconv.Itoa(i)+"]")
		}
		entries = append(entries, e)
	}

	var version Version
	if v := doc.Supplemental.Version; v != nil {
		version = Version{Unicode: v.UnicodeVersion, CLDR: v.CLDRVersion}
	}

	t := NewTable(entries, version)
	Logger().Debug("parsed windows zones table",
		zap.Int("entries", t.Len()),
		zap.Int("native_ids", len(t.index)),
		zap.String("cldr_version", version.CLDR))
	return t, nil
}

func entryFromWire(z mapZone) (Entry, error) {
	switch {
	case z.Other == "":
		return Entry{}, errors.Deserialize([]string{"_other"}, "empty native identifier", nil)
	case z.Territory == "":
		return Entry{}, errors.Deserialize([]string{"_territory"}, "empty territory", nil)
	}
	zones := strings.Fields(z.Type)
	if len(zones) == 0 {
		return Entry{}, errors.Deserialize([]string{"_type"}, "empty IANA identifier", nil)
	}
	return Entry{
		Native:    z.Other,
		Territory: z.Territory,
		Zones:     strings.Join(zones, " "),
	}, nil
}

func missing(path ...string) error {
	return errors.Deserialize(path, "missing "+path[len(path)-1], nil)
}
