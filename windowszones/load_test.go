package windowszones

import (
	stderrors "errors"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/tzresolve/errors"
)

const sampleDoc = `{
  "supplemental": {
    "version": {"_unicodeVersion": "16.0.0", "_cldrVersion": "46"},
    "windowsZones": {
      "mapTimezones": [
        {"mapZone": {"_other": "GMT Standard Time", "_type": "Europe/London", "_territory": "001"}},
        {"mapZone": {"_other": "GMT Standard Time", "_type": "Europe/Dublin", "_territory": "IE"}},
        {"_other": "Tokyo Standard Time", "_type": "Asia/Tokyo", "_territory": "001"}
      ]
    }
  }
}`

func TestParse(t *testing.T) {
	tbl, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}

	if tbl.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tbl.Len())
	}
	if v := tbl.Version(); v.CLDR != "46" || v.Unicode != "16.0.0" {
		t.Errorf("Version = %+v", v)
	}

	for _, tt := range []struct{ native, territory, want string }{
		{"GMT Standard Time", "", "Europe/London"},
		{"GMT Standard Time", "IE", "Europe/Dublin"},
		{"Tokyo Standard Time", "", "Asia/Tokyo"},
	} {
		got, err := tbl.Resolve(tt.native, tt.territory)
		if err != nil || got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, %v; want %q", tt.native, tt.territory, got, err, tt.want)
		}
	}
}

func TestParse_NormalizesZones(t *testing.T) {
	doc := `{"supplemental":{"windowsZones":{"mapTimezones":[
		{"mapZone":{"_other":"X","_type":"  Etc/A   Etc/B ","_territory":"001"}}]}}}`

	tbl, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if got := tbl.Entries()[0].Zones; got != "Etc/A Etc/B" {
		t.Errorf("Zones = %q", got)
	}
	if tbl.Version() != (Version{}) {
		t.Errorf("Version = %+v, want empty", tbl.Version())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		pathPart string
	}{
		{"not json", `{`, ""},
		{"top-level array", `[]`, ""},
		{"missing supplemental", `{"other": {}}`, "supplemental"},
		{"missing windowsZones", `{"supplemental": {"version": {}}}`, "windowsZones"},
		{"missing mapTimezones", `{"supplemental": {"windowsZones": {}}}`, "mapTimezones"},
		{"null mapTimezones", `{"supplemental": {"windowsZones": {"mapTimezones": null}}}`, "mapTimezones"},
		{"mapTimezones not array", `{"supplemental": {"windowsZones": {"mapTimezones": {}}}}`, ""},
		{"empty other", `{"supplemental": {"windowsZones": {"mapTimezones": [{"mapZone": {"_other": "", "_type": "Etc/UTC", "_territory": "001"}}]}}}`, "_other"},
		{"empty type", `{"supplemental": {"windowsZones": {"mapTimezones": [{"mapZone": {"_other": "UTC", "_type": " ", "_territory": "001"}}]}}}`, "_type"},
		{"empty territory", `{"supplemental": {"windowsZones": {"mapTimezones": [{"_other": "UTC", "_type": "Etc/UTC"}]}}}`, "_territory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Parse([]byte(tt.doc))
			if tbl != nil {
				t.Errorf("table returned alongside error")
			}
			if !stderrors.Is(err, errors.ErrDeserializeData) {
				t.Fatalf("err = %v, want ErrDeserializeData", err)
			}
			if tt.pathPart == "" {
				return
			}
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("err is %T", err)
			}
			if !strings.Contains(strings.Join(e.Path, "."), tt.pathPart) {
				t.Errorf("Path = %v, want it to contain %q", e.Path, tt.pathPart)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/cldr/windowsZones.json", []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(fs, "/cldr/windowsZones.json")
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := tbl.Resolve("GMT Standard Time", "IE"); got != "Europe/Dublin" {
		t.Errorf("Resolve = %q", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/bad.json", []byte(`{"supplemental": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(fs, "/missing.json"); !stderrors.Is(err, errors.ErrFileRead) {
		t.Errorf("missing file: err = %v, want ErrFileRead", err)
	}
	if _, err := Load(fs, "/bad.json"); !stderrors.Is(err, errors.ErrDeserializeData) {
		t.Errorf("bad file: err = %v, want ErrDeserializeData", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	path := t.TempDir() + "/nope.json"
	if _, err := LoadFile(path); !stderrors.Is(err, errors.ErrFileRead) {
		t.Errorf("err = %v, want ErrFileRead", err)
	}
}

func TestDefault_Shared(t *testing.T) {
	var wg sync.WaitGroup
	tables := make([]*Table, 8)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tbl, err := Default()
			if err != nil {
				t.Error(err)
				return
			}
			tables[i] = tbl
			_, _ = tbl.Resolve("Eastern Standard Time", "")
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(tables); i++ {
		if tables[i] != tables[0] {
			t.Fatalf("Default returned distinct tables")
		}
	}
	if tables[0].Version().CLDR == "" {
		t.Error("bundled table has no CLDR version")
	}
}

func TestParse_LogsAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	if _, err := Parse([]byte(sampleDoc)); err != nil {
		t.Fatal(err)
	}

	entries := logs.FilterMessage("parsed windows zones table").All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["entries"]; got != int64(3) {
		t.Errorf("entries field = %v (%T)", got, got)
	}
}

func TestSetLogger_IgnoresNil(t *testing.T) {
	prev := Logger()
	SetLogger(nil)
	defer SetLogger(prev)

	if Logger() != prev {
		t.Fatal("SetLogger(nil) replaced the logger")
	}
	if _, err := Parse([]byte(sampleDoc)); err != nil {
		t.Fatal(err)
	}
}
