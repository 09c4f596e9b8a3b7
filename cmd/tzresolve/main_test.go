package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/wippyai/tzresolve/windowszones"
)

func TestRun_Native(t *testing.T) {
	tests := []struct {
		name string
		opts options
		want string
	}{
		{"world", options{nativeID: "Eastern Standard Time"}, "America/New_York"},
		{"territory", options{nativeID: "GMT Standard Time", territory: "IE"}, "Europe/Dublin"},
		{"fallback", options{nativeID: "Eastern Standard Time", territory: "ZZ", fallback: true}, "America/New_York"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(&out, tt.opts, zap.NewNop()); err != nil {
				t.Fatal(err)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRun_NativeUnknownTerritory(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, options{nativeID: "Eastern Standard Time", territory: "ZZ"}, zap.NewNop())
	if err == nil {
		t.Fatalf("expected error, got output %q", out.String())
	}
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, options{list: true}, zap.NewNop()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Europe/Dublin") {
		t.Error("listing does not contain Europe/Dublin")
	}
}

func TestRun_DataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.json")
	doc := `{"supplemental":{"windowsZones":{"mapTimezones":[
		{"mapZone":{"_other":"Lab Standard Time","_type":"Etc/GMT-3","_territory":"001"}}]}}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(&out, options{dataFile: path, nativeID: "Lab Standard Time"}, zap.NewNop()); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "Etc/GMT-3" {
		t.Errorf("got %q", got)
	}

	if err := run(&out, options{dataFile: path + ".missing", list: true}, zap.NewNop()); err == nil {
		t.Error("expected error for missing data file")
	}
}

func TestFilterEntries(t *testing.T) {
	entries := []windowszones.Entry{
		{Native: "GMT Standard Time", Territory: "001", Zones: "Europe/London"},
		{Native: "GMT Standard Time", Territory: "IE", Zones: "Europe/Dublin"},
		{Native: "Tokyo Standard Time", Territory: "JP", Zones: "Asia/Tokyo"},
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"gmt", 2},
		{"gmt ie", 1},
		{"dublin", 1},
		{"  TOKYO  ", 1},
		{"mars", 0},
	}

	for _, tt := range tests {
		if got := filterEntries(entries, tt.query); len(got) != tt.want {
			t.Errorf("filterEntries(%q) = %d entries, want %d", tt.query, len(got), tt.want)
		}
	}
	if len(entries) != 3 || entries[1].Territory != "IE" {
		t.Error("filterEntries modified its input")
	}
}
