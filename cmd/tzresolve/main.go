package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/tzresolve"
	"github.com/wippyai/tzresolve/native"
	"github.com/wippyai/tzresolve/windowszones"
)

type options struct {
	dataFile    string
	nativeID    string
	territory   string
	fallback    bool
	list        bool
	record      bool
	interactive bool
	verbose     bool
}

func main() {
	var o options
	flag.StringVar(&o.dataFile, "data", "", "Path to a CLDR windowsZones.json (default: bundled table)")
	flag.StringVar(&o.nativeID, "native", "", "Resolve this Windows time zone key name instead of querying the OS")
	flag.StringVar(&o.territory, "territory", "", "Territory code to resolve with (default: OS region, or 001 with -native)")
	flag.BoolVar(&o.fallback, "fallback", false, "Retry with territory 001 when the territory has no entry")
	flag.BoolVar(&o.list, "list", false, "List the cross-reference table and exit")
	flag.BoolVar(&o.record, "record", false, "Print the decoded native time zone record")
	flag.BoolVar(&o.interactive, "i", false, "Interactive mode with TUI")
	flag.BoolVar(&o.verbose, "v", false, "Verbose logging")
	flag.Parse()

	log := newLogger(o.verbose)
	defer func() { _ = log.Sync() }()
	windowszones.SetLogger(log.Named("windowszones"))

	if o.interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(o); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(os.Stdout, o, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func loadTable(path string) (*windowszones.Table, error) {
	if path == "" {
		return windowszones.Default()
	}
	return windowszones.LoadFile(path)
}

func run(w io.Writer, o options, log *zap.Logger) error {
	table, err := loadTable(o.dataFile)
	if err != nil {
		return fmt.Errorf("load table: %w", err)
	}
	v := table.Version()
	log.Debug("table ready", zap.Int("entries", table.Len()), zap.String("cldr", v.CLDR))

	if o.list {
		return listTable(w, table)
	}

	resolver := tzresolve.NewResolver(tzresolve.WithTable(table), tzresolve.WithFallback(o.fallback))

	if o.nativeID != "" {
		id, err := resolver.Resolve(o.nativeID, o.territory)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, id)
		return nil
	}

	mode, err := tzresolve.GetNativeTimeZone()
	if err != nil {
		return fmt.Errorf("query time zone: %w", err)
	}
	log.Debug("native time zone", zap.Stringer("mode", mode))

	if o.record {
		printRecord(w, mode)
	}

	territory := o.territory
	if territory == "" {
		territory, err = native.QueryGeoHint()
		if err != nil {
			return fmt.Errorf("query region: %w", err)
		}
		log.Debug("region", zap.String("territory", territory))
	}

	id, err := resolver.Resolve(mode.Record().KeyName.String(), territory)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, id)
	return nil
}

func listTable(w io.Writer, t *windowszones.Table) error {
	v := t.Version()
	if v.CLDR != "" {
		fmt.Fprintf(w, "CLDR %s (Unicode %s), %d entries\n\n", v.CLDR, v.Unicode, t.Len())
	}
	for _, e := range t.Entries() {
		if _, err := fmt.Fprintf(w, "%-40s %-4s %s\n", e.Native, e.Territory, e.Zones); err != nil {
			return err
		}
	}
	return nil
}

func printRecord(w io.Writer, mode native.TimeZoneMode) {
	rec := mode.Record()
	state := "standard"
	if mode.IsDaylightSaving() {
		state = "daylight saving"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Key name:       %s\n", rec.KeyName)
	fmt.Fprintf(&b, "In effect:      %s\n", state)
	fmt.Fprintf(&b, "Bias:           %d min\n", rec.Bias)
	fmt.Fprintf(&b, "Standard name:  %s (bias %d, %s)\n", rec.StandardName, rec.StandardBias, rec.StandardDate)
	fmt.Fprintf(&b, "Daylight name:  %s (bias %d, %s)\n", rec.DaylightName, rec.DaylightBias, rec.DaylightDate)
	fmt.Fprintf(&b, "Dynamic DST:    %t\n\n", !rec.DynamicDaylightDisabled())
	fmt.Fprint(w, b.String())
}
