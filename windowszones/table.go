package windowszones

import (
	"sort"

	"github.com/wippyai/tzresolve/errors"
)

// Table is a parsed, read-only cross-reference table.
// It is safe for concurrent use.
type Table struct {
	entries []Entry
	// index maps native id -> territory -> position in entries.
	// The first entry in source order wins for a duplicated pair.
	index   map[string]map[string]int
	version Version
}

// NewTable builds a table from entries in priority order.
func NewTable(entries []Entry, version Version) *Table {
	t := &Table{
		entries: append([]Entry(nil), entries...),
		index:   make(map[string]map[string]int),
		version: version,
	}
	for i, e := range t.entries {
		byTerritory, ok := t.index[e.Native]
		if !ok {
			byTerritory = make(map[string]int)
			t.index[e.Native] = byTerritory
		}
		if _, dup := byTerritory[e.Territory]; dup {
			continue
		}
		byTerritory[e.Territory] = i
	}
	return t
}

// Resolve returns the canonical IANA identifier for native in territory.
// An empty territory resolves against WorldTerritory. There is no retry with
// WorldTerritory when a specific territory has no entry. Rows whose _type
// lists several identifiers resolve to the first one; see Entry.Aliases.
func (t *Table) Resolve(native, territory string) (string, error) {
	e, err := t.Lookup(native, territory)
	if err != nil {
		return "", err
	}
	return e.Canonical(), nil
}

// ResolveWithFallback is Resolve, retrying with WorldTerritory when the
// requested territory has no entry.
func (t *Table) ResolveWithFallback(native, territory string) (string, error) {
	id, err := t.Resolve(native, territory)
	if err == nil || territory == "" || territory == WorldTerritory {
		return id, err
	}
	return t.Resolve(native, WorldTerritory)
}

// Lookup returns the entry matching native and territory.
func (t *Table) Lookup(native, territory string) (Entry, error) {
	if territory == "" {
		territory = WorldTerritory
	}
	if i, ok := t.index[native][territory]; ok {
		return t.entries[i], nil
	}
	return Entry{}, errors.New(errors.PhaseResolve, errors.KindTimeZoneUnknown).
		Value(native).
		Detail("no mapping for %q in territory %q", native, territory).
		Build()
}

// Territories returns the territories native has entries for, sorted.
func (t *Table) Territories(native string) []string {
	byTerritory := t.index[native]
	out := make([]string, 0, len(byTerritory))
	for territory := range byTerritory {
		out = append(out, territory)
	}
	sort.Strings(out)
	return out
}

// NativeIDs returns every native identifier in the table, sorted.
func (t *Table) NativeIDs() []string {
	out := make([]string, 0, len(t.index))
	for native := range t.index {
		out = append(out, native)
	}
	sort.Strings(out)
	return out
}

// Entries returns a copy of the entries in source order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of entries, duplicates included.
func (t *Table) Len() int { return len(t.entries) }

// Version returns the CLDR version metadata, empty if the document had none.
func (t *Table) Version() Version { return t.version }
