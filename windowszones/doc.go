// Package windowszones maps Windows time zone key names to IANA identifiers
// using the CLDR windowsZones cross-reference table.
//
// A Table is parsed once from the CLDR JSON document and is read-only
// afterwards. Resolution is an exact, case-sensitive match on the pair
// (native identifier, territory). An empty territory means "none given" and
// is replaced by the world territory "001". A miss for a specific territory
// is reported as unknown; ResolveWithFallback is the explicit opt-in for
// retrying with "001".
//
// The table bundled with the module is available through Default; callers
// with a newer CLDR release can Load their own. The bundled copy is a filtered
// CLDR table: rows for the unknown region "ZZ" are omitted, so resolving with
// territory "ZZ" fails against it. A full CLDR file loaded with Load keeps
// those rows.
package windowszones
