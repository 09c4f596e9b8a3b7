// Package asciistr decodes fixed-width, NUL-padded wide-character buffers into
// bounded ASCII identifiers.
//
// Native APIs return names in fixed arrays of UTF-16 code units. Every value
// this module cares about (zone key names, display names, region codes) is a
// short ASCII identifier, so decoding is strict: a code unit above 0x7F, a
// non-NUL unit after the terminator, or more units than the declared capacity
// all fail. Nothing is ever truncated.
package asciistr
