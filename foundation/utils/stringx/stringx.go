// File: stringx.go
// Title: Python-Style String Methods
// Description: Implements the Python str method surface for Go's native
//              string type on top of the seqx sequence engine. Strings are
//              treated as narrow sequences of bytes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: Rebuilt as byte-oriented facade over seqx

package stringx

import (
	"unicode"

	mdwerrors "github.com/msto63/seqkit/foundation/core/errors"
	"github.com/msto63/seqkit/foundation/utils/seqx"
	"github.com/msto63/seqkit/foundation/utils/slicex"
)

// Window restricts a search to part of a string. See seqx.Window.
type Window = seqx.Window

// Window constructors re-exported for callers that only import stringx
var (
	Whole   = seqx.Whole
	FromPos = seqx.FromPos
	Bounds  = seqx.Bounds
	Extent  = seqx.Extent
)

// NotFound is returned by Find and RFind when the substring is absent
const NotFound = seqx.NotFound

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// Unlike Strip it decodes runes, so U+3000 and friends count as blank.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FirstNonBlank returns the first argument that is not blank, or "".
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}

func needle(s string) seqx.Needle[byte] {
	return seqx.Seq([]byte(s))
}

func needles(list []string) []seqx.Needle[byte] {
	return slicex.Map(list, needle)
}

func toStrings(parts [][]byte) []string {
	return slicex.Map(parts, func(p []byte) string { return string(p) })
}

// Slice returns s[spec] with Python slice semantics, e.g.
// Slice("hello", seqx.Step(-1)) == "olleh".
func Slice(s string, spec seqx.SliceSpec) string {
	return string(seqx.Apply([]byte(s), spec))
}

// SliceExpr parses a "start:stop:step" expression and applies it to s.
func SliceExpr(s, expr string) (string, error) {
	spec, err := seqx.ParseSliceSpec(expr)
	if err != nil {
		return "", mdwerrors.NewErrorBuilder(mdwerrors.ModuleStringx).
			Operation("slice").
			Code(mdwerrors.CodeInvalidFormat).
			Message("invalid slice expression").
			Cause(err).
			Detail("expression", expr).
			Build()
	}
	return Slice(s, spec), nil
}

// At returns the byte at index i; negative indices count from the end.
func At(s string, i int) (byte, error) {
	return seqx.At([]byte(s), i)
}

// Reverse returns the bytes of s in reverse order. Multi-byte UTF-8
// sequences are reversed byte by byte, as Python does for bytes.
func Reverse(s string) string {
	return string(seqx.Reverse([]byte(s)))
}

// Find returns the lowest index of sub within the window, or NotFound.
func Find(s, sub string, w ...Window) int {
	return seqx.Find([]byte(s), needle(sub), w...)
}

// RFind returns the highest index of sub within the window, or NotFound.
func RFind(s, sub string, w ...Window) int {
	return seqx.RFind([]byte(s), needle(sub), w...)
}

// Index is Find that reports absence as a NOT_FOUND error.
func Index(s, sub string, w ...Window) (int, error) {
	return seqx.Index([]byte(s), needle(sub), w...)
}

// RIndex is RFind that reports absence as a NOT_FOUND error.
func RIndex(s, sub string, w ...Window) (int, error) {
	return seqx.RIndex([]byte(s), needle(sub), w...)
}

// Count returns the number of non-overlapping occurrences of sub.
func Count(s, sub string, w ...Window) int {
	return seqx.Count([]byte(s), needle(sub), w...)
}

// Contains reports whether sub occurs within the window.
func Contains(s, sub string, w ...Window) bool {
	return seqx.Contains([]byte(s), needle(sub), w...)
}

// StartsWith reports whether s begins with any of the prefixes.
func StartsWith(s string, prefixes ...string) bool {
	return seqx.StartsWithAny([]byte(s), needles(prefixes))
}

// EndsWith reports whether s ends with any of the suffixes.
func EndsWith(s string, suffixes ...string) bool {
	return seqx.EndsWithAny([]byte(s), needles(suffixes))
}

// StartsWithIn is StartsWith restricted to a window.
func StartsWithIn(s string, w Window, prefixes ...string) bool {
	return seqx.StartsWithAny([]byte(s), needles(prefixes), w)
}

// EndsWithIn is EndsWith restricted to a window.
func EndsWithIn(s string, w Window, suffixes ...string) bool {
	return seqx.EndsWithAny([]byte(s), needles(suffixes), w)
}

// Split splits on every single ASCII whitespace byte. Runs of whitespace
// are not collapsed.
func Split(s string, maxsplit int) []string {
	return toStrings(seqx.Split([]byte(s), maxsplit))
}

// RSplit is Split working from the right.
func RSplit(s string, maxsplit int) []string {
	return toStrings(seqx.RSplit([]byte(s), maxsplit))
}

// SplitOn splits on the literal separator sep. An empty sep splits on
// whitespace.
func SplitOn(s, sep string, maxsplit int) []string {
	return toStrings(seqx.SplitOn([]byte(s), needle(sep), maxsplit))
}

// RSplitOn is SplitOn working from the right.
func RSplitOn(s, sep string, maxsplit int) []string {
	return toStrings(seqx.RSplitOn([]byte(s), needle(sep), maxsplit))
}

// Partition splits s around the first occurrence of sep.
func Partition(s, sep string) (before, match, after string) {
	b, m, a := seqx.Partition([]byte(s), needle(sep))
	return string(b), string(m), string(a)
}

// RPartition splits s around the last occurrence of sep.
func RPartition(s, sep string) (before, match, after string) {
	b, m, a := seqx.RPartition([]byte(s), needle(sep))
	return string(b), string(m), string(a)
}

// Strip removes leading and trailing bytes found in any of the character
// sets; without sets it removes ASCII whitespace.
func Strip(s string, chars ...string) string {
	return string(seqx.Strip([]byte(s), needles(chars)...))
}

// LStrip is Strip on the left end only.
func LStrip(s string, chars ...string) string {
	return string(seqx.LStrip([]byte(s), needles(chars)...))
}

// RStrip is Strip on the right end only.
func RStrip(s string, chars ...string) string {
	return string(seqx.RStrip([]byte(s), needles(chars)...))
}

// SplitLines splits at line boundaries (\n, \r, \r\n, \v, \f, \x1c, \x1d,
// \x1e). keepends retains the terminators.
func SplitLines(s string, keepends bool) []string {
	return toStrings(seqx.SplitLines([]byte(s), keepends))
}

// Join concatenates parts with sep between them.
func Join(sep string, parts ...string) string {
	units := slicex.Map(parts, func(p string) []byte { return []byte(p) })
	return string(seqx.Join(needle(sep), units...))
}

// RemovePrefix returns s without prefix, or s unchanged.
func RemovePrefix(s, prefix string) string {
	return string(seqx.RemovePrefix([]byte(s), needle(prefix)))
}

// RemoveSuffix returns s without suffix, or s unchanged.
func RemoveSuffix(s, suffix string) string {
	return string(seqx.RemoveSuffix([]byte(s), needle(suffix)))
}

// Replace replaces up to count occurrences of old; count < 0 replaces all.
func Replace(s, old, repl string, count int) string {
	return string(seqx.Replace([]byte(s), needle(old), needle(repl), count))
}

// Translate maps every byte found in table to its replacement. An empty
// replacement deletes the byte; unmapped bytes are kept.
func Translate(s string, table map[byte]string) string {
	lookup := seqx.LookupFunc[byte](func(b byte) ([]byte, bool) {
		repl, ok := table[b]
		if !ok {
			return nil, false
		}
		return []byte(repl), true
	})
	return string(seqx.Translate([]byte(s), lookup))
}

// MakeTrans builds a Translate table from parallel from/to lists, deleting
// every byte in deletes. A byte in both from and deletes is deleted.
func MakeTrans(from, to, deletes string) (map[byte]string, error) {
	table, err := seqx.MakeTable([]byte(from), []byte(to), []byte(deletes)...)
	if err != nil {
		return nil, err
	}
	out := make(map[byte]string, len(table))
	for u, r := range table {
		out[u] = string(r)
	}
	return out, nil
}
