// File: search.go
// Title: Search Engine
// Description: Substring search, counting and prefix/suffix tests over a
//              code-unit sequence, each restricted by an optional window.
//              Absence is reported with the NotFound sentinel; the asserting
//              variants return a structured NOT_FOUND error instead.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package seqx

import (
	"bytes"
	"errors"
	"slices"

	mdwerrors "github.com/msto63/seqkit/foundation/core/errors"
)

// NotFound is returned by Find and RFind when the needle does not occur
const NotFound = -1

// ErrNotFound is the cause carried by Index and RIndex errors
var ErrNotFound = errors.New("substring not found")

// IsNotFound reports whether err signals an absent needle
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Find returns the lowest index at which needle occurs inside the window,
// or NotFound. An empty needle matches at the window start.
func Find[U CodeUnit](hay []U, needle Needle[U], w ...Window) int {
	start, end, ok := windowOf(w).Resolve(len(hay))
	if !ok || start > end {
		return NotFound
	}
	if i := indexOf(hay[start:end], needle.Units()); i >= 0 {
		return start + i
	}
	return NotFound
}

// RFind returns the highest index at which needle occurs inside the window,
// or NotFound. An empty needle matches at the window end.
func RFind[U CodeUnit](hay []U, needle Needle[U], w ...Window) int {
	start, end, ok := windowOf(w).Resolve(len(hay))
	if !ok || start > end {
		return NotFound
	}
	if i := lastIndexOf(hay[start:end], needle.Units()); i >= 0 {
		return start + i
	}
	return NotFound
}

// Index is Find returning a NOT_FOUND error on absence
func Index[U CodeUnit](hay []U, needle Needle[U], w ...Window) (int, error) {
	if i := Find(hay, needle, w...); i != NotFound {
		return i, nil
	}
	return NotFound, notFoundError("index", needle, windowOf(w))
}

// RIndex is RFind returning a NOT_FOUND error on absence
func RIndex[U CodeUnit](hay []U, needle Needle[U], w ...Window) (int, error) {
	if i := RFind(hay, needle, w...); i != NotFound {
		return i, nil
	}
	return NotFound, notFoundError("rindex", needle, windowOf(w))
}

// Contains reports whether needle occurs inside the window
func Contains[U CodeUnit](hay []U, needle Needle[U], w ...Window) bool {
	return Find(hay, needle, w...) != NotFound
}

// Count returns the number of non-overlapping occurrences of needle inside
// the window. An empty needle matches at every position, extent+1 times.
func Count[U CodeUnit](hay []U, needle Needle[U], w ...Window) int {
	start, end, ok := windowOf(w).Resolve(len(hay))
	if !ok || start > end {
		return 0
	}
	sub := needle.Units()
	if len(sub) == 0 {
		return end - start + 1
	}

	n := 0
	for i := start; end-i >= len(sub); {
		j := indexOf(hay[i:end], sub)
		if j < 0 {
			break
		}
		n++
		i += j + len(sub)
	}
	return n
}

// StartsWith reports whether the window begins with needle
func StartsWith[U CodeUnit](hay []U, needle Needle[U], w ...Window) bool {
	return StartsWithAny(hay, []Needle[U]{needle}, w...)
}

// EndsWith reports whether the window ends with needle
func EndsWith[U CodeUnit](hay []U, needle Needle[U], w ...Window) bool {
	return EndsWithAny(hay, []Needle[U]{needle}, w...)
}

// StartsWithAny reports whether the window begins with any candidate, tried
// in order. An empty candidate, or a window of zero or negative extent,
// matches trivially. An empty candidate list never matches.
func StartsWithAny[U CodeUnit](hay []U, needles []Needle[U], w ...Window) bool {
	return affixMatch(hay, needles, windowOf(w), hasPrefix[U])
}

// EndsWithAny is StartsWithAny anchored at the window end
func EndsWithAny[U CodeUnit](hay []U, needles []Needle[U], w ...Window) bool {
	return affixMatch(hay, needles, windowOf(w), hasSuffix[U])
}

func affixMatch[U CodeUnit](hay []U, needles []Needle[U], w Window, match func(s, affix []U) bool) bool {
	if len(needles) == 0 {
		return false
	}
	start, end, ok := w.Resolve(len(hay))
	if !ok || end <= start {
		return true
	}
	view := hay[start:end]
	for _, n := range needles {
		if sub := n.Units(); len(sub) == 0 || match(view, sub) {
			return true
		}
	}
	return false
}

func notFoundError[U CodeUnit](op string, needle Needle[U], w Window) error {
	return mdwerrors.NotFound(mdwerrors.ModuleSeqx, op, needle.Len(), ErrNotFound).
		WithDetail("window", w.String())
}

func hasPrefix[U CodeUnit](s, prefix []U) bool {
	return len(s) >= len(prefix) && slices.Equal(s[:len(prefix)], prefix)
}

func hasSuffix[U CodeUnit](s, suffix []U) bool {
	return len(s) >= len(suffix) && slices.Equal(s[len(s)-len(suffix):], suffix)
}

// indexOf returns the first offset of sub in hay, 0 for an empty sub
func indexOf[U CodeUnit](hay, sub []U) int {
	n := len(sub)
	switch {
	case n == 0:
		return 0
	case n > len(hay):
		return -1
	}
	if h, ok := any(hay).([]byte); ok {
		return bytes.Index(h, any(sub).([]byte))
	}

	first := sub[0]
	for i := 0; i+n <= len(hay); i++ {
		if hay[i] == first && slices.Equal(hay[i+1:i+n], sub[1:]) {
			return i
		}
	}
	return -1
}

// lastIndexOf returns the last offset of sub in hay, len(hay) for an empty sub
func lastIndexOf[U CodeUnit](hay, sub []U) int {
	n := len(sub)
	switch {
	case n == 0:
		return len(hay)
	case n > len(hay):
		return -1
	}
	if h, ok := any(hay).([]byte); ok {
		return bytes.LastIndex(h, any(sub).([]byte))
	}

	first := sub[0]
	for i := len(hay) - n; i >= 0; i-- {
		if hay[i] == first && slices.Equal(hay[i+1:i+n], sub[1:]) {
			return i
		}
	}
	return -1
}
