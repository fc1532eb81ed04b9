// File: window.go
// Title: Search Windows
// Description: A window restricts a search to part of the haystack. It comes
//              in an absolute form (pos, end) and a relative form (pos, count)
//              and resolves to a clamped half-open range.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package seqx

import "fmt"

// Window is an optional search restriction. The zero value is the whole
// sequence.
type Window struct {
	pos    int
	end    int
	hasEnd bool
	extent bool
}

// Whole searches the entire sequence
func Whole() Window { return Window{} }

// FromPos searches from pos to the end
func FromPos(pos int) Window { return Window{pos: pos} }

// Bounds searches the half-open range [pos, end)
func Bounds(pos, end int) Window { return Window{pos: pos, end: end, hasEnd: true} }

// Extent searches count units starting at pos. A negative count means "to
// the end".
func Extent(pos, count int) Window {
	if count < 0 {
		return FromPos(pos)
	}
	return Window{pos: pos, end: count, hasEnd: true, extent: true}
}

// Resolve returns the clamped range [start, end) the window covers in a
// sequence of the given length. Negative positions wrap once. ok is false
// when start lies beyond the sequence; end may be smaller than start.
func (w Window) Resolve(length int) (start, end int, ok bool) {
	start = w.pos
	if start < 0 {
		start += length
		if start < 0 {
			start = 0
		}
	}
	if start > length {
		return start, start, false
	}

	end = length
	if !w.hasEnd {
		return start, end, true
	}

	if w.extent {
		if w.end < length-start {
			end = start + w.end
		}
		return start, end, true
	}

	end = w.end
	switch {
	case end < 0:
		end += length
		if end < 0 {
			end = 0
		}
	case end > length:
		end = length
	}
	return start, end, true
}

// String renders the window for diagnostics
func (w Window) String() string {
	switch {
	case !w.hasEnd:
		return fmt.Sprintf("[%d:]", w.pos)
	case w.extent:
		return fmt.Sprintf("[%d:+%d]", w.pos, w.end)
	default:
		return fmt.Sprintf("[%d:%d]", w.pos, w.end)
	}
}

func windowOf(w []Window) Window {
	if len(w) == 0 {
		return Whole()
	}
	return w[0]
}
