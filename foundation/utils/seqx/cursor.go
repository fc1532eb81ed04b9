// File: cursor.go
// Title: Slice Cursor
// Description: Stateful traversal of a normalized range. A cursor keeps the
//              spec it was built from, so it can be re-bound to a sequence of
//              a different length and replay the same selection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package seqx

import (
	"iter"

	mdwerrors "github.com/msto63/seqkit/foundation/core/errors"
)

// Cursor walks the indices selected by a SliceSpec. A Cursor is not safe for
// concurrent use.
type Cursor struct {
	spec      SliceSpec
	rng       NormalizedRange
	pos       int
	remaining int
}

// NewCursor creates a cursor for spec bound to a sequence of the given length
func NewCursor(spec SliceSpec, length int) *Cursor {
	c := &Cursor{spec: spec}
	c.Rebind(length)
	return c
}

// Rebind re-applies the original spec to a new length, resets the cursor and
// returns the first absolute index.
func (c *Cursor) Rebind(length int) int {
	c.rng = c.spec.Indices(length)
	c.Reset()
	return c.pos
}

// Reset rewinds to the first index of the current binding
func (c *Cursor) Reset() {
	c.pos = c.rng.First
	c.remaining = c.rng.Len()
}

// Position returns the current absolute index. It is meaningless once the
// cursor is exhausted.
func (c *Cursor) Position() int { return c.pos }

// Exhausted reports whether no further index remains
func (c *Cursor) Exhausted() bool { return c.remaining == 0 }

// Remaining returns the number of indices still to visit, the current included
func (c *Cursor) Remaining() int { return c.remaining }

// Range returns the normalized range of the current binding
func (c *Cursor) Range() NormalizedRange { return c.rng }

// Spec returns the spec the cursor was built from
func (c *Cursor) Spec() SliceSpec { return c.spec }

// Advance moves by one step. Advancing an exhausted cursor is a no-op.
func (c *Cursor) Advance() {
	if c.remaining == 0 {
		return
	}
	c.remaining--
	c.pos += c.rng.Step
}

// Indices yields every index of the current binding without moving the cursor
func (c *Cursor) Indices() iter.Seq[int] {
	rng := c.rng
	return func(yield func(int) bool) {
		for k, n := 0, rng.Len(); k < n; k++ {
			if !yield(rng.Nth(k)) {
				return
			}
		}
	}
}

// Bind rebinds c to seq and returns the first absolute index
func Bind[U CodeUnit](c *Cursor, seq []U) int {
	return c.Rebind(len(seq))
}

// Apply materializes the elements of seq selected by spec, in visiting order
func Apply[U CodeUnit](seq []U, spec SliceSpec) []U {
	c := NewCursor(spec, len(seq))
	out := make([]U, 0, c.Remaining())
	for ; !c.Exhausted(); c.Advance() {
		out = append(out, seq[c.Position()])
	}
	return out
}

// Reverse returns a reversed copy of seq
func Reverse[U CodeUnit](seq []U) []U {
	return Apply(seq, Step(-1))
}

// At returns the element at index i; negative indices count from the end
func At[U CodeUnit](seq []U, i int) (U, error) {
	j := i
	if j < 0 {
		j += len(seq)
	}
	if j < 0 || j >= len(seq) {
		var zero U
		return zero, mdwerrors.OutOfRange(mdwerrors.ModuleSeqx, "at", i, -len(seq), len(seq)-1)
	}
	return seq[j], nil
}

func invalidSpec(text string) error {
	return mdwerrors.InvalidFormat(mdwerrors.ModuleSeqx, text, "START:STOP[:STEP]")
}
