// File: slice_test.go
// Title: Unit Tests for Index Normalization and Cursors
// Description: Table-driven tests for SliceSpec normalization, Apply,
//              cursor traversal and re-binding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package seqx

import (
	"slices"
	"testing"

	mdwerror "github.com/msto63/seqkit/foundation/core/error"
)

func TestApply(t *testing.T) {
	hay := []byte("abcdef")
	tests := []struct {
		name     string
		spec     SliceSpec
		expected string
	}{
		{"all", All(), "abcdef"},
		{"from", From(2), "cdef"},
		{"from negative", From(-2), "ef"},
		{"from beyond end", From(10), ""},
		{"to negative", To(-1), "abcde"},
		{"to beyond end", To(100), "abcdef"},
		{"reverse", Step(-1), "fedcba"},
		{"every second", Step(2), "ace"},
		{"every second reversed", Step(-2), "fdb"},
		{"range", Range(1, 4), "bcd"},
		{"inverted range", Range(4, 1), ""},
		{"range clamped", Range(-100, 100), "abcdef"},
		{"from step backwards", FromStep(4, -1), "edcba"},
		{"from last step back two", FromStep(-1, -2), "fdb"},
		{"to step backwards", ToStep(2, -1), "fed"},
		{"full", Full(1, -1, 2), "bd"},
		{"full backwards", Full(5, 0, -2), "fdb"},
		{"full backwards clamped out", Full(-10, 10, -1), ""},
		{"zero step resolves to one", Step(0), "abcdef"},
		{"zero step with start", FromStep(3, 0), "def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := string(Apply(hay, tt.spec))
			if result != tt.expected {
				t.Errorf("Apply(%q, %s) = %q; want %q", hay, tt.spec, result, tt.expected)
			}
		})
	}
}

func TestApplyEmptySequence(t *testing.T) {
	for _, spec := range []SliceSpec{All(), Step(-1), Full(-1, -5, -1), From(3)} {
		if got := Apply([]rune{}, spec); len(got) != 0 {
			t.Errorf("Apply(empty, %s) = %v; want empty", spec, got)
		}
	}
}

func TestIndices(t *testing.T) {
	tests := []struct {
		name     string
		spec     SliceSpec
		length   int
		expected NormalizedRange
		count    int
	}{
		{"defaults forward", All(), 6, NormalizedRange{0, 6, 1}, 6},
		{"defaults backward", Step(-1), 6, NormalizedRange{5, -1, -1}, 6},
		{"negative wraps once", Range(-2, -1), 6, NormalizedRange{4, 5, 1}, 1},
		{"forward clamp", Range(-10, 10), 6, NormalizedRange{0, 6, 1}, 6},
		{"backward clamp", Full(10, -10, -1), 6, NormalizedRange{5, -1, -1}, 6},
		{"odd stride", Full(1, -1, 2), 6, NormalizedRange{1, 5, 2}, 2},
		{"empty sequence backward", Step(-1), 0, NormalizedRange{-1, -1, -1}, 0},
		{"negative length treated as empty", All(), -3, NormalizedRange{0, 0, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := tt.spec.Indices(tt.length)
			if rng != tt.expected {
				t.Errorf("%s.Indices(%d) = %+v; want %+v", tt.spec, tt.length, rng, tt.expected)
			}
			if rng.Len() != tt.count {
				t.Errorf("Len() = %d; want %d", rng.Len(), tt.count)
			}
			if rng.Empty() != (tt.count == 0) {
				t.Errorf("Empty() = %v; want %v", rng.Empty(), tt.count == 0)
			}
		})
	}
}

func TestNormalizedRangeLastAndContains(t *testing.T) {
	rng := Full(1, -1, 2).Indices(6)
	if rng.Last() != 3 {
		t.Errorf("Last() = %d; want 3", rng.Last())
	}
	for i, want := range []bool{false, true, false, true, false, false} {
		if got := rng.Contains(i); got != want {
			t.Errorf("Contains(%d) = %v; want %v", i, got, want)
		}
	}

	back := Step(-2).Indices(6)
	if back.Last() != 1 || !back.Contains(3) || back.Contains(2) {
		t.Errorf("unexpected backward range %+v", back)
	}

	if (NormalizedRange{}).Last() != -1 {
		t.Error("zero range should have no last index")
	}
}

func TestSliceSpecAccessors(t *testing.T) {
	spec := Full(1, 5, 2)
	if v, ok := spec.Start(); v != 1 || !ok {
		t.Errorf("Start() = %d, %v", v, ok)
	}
	if v, ok := spec.Stop(); v != 5 || !ok {
		t.Errorf("Stop() = %d, %v", v, ok)
	}
	if _, ok := All().Start(); ok {
		t.Error("All() should not carry a start")
	}
	if Step(0).Step() != 1 {
		t.Error("zero step should resolve to 1")
	}
	if Step(0) != All() {
		t.Error("Step(0) should equal All()")
	}
}

func TestParseSliceSpec(t *testing.T) {
	tests := []struct {
		input    string
		expected SliceSpec
		wantErr  bool
	}{
		{"1:4", Range(1, 4), false},
		{"::-1", Step(-1), false},
		{":", All(), false},
		{"::", All(), false},
		{"-3:", From(-3), false},
		{" 1 : -1 : 2 ", Full(1, -1, 2), false},
		{"5", SliceSpec{}, true},
		{"a:b", SliceSpec{}, true},
		{"1:2:3:4", SliceSpec{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			spec, err := ParseSliceSpec(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSliceSpec(%q) expected error", tt.input)
				}
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
					t.Errorf("expected INVALID_FORMAT, got %v", mdwerror.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSliceSpec(%q) unexpected error: %v", tt.input, err)
			}
			if spec != tt.expected {
				t.Errorf("ParseSliceSpec(%q) = %s; want %s", tt.input, spec, tt.expected)
			}
		})
	}
}

func TestSliceSpecString(t *testing.T) {
	tests := map[string]SliceSpec{
		":":      All(),
		"2:":     From(2),
		"::-1":   Step(-1),
		"1:-1:2": Full(1, -1, 2),
	}
	for want, spec := range tests {
		if got := spec.String(); got != want {
			t.Errorf("String() = %q; want %q", got, want)
		}
	}
}

func TestCursor(t *testing.T) {
	c := NewCursor(Step(-2), 7)

	var visited []int
	for ; !c.Exhausted(); c.Advance() {
		visited = append(visited, c.Position())
	}
	if !slices.Equal(visited, []int{6, 4, 2, 0}) {
		t.Errorf("visited %v; want [6 4 2 0]", visited)
	}

	c.Advance()
	if !c.Exhausted() || c.Remaining() != 0 {
		t.Error("advancing an exhausted cursor should be a no-op")
	}

	c.Reset()
	if c.Position() != 6 || c.Remaining() != 4 {
		t.Errorf("after Reset position=%d remaining=%d", c.Position(), c.Remaining())
	}
}

func TestCursorRebind(t *testing.T) {
	c := NewCursor(FromStep(-1, -3), 10)

	if first := c.Rebind(4); first != 3 {
		t.Errorf("Rebind(4) = %d; want 3", first)
	}
	a := slices.Collect(c.Indices())

	c.Advance()
	if first := c.Rebind(4); first != 3 {
		t.Errorf("second Rebind(4) = %d; want 3", first)
	}
	b := slices.Collect(c.Indices())

	if !slices.Equal(a, b) || !slices.Equal(a, []int{3, 0}) {
		t.Errorf("rebinding changed traversal: %v vs %v", a, b)
	}

	if first := Bind(c, []uint16{1, 2, 3, 4, 5, 6, 7}); first != 6 {
		t.Errorf("Bind = %d; want 6", first)
	}
	if c.Spec() != FromStep(-1, -3) {
		t.Error("cursor lost its spec")
	}
}

func TestCursorIndicesDoesNotMove(t *testing.T) {
	c := NewCursor(Range(1, 4), 6)
	c.Advance()
	_ = slices.Collect(c.Indices())
	if c.Position() != 2 {
		t.Errorf("Indices moved the cursor to %d", c.Position())
	}

	var first []int
	for i := range c.Indices() {
		first = append(first, i)
		break
	}
	if !slices.Equal(first, []int{1}) {
		t.Errorf("early break yielded %v", first)
	}
}

func TestReverse(t *testing.T) {
	if got := string(Reverse([]rune("héllo"))); got != "olléh" {
		t.Errorf("Reverse = %q", got)
	}
	if got := Reverse([]byte{}); len(got) != 0 {
		t.Errorf("Reverse(empty) = %v", got)
	}
}

func TestAt(t *testing.T) {
	seq := []byte("abc")
	tests := []struct {
		index    int
		expected byte
		wantErr  bool
	}{
		{0, 'a', false},
		{2, 'c', false},
		{-1, 'c', false},
		{-3, 'a', false},
		{3, 0, true},
		{-4, 0, true},
	}

	for _, tt := range tests {
		got, err := At(seq, tt.index)
		if tt.wantErr {
			if err == nil {
				t.Errorf("At(%d) expected error", tt.index)
				continue
			}
			if !mdwerror.HasCode(err, mdwerror.CodeOutOfRange) {
				t.Errorf("At(%d) code = %s; want OUT_OF_RANGE", tt.index, mdwerror.GetCode(err))
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("At(%d) = %q, %v; want %q", tt.index, got, err, tt.expected)
		}
	}
}
