// File: slice.go
// Title: Slice Specification and Index Normalization
// Description: SliceSpec describes an optional start/stop/step triple and
//              normalizes it against a concrete length into the absolute
//              range a traversal visits. All eight argument combinations
//              collapse into the one SliceSpec and share one normalization
//              routine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package seqx

import (
	"strconv"
	"strings"
)

// SliceSpec is a start/stop/step triple where each member may be absent.
// The zero value selects the whole sequence.
type SliceSpec struct {
	start, stop, step int

	hasStart, hasStop, hasStep bool
}

// All selects every element
func All() SliceSpec { return SliceSpec{} }

// From selects from start to the end
func From(start int) SliceSpec { return SliceSpec{}.WithStart(start) }

// To selects from the beginning up to stop
func To(stop int) SliceSpec { return SliceSpec{}.WithStop(stop) }

// Step selects every step-th element; a negative step walks backwards
func Step(step int) SliceSpec { return SliceSpec{}.WithStep(step) }

// Range selects [start, stop)
func Range(start, stop int) SliceSpec { return From(start).WithStop(stop) }

// FromStep selects from start with the given step
func FromStep(start, step int) SliceSpec { return From(start).WithStep(step) }

// ToStep selects up to stop with the given step
func ToStep(stop, step int) SliceSpec { return To(stop).WithStep(step) }

// Full sets all three members
func Full(start, stop, step int) SliceSpec { return Range(start, stop).WithStep(step) }

// WithStart returns a copy with start set
func (s SliceSpec) WithStart(start int) SliceSpec {
	s.start, s.hasStart = start, true
	return s
}

// WithStop returns a copy with stop set
func (s SliceSpec) WithStop(stop int) SliceSpec {
	s.stop, s.hasStop = stop, true
	return s
}

// WithStep returns a copy with step set. A step of 0 clears the step, which
// then resolves to 1.
func (s SliceSpec) WithStep(step int) SliceSpec {
	s.step, s.hasStep = step, step != 0
	return s
}

// Start returns the start and whether it was given
func (s SliceSpec) Start() (int, bool) { return s.start, s.hasStart }

// Stop returns the stop and whether it was given
func (s SliceSpec) Stop() (int, bool) { return s.stop, s.hasStop }

// Step returns the resolved step, never 0
func (s SliceSpec) Step() int {
	if !s.hasStep {
		return 1
	}
	return s.step
}

// String renders the spec in subscript notation, e.g. "1:-1:2" or "::-1"
func (s SliceSpec) String() string {
	var b strings.Builder
	if s.hasStart {
		b.WriteString(strconv.Itoa(s.start))
	}
	b.WriteByte(':')
	if s.hasStop {
		b.WriteString(strconv.Itoa(s.stop))
	}
	if s.hasStep {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(s.step))
	}
	return b.String()
}

// ParseSliceSpec parses subscript notation ("START:STOP:STEP", members
// optional). A bare integer is not accepted; use At for single indices.
func ParseSliceSpec(text string) (SliceSpec, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return SliceSpec{}, invalidSpec(text)
	}

	var spec SliceSpec
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return SliceSpec{}, invalidSpec(text)
		}
		switch i {
		case 0:
			spec = spec.WithStart(v)
		case 1:
			spec = spec.WithStop(v)
		case 2:
			spec = spec.WithStep(v)
		}
	}
	return spec, nil
}

// Indices normalizes the spec against length. Explicit negative members are
// wrapped once by adding length and then clamped in the direction of the
// step. A missing stop with a negative step resolves to the sentinel -1,
// which lies before index 0.
func (s SliceSpec) Indices(length int) NormalizedRange {
	if length < 0 {
		length = 0
	}
	step := s.Step()

	var first, bound int
	switch {
	case s.hasStart:
		first = adjustIndex(s.start, length, step)
	case step > 0:
		first = 0
	default:
		first = length - 1
	}

	switch {
	case s.hasStop:
		bound = adjustIndex(s.stop, length, step)
	case step > 0:
		bound = length
	default:
		bound = -1
	}

	return NormalizedRange{First: first, Bound: bound, Step: step}
}

func adjustIndex(i, length, step int) int {
	if i < 0 {
		i += length
		if i < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
		return i
	}
	if i >= length {
		if step < 0 {
			return length - 1
		}
		return length
	}
	return i
}

// NormalizedRange is a resolved traversal: absolute First, exclusive Bound
// and a non-zero Step.
type NormalizedRange struct {
	First int
	Bound int
	Step  int
}

// Len returns the number of indices the range visits
func (r NormalizedRange) Len() int {
	switch {
	case r.Step > 0 && r.First < r.Bound:
		return (r.Bound-r.First-1)/r.Step + 1
	case r.Step < 0 && r.First > r.Bound:
		return (r.First-r.Bound-1)/(-r.Step) + 1
	default:
		return 0
	}
}

// Empty reports whether the range visits nothing
func (r NormalizedRange) Empty() bool {
	return r.Len() == 0
}

// Nth returns the k-th visited index. k is not checked.
func (r NormalizedRange) Nth(k int) int {
	return r.First + k*r.Step
}

// Last returns the final visited index, or -1 for an empty range
func (r NormalizedRange) Last() int {
	n := r.Len()
	if n == 0 {
		return -1
	}
	return r.Nth(n - 1)
}

// Contains reports whether index i is visited
func (r NormalizedRange) Contains(i int) bool {
	n := r.Len()
	if n == 0 {
		return false
	}
	off := i - r.First
	if off%r.Step != 0 {
		return false
	}
	k := off / r.Step
	return k >= 0 && k < n
}
