// File: segment.go
// Title: Segmenter
// Description: Splitting, partitioning, stripping and joining of code-unit
//              sequences. Whitespace splitting treats every whitespace unit as
//              its own delimiter, so runs of whitespace yield empty segments.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package seqx

import "slices"

// Split splits hay at every whitespace unit. maxsplit limits the number of
// splits from the left; a negative maxsplit means no limit.
func Split[U CodeUnit](hay []U, maxsplit int) [][]U {
	return SplitFunc(hay, maxsplit, spaceTest[U](DefaultClassifier))
}

// RSplit is Split counting maxsplit from the right
func RSplit[U CodeUnit](hay []U, maxsplit int) [][]U {
	return RSplitFunc(hay, maxsplit, spaceTest[U](DefaultClassifier))
}

// SplitWith is Split using classifier c to decide whitespace
func SplitWith[U CodeUnit](hay []U, maxsplit int, c Classifier) [][]U {
	return SplitFunc(hay, maxsplit, spaceTest[U](c))
}

// RSplitWith is RSplit using classifier c to decide whitespace
func RSplitWith[U CodeUnit](hay []U, maxsplit int, c Classifier) [][]U {
	return RSplitFunc(hay, maxsplit, spaceTest[U](c))
}

// SplitFunc splits hay at every unit for which isSep is true
func SplitFunc[U CodeUnit](hay []U, maxsplit int, isSep func(U) bool) [][]U {
	var parts [][]U
	begin := 0
	for i := 0; i < len(hay) && (maxsplit < 0 || len(parts) < maxsplit); i++ {
		if isSep(hay[i]) {
			parts = append(parts, clone(hay[begin:i]))
			begin = i + 1
		}
	}
	return append(parts, clone(hay[begin:]))
}

// RSplitFunc is SplitFunc counting maxsplit from the right
func RSplitFunc[U CodeUnit](hay []U, maxsplit int, isSep func(U) bool) [][]U {
	var parts [][]U
	end := len(hay)
	for i := len(hay) - 1; i >= 0 && (maxsplit < 0 || len(parts) < maxsplit); i-- {
		if isSep(hay[i]) {
			parts = append(parts, clone(hay[i+1:end]))
			end = i
		}
	}
	parts = append(parts, clone(hay[:end]))
	slices.Reverse(parts)
	return parts
}

// SplitOn splits hay at non-overlapping occurrences of sep, scanning from the
// left. An empty separator falls back to whitespace splitting.
func SplitOn[U CodeUnit](hay []U, sep Needle[U], maxsplit int) [][]U {
	s := sep.Units()
	if len(s) == 0 {
		return Split(hay, maxsplit)
	}

	var parts [][]U
	begin := 0
	for maxsplit < 0 || len(parts) < maxsplit {
		j := indexOf(hay[begin:], s)
		if j < 0 {
			break
		}
		parts = append(parts, clone(hay[begin:begin+j]))
		begin += j + len(s)
	}
	return append(parts, clone(hay[begin:]))
}

// RSplitOn is SplitOn scanning from the right
func RSplitOn[U CodeUnit](hay []U, sep Needle[U], maxsplit int) [][]U {
	s := sep.Units()
	if len(s) == 0 {
		return RSplit(hay, maxsplit)
	}

	var parts [][]U
	end := len(hay)
	for maxsplit < 0 || len(parts) < maxsplit {
		j := lastIndexOf(hay[:end], s)
		if j < 0 {
			break
		}
		parts = append(parts, clone(hay[j+len(s):end]))
		end = j
	}
	parts = append(parts, clone(hay[:end]))
	slices.Reverse(parts)
	return parts
}

// Partition splits hay around the first occurrence of sep. Without a match
// the whole input is returned as before. An empty separator matches at 0.
func Partition[U CodeUnit](hay []U, sep Needle[U]) (before, match, after []U) {
	s := sep.Units()
	i := indexOf(hay, s)
	if i < 0 {
		return clone(hay), []U{}, []U{}
	}
	return clone(hay[:i]), clone(hay[i : i+len(s)]), clone(hay[i+len(s):])
}

// RPartition splits hay around the last occurrence of sep. Without a match
// the whole input is returned as after. An empty separator matches at the end.
func RPartition[U CodeUnit](hay []U, sep Needle[U]) (before, match, after []U) {
	s := sep.Units()
	i := lastIndexOf(hay, s)
	if i < 0 {
		return []U{}, []U{}, clone(hay)
	}
	return clone(hay[:i]), clone(hay[i : i+len(s)]), clone(hay[i+len(s):])
}

type side uint8

const (
	sideLeft side = 1 << iota
	sideRight
	sideBoth = sideLeft | sideRight
)

// Strip removes leading and trailing units contained in any of the given
// sets. Without a set, whitespace is removed. An empty set removes nothing.
func Strip[U CodeUnit](hay []U, chars ...Needle[U]) []U {
	return stripFunc(hay, sideBoth, memberTest(chars))
}

// LStrip is Strip on the leading side only
func LStrip[U CodeUnit](hay []U, chars ...Needle[U]) []U {
	return stripFunc(hay, sideLeft, memberTest(chars))
}

// RStrip is Strip on the trailing side only
func RStrip[U CodeUnit](hay []U, chars ...Needle[U]) []U {
	return stripFunc(hay, sideRight, memberTest(chars))
}

// StripWith strips whitespace as decided by classifier c
func StripWith[U CodeUnit](hay []U, c Classifier) []U {
	return stripFunc(hay, sideBoth, spaceTest[U](c))
}

// LStripWith strips leading whitespace as decided by classifier c
func LStripWith[U CodeUnit](hay []U, c Classifier) []U {
	return stripFunc(hay, sideLeft, spaceTest[U](c))
}

// RStripWith strips trailing whitespace as decided by classifier c
func RStripWith[U CodeUnit](hay []U, c Classifier) []U {
	return stripFunc(hay, sideRight, spaceTest[U](c))
}

func stripFunc[U CodeUnit](hay []U, sd side, in func(U) bool) []U {
	lo, hi := 0, len(hay)
	if sd&sideLeft != 0 {
		for lo < hi && in(hay[lo]) {
			lo++
		}
	}
	if sd&sideRight != 0 {
		for hi > lo && in(hay[hi-1]) {
			hi--
		}
	}
	return clone(hay[lo:hi])
}

func memberTest[U CodeUnit](chars []Needle[U]) func(U) bool {
	if len(chars) == 0 {
		return spaceTest[U](DefaultClassifier)
	}
	var set []U
	for _, c := range chars {
		set = append(set, c.Units()...)
	}
	return func(u U) bool {
		return slices.Contains(set, u)
	}
}

// Join concatenates parts with sep between each pair
func Join[U CodeUnit](sep Needle[U], parts ...[]U) []U {
	if len(parts) == 0 {
		return []U{}
	}
	s := sep.Units()
	total := len(s) * (len(parts) - 1)
	for _, p := range parts {
		total += len(p)
	}

	out := make([]U, 0, total)
	for i, p := range parts {
		if i > 0 {
			out = append(out, s...)
		}
		out = append(out, p...)
	}
	return out
}

// RemovePrefix returns hay without prefix, or a copy of hay if it does not
// start with prefix
func RemovePrefix[U CodeUnit](hay []U, prefix Needle[U]) []U {
	if p := prefix.Units(); hasPrefix(hay, p) {
		return clone(hay[len(p):])
	}
	return clone(hay)
}

// RemoveSuffix returns hay without suffix, or a copy of hay if it does not
// end with suffix
func RemoveSuffix[U CodeUnit](hay []U, suffix Needle[U]) []U {
	if s := suffix.Units(); hasSuffix(hay, s) {
		return clone(hay[:len(hay)-len(s)])
	}
	return clone(hay)
}

// Replace substitutes non-overlapping occurrences of old with repl, from the
// left, at most count times (all if count < 0). An empty old inserts repl
// before every unit and at the end.
func Replace[U CodeUnit](hay []U, old, repl Needle[U], count int) []U {
	o, n := old.Units(), repl.Units()
	out := make([]U, 0, len(hay))
	if count == 0 {
		return append(out, hay...)
	}

	if len(o) == 0 {
		done := 0
		for i := 0; i <= len(hay); i++ {
			if count < 0 || done < count {
				out = append(out, n...)
				done++
			}
			if i < len(hay) {
				out = append(out, hay[i])
			}
		}
		return out
	}

	begin := 0
	for done := 0; count < 0 || done < count; done++ {
		j := indexOf(hay[begin:], o)
		if j < 0 {
			break
		}
		out = append(out, hay[begin:begin+j]...)
		out = append(out, n...)
		begin += j + len(o)
	}
	return append(out, hay[begin:]...)
}

// Map applies fn to every unit, e.g. a case mapping
func Map[U CodeUnit](hay []U, fn func(U) U) []U {
	out := make([]U, len(hay))
	for i, u := range hay {
		out[i] = fn(u)
	}
	return out
}

func clone[U CodeUnit](s []U) []U {
	out := make([]U, len(s))
	copy(out, s)
	return out
}
