// File: translate.go
// Title: Translator Adapter
// Description: Per-unit substitution through a caller supplied lookup.
//              Unmapped units are copied, mapped units are replaced by their
//              replacement text and an empty replacement deletes the unit.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package seqx

import (
	"fmt"

	mdwerrors "github.com/msto63/seqkit/foundation/core/errors"
)

// Lookup maps a code unit to its replacement
type Lookup[U CodeUnit] interface {
	Lookup(u U) (replacement []U, ok bool)
}

// LookupFunc adapts a plain function to the Lookup interface
type LookupFunc[U CodeUnit] func(u U) ([]U, bool)

// Lookup calls f(u)
func (f LookupFunc[U]) Lookup(u U) ([]U, bool) {
	return f(u)
}

// Table is a map-backed Lookup
type Table[U CodeUnit] map[U][]U

// Lookup returns the replacement registered for u
func (t Table[U]) Lookup(u U) ([]U, bool) {
	r, ok := t[u]
	return r, ok
}

// MakeTable maps from[i] to to[i]; every unit in deletes maps to nothing.
// from and to must have the same length.
func MakeTable[U CodeUnit](from, to []U, deletes ...U) (Table[U], error) {
	if len(from) != len(to) {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleSeqx, "make_table",
			fmt.Sprintf("%d/%d", len(from), len(to)), "from and to of equal length")
	}
	t := make(Table[U], len(from)+len(deletes))
	for i, u := range from {
		t[u] = []U{to[i]}
	}
	for _, u := range deletes {
		t[u] = nil
	}
	return t, nil
}

// Translate returns hay with every unit passed through lookup. A nil lookup,
// including a nil LookupFunc, copies hay.
func Translate[U CodeUnit](hay []U, lookup Lookup[U]) []U {
	out := make([]U, 0, len(hay))
	if f, ok := lookup.(LookupFunc[U]); lookup == nil || ok && f == nil {
		return append(out, hay...)
	}
	for _, u := range hay {
		if r, ok := lookup.Lookup(u); ok {
			out = append(out, r...)
			continue
		}
		out = append(out, u)
	}
	return out
}
