// File: needle.go
// Title: Needle Sum Type
// Description: A needle is what search and segmentation operations look for.
//              It is built from a single code unit, a buffer plus length, or a
//              whole sequence and is resolved to one unit slice inside each
//              algorithm, so the three call shapes behave identically.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package seqx

type needleKind uint8

const (
	kindSeq needleKind = iota
	kindChar
	kindRaw
)

// Needle is a sought pattern. The zero value is the empty needle.
type Needle[U CodeUnit] struct {
	kind  needleKind
	char  U
	units []U
}

// Char returns a needle consisting of the single code unit u
func Char[U CodeUnit](u U) Needle[U] {
	return Needle[U]{kind: kindChar, char: u}
}

// Raw returns a needle over the first n units of buf. A negative n, or one
// larger than the buffer, selects the whole buffer.
func Raw[U CodeUnit](buf []U, n int) Needle[U] {
	if n < 0 || n > len(buf) {
		n = len(buf)
	}
	return Needle[U]{kind: kindRaw, units: buf[:n:n]}
}

// Seq returns a needle over the whole sequence s
func Seq[U CodeUnit](s []U) Needle[U] {
	return Needle[U]{kind: kindSeq, units: s}
}

// Units resolves the needle to its code units. The result must not be modified.
func (n Needle[U]) Units() []U {
	if n.kind == kindChar {
		return []U{n.char}
	}
	return n.units
}

// Len returns the number of code units in the needle
func (n Needle[U]) Len() int {
	if n.kind == kindChar {
		return 1
	}
	return len(n.units)
}

// IsEmpty reports whether the needle has no code units
func (n Needle[U]) IsEmpty() bool {
	return n.Len() == 0
}
