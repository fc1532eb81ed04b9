// File: lines.go
// Title: Line Splitting
// Description: Splits a sequence at line boundaries: LF, VT, FF, CR, the
//              CR LF pair, and the separators FS, GS and RS.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package seqx

// IsLineBreak reports whether u ends a line
func IsLineBreak[U CodeUnit](u U) bool {
	switch uint32(u) {
	case '\n', '\v', '\f', '\r', 0x1c, 0x1d, 0x1e:
		return true
	}
	return false
}

// SplitLines splits hay into lines. CR LF counts as one boundary. With
// keepends the boundary stays attached to its line. A trailing boundary does
// not start an extra empty line.
func SplitLines[U CodeUnit](hay []U, keepends bool) [][]U {
	var lines [][]U
	for i, n := 0, len(hay); i < n; {
		j := i
		for j < n && !IsLineBreak(hay[j]) {
			j++
		}

		eol := j
		if j < n {
			if hay[j] == '\r' && j+1 < n && hay[j+1] == '\n' {
				j += 2
			} else {
				j++
			}
			if keepends {
				eol = j
			}
		}

		lines = append(lines, clone(hay[i:eol]))
		i = j
	}
	return lines
}
