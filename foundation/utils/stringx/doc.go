// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx exposes Python's str methods for Go strings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Facade over the seqx sequence engine

/*
Package stringx provides Python-style string methods for Go's native string
type.

A Go string is handled as a narrow sequence of bytes, so every index is a
byte offset and the results match what Python returns for the same bytes
object. The package is a thin layer over seqx; use seqx directly for wide
([]uint16, []rune) sequences or for needles built from single units.

# Slicing

	stringx.Slice("hello", seqx.Step(-1))  // "olleh"
	stringx.SliceExpr("hello", "1:-1")     // "ell", nil
	stringx.At("hello", -1)                // 'o', nil

# Search

	stringx.Find("hello world", "o")                  // 4
	stringx.RFind("hello world", "o")                 // 7
	stringx.Find("hello world", "o", stringx.FromPos(5)) // 7
	stringx.Count("aaaa", "aa")                       // 2
	stringx.StartsWith("main.go", "cmd", "main")      // true

Index and RIndex report absence as a NOT_FOUND error that matches
seqx.ErrNotFound with errors.Is.

# Segmentation

	stringx.Split("a  b", -1)         // ["a" "" "b"]
	stringx.SplitOn("k=v=w", "=", 1)  // ["k" "v=w"]
	stringx.Partition("k=v", "=")     // "k", "=", "v"
	stringx.Strip("xxhixy", "xy")     // "hi"
	stringx.SplitLines("a\r\nb", true) // ["a\r\n" "b"]

Whitespace splitting does not collapse runs: each ASCII whitespace byte is
its own delimiter.

# Blank checks

IsBlank and IsEmpty are used by the configuration layer. IsBlank decodes
runes and therefore also treats Unicode spaces as blank.
*/
package stringx
