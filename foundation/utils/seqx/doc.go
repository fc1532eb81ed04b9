// File: doc.go
// Title: Package Documentation for seqx
// Description: Package seqx implements slicing, searching and segmentation
//              of code-unit sequences with the semantics of Python's
//              sequence and string methods.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package seqx implements Python-style slicing, search and segmentation over
// sequences of fixed-width code units.
//
// Package: seqx
// Title: Sequence Engine for seqkit Foundation
// Description: Generic operations over []U where U is a narrow (byte) or
//              wide (uint16, rune) code unit. Every operation is a pure
//              function: inputs are never modified and every returned
//              sequence is a fresh allocation owned by the caller.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Overview
//
// The package is built from five cooperating parts:
//
//   - Index normalization: SliceSpec resolves optional start/stop/step
//     members against a length into a NormalizedRange (slice.go)
//   - Cursor: stateful traversal of a normalized range that can be re-bound
//     to sequences of other lengths (cursor.go)
//   - Search: Find, RFind, Index, RIndex, Count, Contains and the prefix and
//     suffix tests, each restricted by an optional Window (search.go, window.go)
//   - Segmentation: Split, RSplit, SplitOn, Partition, Strip, SplitLines,
//     Join and Replace (segment.go, lines.go)
//   - Translation: per-unit substitution through a Lookup (translate.go)
//
// Needles
//
// Search and segmentation operations accept a Needle, built from a single
// unit (Char), a buffer plus length (Raw) or a whole sequence (Seq). The
// needle is resolved once to a unit slice, so all three shapes behave the
// same:
//
//	hay := []byte("ABC0123456789.ABC0123456789.")
//	seqx.Find(hay, seqx.Char(byte('A')), seqx.FromPos(1))      // 14
//	seqx.Find(hay, seqx.Seq([]byte("A")), seqx.FromPos(1))     // 14
//	seqx.Find(hay, seqx.Raw([]byte("AX"), 1), seqx.FromPos(1)) // 14
//
// Windows
//
// A Window restricts a search. Bounds(pos, end) is the absolute form and
// Extent(pos, count) the relative one. Negative positions count from the end
// and out-of-range values are clamped. A window that starts beyond the
// sequence never matches.
//
// Slicing
//
//	seqx.Apply([]byte("abcdef"), seqx.Full(1, -1, 2)) // "bd"
//	seqx.Apply([]byte("abcdef"), seqx.Step(-1))       // "fedcba"
//
// A step of 0 is treated as unspecified and resolves to 1.
//
// Whitespace
//
// Whitespace is decided by a Classifier. The package default is
// UnicodeClassifier; ASCIIClassifier follows the C locale. For byte
// sequences only units below 0x80 are ever classified, since higher bytes
// belong to multi-byte encodings. Whitespace splitting does not collapse
// runs: every whitespace unit is a delimiter on its own.
//
// Errors
//
// Expected absence is reported with the NotFound sentinel. Index, RIndex and
// At return structured errors from the foundation error package; use
// IsNotFound or errors.Is(err, ErrNotFound) to test for absence. No function
// panics on caller input.
//
// Thread Safety
//
// All functions are safe for concurrent use. A Cursor is not.
package seqx
