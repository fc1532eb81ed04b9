// File: mapx.go
// Title: Core Map Utilities
// Description: Generic helpers for copying, merging and ordering maps.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-19 v0.2.0: Type-parameterized on the map type, sorted keys

// Package mapx provides generic map helpers. Every function accepts named
// map types and returns the same type.
package mapx

import (
	"cmp"
	"slices"
)

// Keys returns the keys of m in unspecified order
func Keys[M ~map[K]V, K comparable, V any](m M) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of m in ascending order. The result is never
// nil.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Merge creates a new map by merging multiple maps
// Later maps override values from earlier maps for duplicate keys
func Merge[M ~map[K]V, K comparable, V any](maps ...M) M {
	totalSize := 0
	for _, m := range maps {
		totalSize += len(m)
	}

	result := make(M, totalSize)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// Clone creates a shallow copy of the map
func Clone[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return nil
	}

	clone := make(M, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}
