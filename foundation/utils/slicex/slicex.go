// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic helpers for transforming and searching slices of
//              values (as opposed to code-unit sequences, see seqx).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-19 v0.2.0: Reduced to the helpers used across seqkit

// Package slicex provides generic helpers for slices of values.
//
// A nil input slice yields a nil result, so callers can tell "no input"
// from "empty input".
package slicex

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Unique returns a new slice with duplicate elements removed (preserves order)
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]bool, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// Contains checks if the slice contains the specified element
func Contains[T comparable](slice []T, element T) bool {
	for _, item := range slice {
		if item == element {
			return true
		}
	}
	return false
}
