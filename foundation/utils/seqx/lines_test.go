// File: lines_test.go
// Title: Unit Tests for Line Splitting
// Description: Tests SplitLines for every recognized boundary with and
//              without keepends.
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
	"unicode/utf16"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		keepends bool
		expected []string
	}{
		{"scenario", "a\r\n\nb", false, []string{"a", "", "b"}},
		{"scenario keepends", "a\r\n\nb", true, []string{"a\r\n", "\n", "b"}},
		{"no trailing empty line", "a\nb\n", false, []string{"a", "b"}},
		{"empty input", "", false, []string{}},
		{"only boundary", "\n", false, []string{""}},
		{"lone carriage return", "a\rb", false, []string{"a", "b"}},
		{"carriage return before end", "a\r", true, []string{"a\r"}},
		{"vertical tab and form feed", "a\vb\fc", false, []string{"a", "b", "c"}},
		{"separators", "a\x1cb\x1dc\x1ed", false, []string{"a", "b", "c", "d"}},
		{"unit separator is not a boundary", "a\x1fb", false, []string{"a\x1fb"}},
		{"lf cr is two boundaries", "a\n\rb", false, []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strs(SplitLines([]byte(tt.input), tt.keepends))
			if !slices.Equal(got, tt.expected) {
				t.Errorf("SplitLines(%q, %v) = %q; want %q", tt.input, tt.keepends, got, tt.expected)
			}
		})
	}
}

func TestSplitLinesWide(t *testing.T) {
	lines := SplitLines(utf16.Encode([]rune("α\r\nβ")), false)
	if len(lines) != 2 || string(utf16.Decode(lines[1])) != "β" {
		t.Errorf("unexpected wide lines %v", lines)
	}
}

func TestIsLineBreak(t *testing.T) {
	for _, r := range "\n\v\f\r\x1c\x1d\x1e" {
		if !IsLineBreak(r) {
			t.Errorf("IsLineBreak(%U) = false", r)
		}
	}
	for _, r := range "a \t\x1f " {
		if IsLineBreak(r) {
			t.Errorf("IsLineBreak(%U) = true", r)
		}
	}
}
