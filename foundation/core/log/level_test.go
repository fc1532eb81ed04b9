// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level names, parsing and filtering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Reduced to the trimmed level API

package log

import (
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"ftl", LevelFatal, false},
		{"audit", LevelAudit, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, level, tt.expected)
			}
		})
	}
}

func TestLevelStrings(t *testing.T) {
	levels := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal, LevelAudit}
	for _, level := range levels {
		parsed, err := ParseLevel(level.String())
		if err != nil || parsed != level {
			t.Errorf("round trip of %v failed: %v, %v", level, parsed, err)
		}
		if len(level.ShortString()) != 3 {
			t.Errorf("ShortString(%v) = %q", level, level.ShortString())
		}
	}
	if Level(99).String() != "unknown" {
		t.Error("unexpected name for invalid level")
	}
}

func TestShouldLog(t *testing.T) {
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug should be filtered at info")
	}
	if !LevelError.ShouldLog(LevelInfo) {
		t.Error("error should pass at info")
	}
	if !LevelAudit.ShouldLog(Level(100)) {
		t.Error("audit should always pass")
	}
}
