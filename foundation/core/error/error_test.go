// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              JSON serialization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Cases for the library codes and chain-aware HasCode

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("test error message")

	if err.Error() != "test error message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "test error message")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
	if fn := err.StackTrace()[0].Function; !strings.HasSuffix(fn, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", fn)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{"wrap nil error", nil, "context", true, ""},
		{"wrap standard error", errors.New("boom"), "context", false, "context: boom"},
		{"wrap structured error", New("inner"), "outer", false, "outer: inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap(nil) = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapKeepsClassification(t *testing.T) {
	inner := New("substring not found").
		WithCode(CodeNotFound).
		WithOperation("seqx.Index").
		WithDetail("pos", 3)

	outer := Wrap(inner, "lookup failed")

	if outer.Code() != CodeNotFound {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeNotFound)
	}
	if outer.Operation() != "seqx.Index" {
		t.Errorf("Operation() = %q, want seqx.Index", outer.Operation())
	}
	if outer.Details()["pos"] != 3 {
		t.Errorf("Details()[pos] = %v, want 3", outer.Details()["pos"])
	}
	if !errors.Is(outer, inner) || errors.Unwrap(outer) != inner {
		t.Error("Unwrap() should return the wrapped error")
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	e := err.(*Error)
	if e.Details()["truncated"] != true {
		t.Error("deep chain should be flattened")
	}
	if !strings.Contains(e.Error(), "root") {
		t.Errorf("flattened message should mention the root cause, got %q", e.Error())
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeNotFound, SeverityLow},
		{CodeOutOfRange, SeverityLow},
		{CodeInvalidInput, SeverityMedium},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("severity for %s = %v, want %v", tt.code, got, tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityHigh).WithCode(CodeNotFound)
	if explicit.Severity() != SeverityHigh {
		t.Error("explicit severity must not be overridden by WithCode")
	}
}

func TestCodeHelpers(t *testing.T) {
	if !CodeOutOfRange.IsValid() {
		t.Error("CodeOutOfRange should be valid")
	}
	if Code("BOGUS").IsValid() {
		t.Error("unknown code should be invalid")
	}
	if got := CodeNotFound.Category(); got != "lookup" {
		t.Errorf("Category() = %q, want lookup", got)
	}
	if got := CodeInvalidConfig.ExitCode(); got != 3 {
		t.Errorf("ExitCode() = %d, want 3", got)
	}
}

func TestHasCode(t *testing.T) {
	base := New("missing").WithCode(CodeNotFound)
	wrappedStd := fmt.Errorf("cli: %w", base)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", base, CodeNotFound, true},
		{"other code", base, CodeOutOfRange, false},
		{"through fmt wrap", wrappedStd, CodeNotFound, true},
		{"standard error", errors.New("x"), CodeNotFound, false},
		{"nil", nil, CodeNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}

	if GetCode(errors.New("x")) != CodeUnknown {
		t.Error("GetCode on a standard error should be CodeUnknown")
	}
	if GetSeverity(base) != SeverityLow {
		t.Errorf("GetSeverity() = %v, want low", GetSeverity(base))
	}
}

func TestString(t *testing.T) {
	err := New("bad window").
		WithCode(CodeInvalidInput).
		WithOperation("seqx.Find").
		WithDetails(map[string]interface{}{"pos": 1, "end": 0})

	s := err.String()
	for _, want := range []string{"Error: bad window", "Code: INVALID_INPUT", "Operation: seqx.Find", "Details: {end=0, pos=1}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("disk"), "read config").
		WithCode(CodeConfigError).
		WithOperation("config.Load")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}
	if decoded["code"] != "CONFIG_ERROR" {
		t.Errorf("code = %v, want CONFIG_ERROR", decoded["code"])
	}
	if decoded["severity"] != "high" {
		t.Errorf("severity = %v, want high", decoded["severity"])
	}
	if decoded["cause"] != "disk" {
		t.Errorf("cause = %v, want disk", decoded["cause"])
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("benchmark error")
	}
}

func BenchmarkWrap(b *testing.B) {
	base := errors.New("base")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(base, "wrapped")
	}
}
