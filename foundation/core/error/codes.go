// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures raised by the
//              sequence libraries, the configuration layer and the CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Trimmed to library codes, added CodeOutOfRange

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Sequence access
	CodeOutOfRange Code = "OUT_OF_RANGE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the codes defined above
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeOutOfRange,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNotFound, CodeOutOfRange:
		return "lookup"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps a code to a process exit status for the CLI.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "lookup":
		return 1
	case "validation":
		return 2
	case "configuration":
		return 3
	default:
		return 4
	}
}
