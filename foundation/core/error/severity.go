// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level an error is reported
//              at and to decide whether it is an expected outcome.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for the library codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks expected, recoverable outcomes such as a missing substring
	SeverityLow Severity = iota

	// SeverityMedium marks invalid input the caller can correct
	SeverityMedium

	// SeverityHigh marks failures of the environment, e.g. unreadable config
	SeverityHigh

	// SeverityCritical marks broken invariants
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError:
		return SeverityHigh
	case CodeNotFound, CodeOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
