// File: standards.go
// Title: Error Standards for seqkit
// Description: Module identifiers, standard codes and the fluent ErrorBuilder
//              used by every seqkit package to create consistent errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-19 v0.2.0: Merged builder and constructors, sequence module codes

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/seqkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleSeqx    = "seqx"
	ModuleStringx = "stringx"
	ModuleConfig  = "config"
	ModuleCLI     = "cli"
	ModuleFilex   = "filex"
)

// Standardized error codes
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"
	CodeConfigError     = "CONFIG_ERROR"
	CodeInvalidConfig   = "INVALID_CONFIG"

	CodeSeqxSubstringNotFound = "SEQX_SUBSTRING_NOT_FOUND"
	CodeSeqxIndexOutOfRange   = "SEQX_INDEX_OUT_OF_RANGE"
	CodeSeqxOperationFailed   = "SEQX_OPERATION_FAILED"
	CodeCLIDecodeFailed       = "CLI_DECODE_FAILED"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = moduleErrorCode(eb.module, eb.operation)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	details := make(map[string]interface{}, len(eb.details)+2)
	for k, v := range eb.details {
		details[k] = v
	}
	details["module"] = eb.module
	if eb.operation != "" {
		details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	return err.
		WithCode(mdwerror.Code(eb.code)).
		WithOperation(qualified(eb.module, eb.operation)).
		WithDetails(details).
		WithSeverity(eb.severity)
}

func qualified(module, operation string) string {
	if operation == "" {
		return module
	}
	return module + "." + operation
}

// moduleErrorCode picks a code from the operation name when none is given
func moduleErrorCode(module, operation string) string {
	switch module {
	case ModuleSeqx, ModuleStringx:
		switch {
		case strings.Contains(operation, "index"), strings.Contains(operation, "find"):
			return CodeSeqxSubstringNotFound
		case strings.Contains(operation, "at"), strings.Contains(operation, "range"):
			return CodeSeqxIndexOutOfRange
		default:
			return CodeSeqxOperationFailed
		}
	case ModuleConfig:
		return CodeConfigError
	case ModuleCLI:
		if strings.Contains(operation, "decode") {
			return CodeCLIDecodeFailed
		}
		return CodeOperationFailed
	default:
		return CodeOperationFailed
	}
}

// NotFound creates a standardized not found error. A non-nil cause is
// wrapped so that callers can match it with errors.Is.
func NotFound(module, operation string, identifier interface{}, cause ...error) *mdwerror.Error {
	b := NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("item not found in %s.%s", module, operation)).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Severity(mdwerror.SeverityLow)
	if len(cause) > 0 && cause[0] != nil {
		b.Cause(cause[0])
	}
	return b.Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("invalid format in %s", module)).
		Code(CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	if e, ok := err.(*mdwerror.Error); ok {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}
