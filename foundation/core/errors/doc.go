// Package errors provides the standard error constructors for seqkit modules.
//
// Package: errors
// Title: Standard Error Handling API for seqkit
// Description: Module-aware constructors on top of the core error type. Every
//              error produced here records the module and operation it came
//              from as details, carries a code and a severity, and can wrap a
//              cause so sentinels stay reachable through errors.Is.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-19 v0.2.0: Module set of the sequence libraries, NotFound with cause
//
// # Error Creation
//
//	err := errors.NotFound(errors.ModuleSeqx, "index", "needle").
//		WithDetail("window", "[0, 12)")
//
//	err = errors.NewErrorBuilder(errors.ModuleConfig).
//		Operation("load").
//		Cause(ioErr).
//		Code(errors.CodeConfigError).
//		Build()
//
// # Error Analysis
//
//	if errors.IsModuleError(err, errors.ModuleSeqx) {
//		op := errors.ExtractOperation(err)
//		_ = op
//	}
package errors
