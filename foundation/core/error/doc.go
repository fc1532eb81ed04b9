// Package error provides the structured error type used across seqkit.
//
// Package: error
// Title: seqkit Error Handling Framework
// Description: Structured errors carrying a code, a severity, free-form details
//              and a captured stack trace. Errors remain compatible with the
//              standard library: Unwrap exposes the cause so errors.Is and
//              errors.As see through every layer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced to the codes used by the sequence libraries and CLI
//
// Usage:
//
//	import mdwerror "github.com/msto63/seqkit/foundation/core/error"
//
//	err := mdwerror.New("substring not found").
//		WithCode(mdwerror.CodeNotFound).
//		WithOperation("seqx.Index").
//		WithDetail("window", "[3, 10)")
//
//	if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
//		// expected absence, recover
//	}
package error
