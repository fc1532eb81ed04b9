// Package log provides structured logging for seqkit.
//
// Package: log
// Title: Structured Logging for seqkit Foundation
// Description: Leveled, structured logging with persistent context fields,
//              JSON, text, console and logfmt output, and integration with
//              the foundation error system.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Synchronous CLI logger with correlation ids
//
// Features:
// - Levels trace through audit; audit entries are never filtered
// - Immutable With* configuration; every call returns a copy
// - LogError maps the severity of a structured error to a level
// - Timer for operation durations
//
// Library packages never log. The command line front end creates one logger
// per invocation, stamps it with a correlation id and passes it down:
//
//	logger := log.New().
//	    WithLevel(log.LevelDebug).
//	    WithFormat(log.FormatLogfmt).
//	    WithCorrelationID(id)
//
//	timer := logger.StartTimer("split")
//	parts := seqx.Split(hay, -1)
//	timer.WithField("parts", len(parts)).Stop()
package log
