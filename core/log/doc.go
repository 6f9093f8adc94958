// File: doc.go
// Title: Core Log Package Documentation
// Description: Package log provides structured, leveled logging for the
//              KAL front end with pluggable text and JSON formatters and
//              contextual fields.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial logging system

/*
Package log implements the structured logger used across the KAL front end.

Loggers are immutable: every With* call returns a clone, so a component can
derive its own logger without affecting others:

	logger := log.GetDefault().WithName("kal-parser").WithField("component", "parser")
	logger.Debug("parse started", log.Fields{"length": len(input)})

The parser and engine log at Debug for successful operations and Warn for
syntax errors; anything at Error or above indicates a front-end defect, not
bad user input.
*/
package log
