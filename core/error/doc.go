// File: doc.go
// Title: Core Error Package Documentation
// Description: Package error provides structured, coded errors for the KAL
//              front end with severity levels, cause chains, and detail
//              maps suitable for diagnostics and structured logging.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial error system

/*
Package error implements the structured error type used across the KAL
front end.

Every failure the lexer, parser, config loader, or CLI reports is a *Error
carrying:
  • A Code from the error taxonomy (syntax codes for user-facing parse
    failures, platform codes for everything else)
  • A Severity derived from the code unless set explicitly
  • A details map with machine-readable context (line, column, token, ...)
  • An optional cause, preserved through Wrap for error chains

Syntax errors are ordinary values: malformed user input must never abort
the process. Only internal invariant violations warrant severities above
SeverityLow.
*/
package error
