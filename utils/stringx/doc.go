// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the small set of extended string
//              operations used across the KAL front end, focusing on
//              Unicode-safe validation and truncation helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

/*
Package stringx provides extended string operations for the KAL front end.

The package extends Go's standard strings package with the handful of
utilities the lexer, parser, and CLI repeatedly need:
  • Blank/empty checking for input validation
  • Unicode-safe truncation for log and diagnostic output
*/
package stringx
