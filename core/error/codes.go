// File: codes.go
// Title: Error Code Definitions
// Description: Defines the structured error codes for the KAL front end,
//              covering the syntax error taxonomy produced by the lexer
//              and parser as well as generic platform codes.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial code taxonomy

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the KAL front end
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Syntax codes, produced by the lexer and parser for malformed source.
	// These are user-facing: they map one-to-one onto diagnostics.
	CodeMalformedNumber             Code = "MALFORMED_NUMBER"
	CodeUnexpectedToken             Code = "UNEXPECTED_TOKEN"
	CodeUnmatchedParenthesis        Code = "UNMATCHED_PARENTHESIS"
	CodeExpectedArgSeparatorOrClose Code = "EXPECTED_ARG_SEPARATOR_OR_CLOSE"
	CodeMalformedPrototype          Code = "MALFORMED_PROTOTYPE"
	CodeNestingTooDeep              Code = "NESTING_TOO_DEEP"

	// CodeUnknownOperator flags an internal consistency fault: a symbol
	// reached operator handling without a precedence table entry. The
	// dispatch structure makes this unreachable for any input.
	CodeUnknownOperator Code = "UNKNOWN_OPERATOR"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeMalformedNumber, CodeUnexpectedToken, CodeUnmatchedParenthesis,
		CodeExpectedArgSeparatorOrClose, CodeMalformedPrototype,
		CodeNestingTooDeep, CodeUnknownOperator,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange,
		CodeInvalidLength:
		return true
	default:
		return false
	}
}

// IsSyntax reports whether the code describes a syntax error in user
// source, as opposed to an internal or environmental failure.
func (c Code) IsSyntax() bool {
	switch c {
	case CodeMalformedNumber, CodeUnexpectedToken, CodeUnmatchedParenthesis,
		CodeExpectedArgSeparatorOrClose, CodeMalformedPrototype,
		CodeNestingTooDeep:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch {
	case c.IsSyntax():
		return "syntax"
	case c == CodeUnknownOperator, c == CodeInternal:
		return "internal"
	case c == CodeConfigError, c == CodeMissingConfig, c == CodeInvalidConfig:
		return "configuration"
	case c == CodeValidationFailed, c == CodeRequiredField,
		c == CodeValueOutOfRange, c == CodeInvalidLength:
		return "validation"
	default:
		return "generic"
	}
}
