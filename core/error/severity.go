// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for KAL errors and the mapping from
//              error codes to their default severities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality.
	// Examples: syntax errors in user source, invalid CLI arguments
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds.
	// Examples: missing optional configuration, degraded output
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality.
	// Examples: unreadable configuration files, broken input sources
	SeverityHigh

	// SeverityCritical indicates an internal invariant violation.
	// Examples: precedence lookup on a non-operator token
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

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the appropriate severity level for a code
func GetSeverityFromCode(code Code) Severity {
	switch {
	// Internal consistency faults are the only critical errors the
	// front end can produce.
	case code == CodeUnknownOperator, code == CodeInternal:
		return SeverityCritical

	case code == CodeConfigError, code == CodeMissingConfig, code == CodeInvalidConfig:
		return SeverityHigh

	// Syntax and validation errors describe bad input, not a broken system.
	case code.IsSyntax(),
		code == CodeInvalidInput, code == CodeNotFound,
		code == CodeValidationFailed, code == CodeRequiredField,
		code == CodeValueOutOfRange, code == CodeInvalidLength:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
