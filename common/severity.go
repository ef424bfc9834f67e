package common

import "strings"

// Severity represents the severity level of a message or error.
// It is used consistently across logging and error handling.
type Severity string

const (
	// SeverityInfo represents informational messages that don't indicate any problem
	SeverityInfo Severity = "INFO"

	// SeverityWarning represents recoverable issues, such as an unreadable configuration file
	SeverityWarning Severity = "WARNING"

	// SeverityError represents failures in specific operations that the application survives
	SeverityError Severity = "ERROR"

	// SeverityCritical represents failures that stop the application
	SeverityCritical Severity = "CRITICAL"
)

// rank orders severities so that the logger can drop messages below its level.
// Unknown values rank as INFO.
func (s Severity) rank() int {
	switch s {
	case SeverityWarning:
		return 1
	case SeverityError:
		return 2
	case SeverityCritical:
		return 3
	default:
		return 0
	}
}

// ParseSeverity converts a configuration value such as "warning" into a Severity.
// Unknown values fall back to SeverityInfo.
func ParseSeverity(value string) Severity {
	switch Severity(strings.ToUpper(strings.TrimSpace(value))) {
	case SeverityWarning, "WARN":
		return SeverityWarning
	case SeverityError:
		return SeverityError
	case SeverityCritical:
		return SeverityCritical
	default:
		return SeverityInfo
	}
}
