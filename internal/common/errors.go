// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Database errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEntry = errors.New("duplicate entry")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Export errors.
	ErrExportBlocked = errors.New("export blocked by validation errors")
)

// Severity classifies a validation finding. Errors block export; warnings
// are informational and do not.
type Severity string

// Validation severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationIssue is one human-readable finding from the assembly validation
// pass.
type ValidationIssue struct {
	Severity Severity
	Section  string // which sheet or field the finding concerns
	Message  string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("[%s] %s: %s", v.Severity, v.Section, v.Message)
}

// ValidationResult accumulates findings across every section of a report.
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// Add records a finding under the matching severity.
func (r *ValidationResult) Add(issue ValidationIssue) {
	if issue.Severity == SeverityError {
		r.Errors = append(r.Errors, issue)
		return
	}
	r.Warnings = append(r.Warnings, issue)
}

// Merge folds another result into this one.
func (r *ValidationResult) Merge(other ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// IsValid reports whether the report may be exported.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// ContractViolationError signals a programmer error: input that upstream
// filtering guarantees can never reach the component that received it.
// It is not recoverable and should abort the run loudly.
type ContractViolationError struct {
	Component string
	Detail    string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Component, e.Detail)
}

// NewContractViolation creates a ContractViolationError.
func NewContractViolation(component, format string, args ...any) error {
	return &ContractViolationError{
		Component: component,
		Detail:    fmt.Sprintf(format, args...),
	}
}

// EncodingError signals that the document contains a character the target
// legacy codepage cannot represent. The export is rejected outright; the
// engine never substitutes characters.
type EncodingError struct {
	Err  error
	Rune rune
}

func (e *EncodingError) Error() string {
	if e.Rune != 0 {
		return fmt.Sprintf("character %q cannot be encoded in the target codepage", e.Rune)
	}
	return fmt.Sprintf("encoding failed: %v", e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
