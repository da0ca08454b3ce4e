package validation

import (
	"fmt"
	"strings"
)

// Severity grades a validation issue.
type Severity string

const (
	// SeverityError marks a critical issue that invalidates the subject.
	SeverityError Severity = "error"
	// SeverityWarning marks a potential problem worth reviewing.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks an informational note.
	SeverityInfo Severity = "info"
)

// Issue is a single validation finding.
type Issue struct {
	Code      string
	Message   string
	Severity  Severity
	FieldPath string
	Context   map[string]any
}

// String renders the issue as "[ERROR] CODE at path: message".
func (i Issue) String() string {
	location := ""
	if i.FieldPath != "" {
		location = " at " + i.FieldPath
	}
	return fmt.Sprintf("[%s] %s%s: %s", strings.ToUpper(string(i.Severity)), i.Code, location, i.Message)
}

// Result accumulates issues from one or more validators.
type Result struct {
	issues []Issue
	valid  bool
}

// NewResult returns an empty, valid result.
func NewResult() *Result {
	return &Result{valid: true}
}

// AddIssue appends an issue. An error-severity issue marks the result
// invalid.
func (r *Result) AddIssue(issue Issue) {
	r.issues = append(r.issues, issue)
	if issue.Severity == SeverityError {
		r.valid = false
	}
}

// Valid reports whether no error-severity issues were recorded.
func (r *Result) Valid() bool {
	return r.valid
}

// Issues returns all recorded issues in insertion order.
func (r *Result) Issues() []Issue {
	return r.issues
}

// Errors returns the error-severity issues.
func (r *Result) Errors() []Issue {
	return r.bySeverity(SeverityError)
}

// Warnings returns the warning-severity issues.
func (r *Result) Warnings() []Issue {
	return r.bySeverity(SeverityWarning)
}

// Infos returns the info-severity issues.
func (r *Result) Infos() []Issue {
	return r.bySeverity(SeverityInfo)
}

func (r *Result) bySeverity(s Severity) []Issue {
	var out []Issue
	for _, i := range r.issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}

// Merge folds another result into this one; invalidity is contagious.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.issues = append(r.issues, other.issues...)
	if !other.valid {
		r.valid = false
	}
}

// String summarizes the result, e.g.
// "ValidationResult: INVALID (1 errors, 0 warnings, 2 info)".
func (r *Result) String() string {
	status := "VALID"
	if !r.valid {
		status = "INVALID"
	}
	return fmt.Sprintf("ValidationResult: %s (%d errors, %d warnings, %d info)",
		status, len(r.Errors()), len(r.Warnings()), len(r.Infos()))
}

// Validator is the capability implemented by domain validators.
type Validator interface {
	Validate(subject any) *Result
}

// Func adapts a plain function to the Validator capability.
type Func func(subject any) *Result

// Validate calls the wrapped function.
func (f Func) Validate(subject any) *Result {
	return f(subject)
}
