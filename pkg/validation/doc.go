// Package validation provides a generic result-collecting validation
// framework that downstream products extend with domain-specific rules.
//
// Validators append Issues to a Result; each issue carries a stable code, a
// human-readable message, a severity, and an optional field path plus
// context. A Result is valid as long as it holds no error-severity issues;
// warnings and infos never flip validity. Results from nested validators
// merge into a parent result, so composite checks aggregate naturally.
//
// # Usage
//
//	result := validation.NewResult()
//	if age < 0 {
//	    result.AddIssue(validation.Issue{
//	        Code:     "AGE_001",
//	        Message:  "age cannot be negative",
//	        Severity: validation.SeverityError,
//	        FieldPath: "person.age",
//	    })
//	}
//	if !result.Valid() { ... }
//
// Any type implementing the Validator capability can participate; the Func
// adapter lifts plain functions.
package validation
