package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Program key pattern, the lowercase slug programs are addressed by
	ProgramKeyPattern = `^[a-z][a-z0-9-]*$`

	// Student number pattern, two program letters followed by the
	// enrollment year and a three digit sequence
	StudentNumberPattern = `^[A-Z]{2}\d{7}$`

	// Program key max length
	ProgramKeyMaxLength = 64
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email         *regexp.Regexp
	ProgramKey    *regexp.Regexp
	StudentNumber *regexp.Regexp
}{
	Email:         regexp.MustCompile(EmailPattern),
	ProgramKey:    regexp.MustCompile(ProgramKeyPattern),
	StudentNumber: regexp.MustCompile(StudentNumberPattern),
}

// StringValidation validates a string value against length and pattern rules
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
