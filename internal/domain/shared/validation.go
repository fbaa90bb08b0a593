package shared

import "strings"

// FieldError describes a single failed validation check
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every failed check of a form submission.
// All checks run before the result is returned so the caller can report
// every failing field at once, not just the first.
type ValidationErrors struct {
	Fields []FieldError `json:"fields"`
}

// Error implements the error interface
func (v *ValidationErrors) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends a failed check
func (v *ValidationErrors) Add(field, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
}

// HasErrors returns true if at least one check failed
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Fields) > 0
}

// AsError returns the collection as an error, or nil when every check passed
func (v *ValidationErrors) AsError() error {
	if v.HasErrors() {
		return v
	}
	return nil
}
