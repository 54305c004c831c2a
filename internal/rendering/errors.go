// Package rendering projects Resume data into standalone HTML documents,
// one pure renderer per visual theme.
package rendering

import "fmt"

// TemplateError represents a failure to parse or execute a theme template.
// These indicate a defect in the embedded template text, never missing
// resume data: every field is optional and substituted before execution.
type TemplateError struct {
	Theme   string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("theme %s: %s: %v", e.Theme, e.Message, e.Cause)
	}
	return fmt.Sprintf("theme %s: %s", e.Theme, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
