package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is matched by every *ValidationErrors.
var ErrInvalid = errors.New("configuration does not match schema")

// Rule names the schema keyword a value failed.
type Rule string

const (
	RuleRef       Rule = "$ref"
	RuleType      Rule = "type"
	RuleEnum      Rule = "enum"
	RuleMinLength Rule = "minLength"
	RulePattern   Rule = "pattern"
	RuleFormat    Rule = "format"
	RuleRange     Rule = "range"
	RuleUnique    Rule = "uniqueItems"
	RuleRequired  Rule = "required"
	RuleUnknown   Rule = "additionalProperties"
)

// ValidationError is one failed check.
type ValidationError struct {
	// Path locates the value, with [i] for array elements
	// (e.g. "keymaps[2].command"). It is "" for the document root.
	Path    string
	Rule    Rule
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// ValidationErrors is every failure found in one document, in the order
// the validator met them.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no validation errors"
	case 1:
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:", len(e.Errors))
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Is lets errors.Is match ErrInvalid.
func (e *ValidationErrors) Is(target error) bool {
	return target == ErrInvalid
}

// Len returns the number of failures.
func (e *ValidationErrors) Len() int {
	return len(e.Errors)
}

// ForPath returns the failures reported at path.
func (e *ValidationErrors) ForPath(path string) []*ValidationError {
	var out []*ValidationError
	for _, err := range e.Errors {
		if err.Path == path {
			out = append(out, err)
		}
	}
	return out
}

func (e *ValidationErrors) add(path string, rule Rule, value any, format string, args ...any) {
	e.Errors = append(e.Errors, &ValidationError{
		Path:    path,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
		Value:   value,
	})
}

func (e *ValidationErrors) err() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

func rangeText(lo, hi *float64) string {
	switch {
	case lo != nil && hi != nil:
		return fmt.Sprintf("between %v and %v", *lo, *hi)
	case lo != nil:
		return fmt.Sprintf(">= %v", *lo)
	default:
		return fmt.Sprintf("<= %v", *hi)
	}
}
