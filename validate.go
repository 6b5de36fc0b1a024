package textdiff

import (
	"fmt"
	"strings"
)

// ValidationReason identifies why a configuration or input is invalid.
type ValidationReason string

// Validation error reasons.
const (
	ErrInvalidTimeout   ValidationReason = "invalid_timeout"
	ErrInvalidPrecision ValidationReason = "invalid_precision"
	ErrEmptyInput       ValidationReason = "empty_input"
)

// ValidationError describes a single validation failure.
type ValidationError struct {
	Field  string           // The option or input that failed validation
	Reason ValidationReason // Why it is invalid
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	switch e.Reason {
	case ErrInvalidTimeout:
		return fmt.Sprintf("%s: timeout must be greater than zero", e.Field)
	case ErrInvalidPrecision:
		return fmt.Sprintf("%s: precision must be character, word, or line", e.Field)
	case ErrEmptyInput:
		return fmt.Sprintf("%s: text is empty", e.Field)
	default:
		return fmt.Sprintf("%s: invalid (%s)", e.Field, e.Reason)
	}
}

// ValidateOptions checks a comparison configuration before any computation
// starts. Returns a slice of validation errors, or nil if the options are
// valid.
func ValidateOptions(opts Options) []ValidationError {
	var errors []ValidationError

	if opts.Timeout <= 0 {
		errors = append(errors, ValidationError{Field: "timeout", Reason: ErrInvalidTimeout})
	}

	switch opts.Precision {
	case PrecisionCharacter, PrecisionWord, PrecisionLine:
	default:
		errors = append(errors, ValidationError{Field: "precision", Reason: ErrInvalidPrecision})
	}

	return errors
}

// ValidateContent flags texts that are empty after trimming whitespace.
// An empty input is a warning, not a failure: the diff computation itself
// handles empty texts (empty vs empty is 100% similar with zero records).
func ValidateContent(field, text string) []ValidationError {
	if strings.TrimSpace(text) == "" {
		return []ValidationError{{Field: field, Reason: ErrEmptyInput}}
	}
	return nil
}
