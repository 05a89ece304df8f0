package analyzer

import (
	"errors"
	"fmt"

	"github.com/cipherscope/cipherscope/pkg/catalog"
	"github.com/cipherscope/cipherscope/pkg/classifier"
	"github.com/cipherscope/cipherscope/pkg/profiles"
	"github.com/cipherscope/cipherscope/pkg/textnorm"
)

const (
	errorCodeEmptyInput    = "ANALYZER_EMPTY_INPUT"
	errorCodeInputTooShort = "ANALYZER_INPUT_TOO_SHORT"
	errorCodeInvalidN      = "ANALYZER_INVALID_N"
	errorCodeFeature       = "ANALYZER_FEATURE_INVALID"
	errorCodeProfileLoad   = "ANALYZER_PROFILE_LOAD_FAILED"
	errorCodeCatalogLoad   = "ANALYZER_CATALOG_LOAD_FAILED"
	errorCodeInternal      = "ANALYZER_INTERNAL"
)

// ErrInvalidN indicates a top-N request below 1.
var ErrInvalidN = errors.New("invalid result count")

type errorCoder interface {
	error
	Code() string
}

type withCodeError struct {
	error
	code string
}

func (e *withCodeError) Code() string {
	return e.code
}

func (e *withCodeError) Unwrap() error {
	return e.error
}

// WithErrorCode annotates err with an analyzer error code.
func WithErrorCode(err error, code string) error {
	if err == nil {
		return nil
	}
	return &withCodeError{error: err, code: code}
}

// NewInvalidNError formats an out-of-range top-N error.
func NewInvalidNError(n int) error {
	return WithErrorCode(fmt.Errorf("%w: n must be >= 1, got %d", ErrInvalidN, n), errorCodeInvalidN)
}

// ErrorCode resolves an error to its analyzer error code.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var coded errorCoder
	if errors.As(err, &coded) {
		if code := coded.Code(); code != "" {
			return code
		}
	}

	switch {
	case errors.Is(err, textnorm.ErrEmptyInput):
		return errorCodeEmptyInput
	case errors.Is(err, textnorm.ErrInputTooShort):
		return errorCodeInputTooShort
	case errors.Is(err, ErrInvalidN):
		return errorCodeInvalidN
	case errors.Is(err, classifier.ErrFeatureInvalid):
		return errorCodeFeature
	case errors.Is(err, profiles.ErrProfileSetInvalid),
		errors.Is(err, classifier.ErrNoProfilesLoaded):
		return errorCodeProfileLoad
	case errors.Is(err, catalog.ErrCatalogParse):
		return errorCodeCatalogLoad
	default:
		return errorCodeInternal
	}
}

// ExitCode maps analyzer errors to CLI exit codes.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	switch {
	case errors.Is(err, ErrInvalidN):
		return 2
	case errors.Is(err, textnorm.ErrEmptyInput),
		errors.Is(err, textnorm.ErrInputTooShort):
		return 3
	case errors.Is(err, profiles.ErrProfileSetInvalid),
		errors.Is(err, classifier.ErrNoProfilesLoaded),
		errors.Is(err, catalog.ErrCatalogParse):
		return 4
	default:
		return 1
	}
}

// Suggestions provides CLI hints for analyzer errors.
func Suggestions(err error) []string {
	if err == nil {
		return nil
	}

	switch ErrorCode(err) {
	case errorCodeEmptyInput:
		return []string{
			"Provide ciphertext with letters:  --text <string> or --file <path>",
			"Only A-Z letters are analyzed; digits and punctuation are stripped",
		}
	case errorCodeInputTooShort:
		return []string{
			"Supply at least 20 letters for reliable statistics",
			"Short inputs still run but rankings degrade quickly",
		}
	case errorCodeInvalidN:
		return []string{
			"Use --number with a value of 1 or higher",
		}
	case errorCodeCatalogLoad:
		return []string{
			"Check the catalog file is valid JSON with a types list per cipher",
			"Omit --catalog to use the built-in metadata",
		}
	default:
		return nil
	}
}
