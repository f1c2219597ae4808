package domain

import "fmt"

// ErrorCode is the machine-readable class of a failure. Callers are expected
// to branch on the code rather than the message text.
type ErrorCode string

const (
	CodeValidation       ErrorCode = "validation_error"
	CodeNotFound         ErrorCode = "not_found"
	CodeMissingToken     ErrorCode = "missing_token"
	CodeTokenExpired     ErrorCode = "token_expired"
	CodeLaunchInProgress ErrorCode = "launch_in_progress"
	CodeMetaAPI          ErrorCode = "meta_api_error"
	CodeUpstream         ErrorCode = "upstream_error"
	CodeParse            ErrorCode = "parse_error"
	CodeInternal         ErrorCode = "internal_error"
)

// APIError is the single error type crossing the usecase boundary. Step is
// set only for launch failures and names the pipeline stage that failed.
// MetaError carries the raw upstream error payload when one exists.
type APIError struct {
	Code      ErrorCode
	Message   string
	Step      string
	MetaError any
}

func (e *APIError) Error() string {
	if e.Step != "" {
		return fmt.Sprintf("%s at %s: %s", e.Code, e.Step, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError reports a caller mistake detected before any remote call.
func NewValidationError(msg string) *APIError {
	return &APIError{Code: CodeValidation, Message: msg}
}

// NewNotFoundError reports a campaign with no resolvable remote identity.
func NewNotFoundError(msg string) *APIError {
	return &APIError{Code: CodeNotFound, Message: msg}
}
