package errors

import (
	"net/http"

	"authflow/internal/errors"
)

// Kind is the closed set of failure variants the login protocol can produce.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindCredentialNotFound
	KindInvalidCredential
	KindAuthenticationFailed
	KindUpstreamUnavailable
	KindSigning
	KindConflict
	KindInternal
)

var kindNames = map[Kind]string{
	KindUnknown:              "unknown",
	KindValidation:           "validation",
	KindCredentialNotFound:   "credential_not_found",
	KindInvalidCredential:    "invalid_credential",
	KindAuthenticationFailed: "authentication_failed",
	KindUpstreamUnavailable:  "upstream_unavailable",
	KindSigning:              "signing",
	KindConflict:             "conflict",
	KindInternal:             "internal",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return kindNames[KindUnknown]
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure variant
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind { return e.kind }

func (e *BaseError) HTTPCode() int { return e.httpCode }

func (e *BaseError) ErrorCode() string { return e.errorCode }

func (e *BaseError) Message() string { return e.message }

func (e *BaseError) Details() string { return e.details }

// WithDetails returns a copy carrying details. The copy still matches the
// original through errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same error code, so detailed copies
// compare equal to the predefined values.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// KindOf returns the Kind of the first AppError in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindUnknown
}

// Error codes shared between the credential service and its clients.
const (
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeCredentialNotFound   = "ERR_NOT_FOUND_EMAIL"
	CodeInvalidCredential    = "ERR_INCORRECT_PASSWORD"
	CodeAuthenticationFailed = "INVALID_CREDENTIALS"
	CodeUpstreamUnavailable  = "UPSTREAM_UNAVAILABLE"
	CodeSigningFailed        = "TOKEN_SIGNING_FAILED"
	CodeUserAlreadyExists    = "USER_ALREADY_EXISTS"
	CodeInternalError        = "INTERNAL_ERROR"
)

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		CodeValidationFailed,
		"Email and password are required",
		"",
	)

	// Credential service errors. Their codes stay distinct on the internal API.
	ErrCredentialNotFound = NewBaseError(
		KindCredentialNotFound,
		http.StatusNotFound,
		CodeCredentialNotFound,
		"Email not found",
		"",
	)

	ErrInvalidCredential = NewBaseError(
		KindInvalidCredential,
		http.StatusUnauthorized,
		CodeInvalidCredential,
		"Incorrect password",
		"",
	)

	// ErrAuthenticationFailed is the only credential failure a login client sees.
	ErrAuthenticationFailed = NewBaseError(
		KindAuthenticationFailed,
		http.StatusUnauthorized,
		CodeAuthenticationFailed,
		"Invalid email or password",
		"",
	)

	ErrUpstreamUnavailable = NewBaseError(
		KindUpstreamUnavailable,
		http.StatusServiceUnavailable,
		CodeUpstreamUnavailable,
		"Credential service unavailable, please retry later",
		"",
	)

	ErrSigningFailed = NewBaseError(
		KindSigning,
		http.StatusInternalServerError,
		CodeSigningFailed,
		"Unable to issue tokens",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		KindConflict,
		http.StatusConflict,
		CodeUserAlreadyExists,
		"Email is already registered",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		CodeInternalError,
		"Internal server error, please try again later",
		"",
	)
)

var byCode = map[string]*BaseError{
	CodeValidationFailed:     ErrValidationFailed,
	CodeCredentialNotFound:   ErrCredentialNotFound,
	CodeInvalidCredential:    ErrInvalidCredential,
	CodeAuthenticationFailed: ErrAuthenticationFailed,
	CodeUpstreamUnavailable:  ErrUpstreamUnavailable,
	CodeSigningFailed:        ErrSigningFailed,
	CodeUserAlreadyExists:    ErrUserAlreadyExists,
	CodeInternalError:        ErrInternalError,
}

// FromCode resolves an error code received over the wire to its predefined error.
func FromCode(code string) (*BaseError, bool) {
	e, ok := byCode[code]

	return e, ok
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error { return e.err }

func (e *DatabaseExecuteError) Kind() Kind { return KindInternal }

func (e *DatabaseExecuteError) HTTPCode() int { return http.StatusInternalServerError }

func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }

func (e *DatabaseExecuteError) Message() string { return "Database execution failed" }

func (e *DatabaseExecuteError) Details() string { return e.details }
