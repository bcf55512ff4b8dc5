package apperrors

import "errors"

// Taxonomy errors. Every component-level failure maps to exactly one of these
// kinds; the HTTP layer translates each kind to a single status code.
var (
	// ErrBadRequest signals missing or invalid input fields.
	ErrBadRequest = errors.New("bad request")

	// ErrInvalidCredentials signals a missing or wrong credential. Unknown
	// identity and wrong secret are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPermissionDenied signals a valid identity with insufficient
	// authorization: wrong ownership, unassigned subject, or a bad/expired
	// session token.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound signals that a referenced record is absent.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict signals a duplicate unique key.
	ErrConflict = errors.New("conflict")

	// ErrPersistence signals a backing-file write failure. The write error is
	// logged at the store; callers only ever see this generic kind.
	ErrPersistence = errors.New("persistence failure")
)

// Token errors, mapped to ErrPermissionDenied semantics by the middleware.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// CustomError carries a short human-readable message alongside a taxonomy
// kind. The message is safe to return to clients.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewBadRequestError creates a bad-request error with a message.
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewUnauthorizedError creates an invalid-credentials error with a message.
func NewUnauthorizedError(message string) error {
	return &CustomError{Err: ErrInvalidCredentials, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message.
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewNotFoundError creates a not-found error with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// Message returns the client-safe message for err, falling back to the given
// default when err carries none.
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
