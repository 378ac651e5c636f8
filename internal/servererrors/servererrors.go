package servererrors

import "errors"

var (
	ErrInvalidRequestPayload = errors.New("invalid request payload")
	ErrValidationFailed      = errors.New("validation failed")
	ErrURLQueryParams        = errors.New("invalid url query params")

	ErrItemNotFound      = errors.New("item not found")
	ErrItemAlreadyExists = errors.New("item already exists")
	ErrOrderNotFound     = errors.New("order not found")

	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrNoAccessTokenCookie = errors.New("no access token cookie")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrUnauthorizedAccess  = errors.New("unauthorized access")
)

// ServerError carries the http status code a handler error should be written
// with, plus optional field-level details for validation failures.
type ServerError struct {
	StatusCode int
	Message    string
	Errors     any
}

func New(statusCode int, message string, errs any) *ServerError {
	return &ServerError{
		StatusCode: statusCode,
		Message:    message,
		Errors:     errs,
	}
}

func (e *ServerError) Error() string {
	return e.Message
}
