package types

import (
	"errors"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	ValidationError      ErrorCode = "VALIDATION_ERROR"
	NotFound             ErrorCode = "NOT_FOUND"
	BadRequest           ErrorCode = "BAD_REQUEST"
	Forbidden            ErrorCode = "FORBIDDEN"
	Conflict             ErrorCode = "CONFLICT"
	TransferFailed       ErrorCode = "TRANSFER_FAILED"
)

var defaultStatusCodes = map[ErrorCode]int{
	InternalServiceError: http.StatusInternalServerError,
	ValidationError:      http.StatusBadRequest,
	NotFound:             http.StatusNotFound,
	BadRequest:           http.StatusBadRequest,
	Forbidden:            http.StatusForbidden,
	Conflict:             http.StatusConflict,
	TransferFailed:       http.StatusUnprocessableEntity,
}

// StatusCode is the http status returned for the code when the caller did
// not pick one.
func (e ErrorCode) StatusCode() int {
	if status, ok := defaultStatusCodes[e]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error carries the http status and the application error code of a failed
// operation along with its cause.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

const UninitializedStatusCode = 0

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an Error. An empty error code becomes
// INTERNAL_SERVICE_ERROR and a zero status code falls back to the default
// status of the error code.
func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	if errorCode == "" {
		errorCode = InternalServiceError
	}
	if statusCode == UninitializedStatusCode {
		statusCode = errorCode.StatusCode()
	}
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}

func NewInternalServiceError(err error) *Error {
	return NewError(http.StatusInternalServerError, InternalServiceError, err)
}

// HasErrorCode reports whether err wraps an Error with the given code.
func HasErrorCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.ErrorCode == code
}
