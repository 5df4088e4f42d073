package apierr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"exusiai.dev/shufflestat/internal/core/coreerr"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeEmptyInput     = "EMPTY_INPUT"
	CodeUpstreamFailed = "UPSTREAM_FAILED"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrEmptyInput is returned when there is no data to work on. Clients are expected
	// to present it as an informational notice rather than a failure.
	ErrEmptyInput = New(fiber.StatusBadRequest, CodeEmptyInput, "no data available")

	// ErrUpstreamFailed is returned when an ingested payload was flagged as failed by its producer.
	ErrUpstreamFailed = New(fiber.StatusUnprocessableEntity, CodeUpstreamFailed, "the producing service reported a failure")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type Error struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e Error) Msg(format string, parts ...interface{}) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e Error) WithExtras(extras Extras) *Error {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *Error {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

// FromCore translates conditions reported by the analysis core into API errors.
// Errors that are not core conditions are returned unchanged.
func FromCore(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, coreerr.ErrInvalidParameter):
		return ErrInvalidReq.Msg("invalid request: %s", err)
	case errors.Is(err, coreerr.ErrEmptyInput):
		return ErrEmptyInput.Msg("%s", err)
	default:
		return err
	}
}
