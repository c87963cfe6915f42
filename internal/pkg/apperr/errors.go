package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidSelection = "INVALID_SELECTION"
	CodeDuplicate        = "DUPLICATE_ROW"
	CodeSchema           = "SCHEMA_MISMATCH"
	CodeUnknownCategory  = "UNKNOWN_CATEGORY"
	CodeInternalError    = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a lookup matched no row.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInvalidSelection is returned when a selection combines mutually exclusive filters.
	ErrInvalidSelection = New(fiber.StatusBadRequest, CodeInvalidSelection, "invalid selection: csq_set and csq cannot both be set")

	// ErrDuplicate is returned when a lookup that must be unique matched more than one row.
	ErrDuplicate = New(fiber.StatusInternalServerError, CodeDuplicate, "more than one row matched a unique key")

	// ErrSchema is returned when the source table lacks an expected column.
	ErrSchema = New(fiber.StatusUnprocessableEntity, CodeSchema, "source table does not match the expected schema")

	// ErrUnknownCategory is returned for a genetic ancestry code outside the rendered set.
	ErrUnknownCategory = New(fiber.StatusUnprocessableEntity, CodeUnknownCategory, "unknown genetic ancestry category")

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

// Is reports whether target carries the same error code, so that copies made
// by Msg or WithExtras still match their sentinel under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.ErrorCode == t.ErrorCode
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
