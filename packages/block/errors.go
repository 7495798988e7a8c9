package block

import "fmt"

// ErrorCode classifies the failures a block operation can report. the
// values follow the gRPC-style numbering used for application errors.
type ErrorCode int

const (
	// InvalidDimension means a row or column capacity below 1 was requested.
	InvalidDimension ErrorCode = 3

	// NotFound means a lookup target was absent and no default was given.
	NotFound ErrorCode = 5

	// MalformedEncoding means an embedded file frame could not be decoded,
	// e.g. an opening marker without a terminator.
	MalformedEncoding ErrorCode = 9

	// IndexOutOfRange means a cell was addressed outside the declared
	// capacity.
	IndexOutOfRange ErrorCode = 11

	// InvalidRange means a lookup or range bound lies outside the declared
	// capacity.
	InvalidRange ErrorCode = 12

	// TypeMismatch means a cell holds a value that cannot be converted for
	// the requested operation.
	TypeMismatch ErrorCode = 13
)

var codeNames = map[ErrorCode]string{
	InvalidDimension:  "invalid dimension",
	NotFound:          "not found",
	MalformedEncoding: "malformed encoding",
	IndexOutOfRange:   "index out of range",
	InvalidRange:      "invalid range",
	TypeMismatch:      "type mismatch",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("error code %d", int(c))
}

// Error is returned by every failing block operation
type Error struct {
	Code    ErrorCode
	Message string
	Err     error // optional cause
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code.String()
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same code, so callers can test
// errors.Is(err, block.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// sentinels for errors.Is
var (
	ErrInvalidDimension  = &Error{Code: InvalidDimension}
	ErrNotFound          = &Error{Code: NotFound}
	ErrMalformedEncoding = &Error{Code: MalformedEncoding}
	ErrIndexOutOfRange   = &Error{Code: IndexOutOfRange}
	ErrInvalidRange      = &Error{Code: InvalidRange}
	ErrTypeMismatch      = &Error{Code: TypeMismatch}
)

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
