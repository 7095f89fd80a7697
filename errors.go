package fontconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/fontconfig/sys"
)

// Error codes. The first four correspond to FcResult.
const (
	NOERROR        int = 0
	ENOMATCH       int = 1   // attribute not present / no font found
	ETYPEMISMATCH  int = 2   // attribute has a value of a different type
	ENOID          int = 3   // attribute has fewer values than requested
	EOUTOFMEMORY   int = 4   // fontconfig ran out of memory
	EPARSE         int = 120 // font name cannot be parsed
	EUNKNOWNFORMAT int = 121 // unrecognized font format
	ELIBRARY       int = 122 // fontconfig library not usable
	EINTERNAL      int = 125 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case ENOMATCH:
		return "no match"
	case ETYPEMISMATCH:
		return "type mismatch"
	case ENOID:
		return "no such id"
	case EOUTOFMEMORY:
		return "out of memory"
	case EPARSE:
		return "parse error"
	case EUNKNOWNFORMAT:
		return "unknown font format"
	case ELIBRARY:
		return "fontconfig not available"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// Sentinel errors, to be used with errors.Is.
var (
	ErrNoMatch       = ErrorWithCode(nil, ENOMATCH)
	ErrTypeMismatch  = ErrorWithCode(nil, ETYPEMISMATCH)
	ErrNoID          = ErrorWithCode(nil, ENOID)
	ErrOutOfMemory   = ErrorWithCode(nil, EOUTOFMEMORY)
	ErrParse         = ErrorWithCode(nil, EPARSE)
	ErrUnknownFormat = ErrorWithCode(nil, EUNKNOWNFORMAT)
	ErrLibrary       = ErrorWithCode(nil, ELIBRARY)
)

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type fcError struct {
	error
	code int
	msg  string
}

func (e fcError) Unwrap() error {
	return e.error
}

func (e fcError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e fcError) ErrorCode() int {
	return e.code
}

func (e fcError) UserMessage() string {
	return e.msg
}

// Is matches any fontconfig error carrying the same code.
func (e fcError) Is(target error) bool {
	if t, ok := target.(fcError); ok {
		return t.code == e.code
	}
	return false
}

var _ AppError = fcError{}

// ErrorWithCode adds an error code to err's error chain.
// ErrorWithCode will wrap nil error.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return fcError{err, code, errorText(code)}
}

// WrapError wraps an error, featuring an error code and a user message.
// The message is prepended to err's text.
func WrapError(err error, code int, format string, v ...interface{}) error {
	msg := fmt.Sprintf(format, v...)
	if err == nil {
		return Error(code, format, v...)
	}
	return fcError{fmt.Errorf("%s: %w", msg, err), code, msg}
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	msg := fmt.Sprintf(format, v...)
	return fcError{errors.New(msg), code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// UserError prints an error to stderr.
func UserError(err error) {
	if e := AppError(nil); errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}

// resultError translates an FcResult. ResultMatch yields nil.
func resultError(r sys.Result, object string, n int) error {
	switch r {
	case sys.ResultMatch:
		return nil
	case sys.ResultNoMatch:
		return Error(ENOMATCH, "pattern has no attribute %q", object)
	case sys.ResultTypeMismatch:
		return Error(ETYPEMISMATCH, "attribute %q has another type", object)
	case sys.ResultNoId:
		return Error(ENOID, "attribute %q has no value #%d", object, n)
	case sys.ResultOutOfMemory:
		return Error(EOUTOFMEMORY, "out of memory reading %q", object)
	}
	return Error(EINTERNAL, "unexpected fontconfig result %d", r)
}

// must panics if a mutating fontconfig call reports failure.
func must(ok sys.Bool, format string, v ...interface{}) {
	if ok == sys.False {
		msg := fmt.Sprintf("fontconfig: "+format+" failed", v...)
		tracer().Errorf(msg)
		panic(msg)
	}
}

// mustHandle panics on a NULL handle returned by a constructor.
func mustHandle(isNil bool, what string) {
	if isNil {
		msg := fmt.Sprintf("fontconfig: cannot create %s", what)
		tracer().Errorf(msg)
		panic(msg)
	}
}
