package apperror

import "fmt"

// AppError pairs a machine code with a display message. Services return these
// as sentinel values from their errors/ packages; handlers translate them to
// HTTP through ToHTTP.
type AppError struct {
	Code       string // stable code, see codes.go
	Message    string // display message, Vietnamese
	HTTPStatus int
	Err        error // wrapped cause, optional
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap keeps errors.Is/As working across wrapped causes.
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches a cause to a new AppError. A nil cause yields nil so call
// sites can wrap unconditionally.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
