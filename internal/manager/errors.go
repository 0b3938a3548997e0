package manager

import "errors"

// notReadyError signals that artifacts are not loaded (return 503).
type notReadyError struct{ state State }

func (e notReadyError) Error() string { return "artifacts not ready: " + string(e.state) }

// IsNotReady reports whether err indicates the manager has no loaded artifacts.
func IsNotReady(err error) bool {
	var e notReadyError
	return errors.As(err, &e)
}

// invalidInputError rejects selections no dashboard control can produce.
type invalidInputError struct{ msg string }

func (e invalidInputError) Error() string { return e.msg }

// ErrInvalidInput constructs an invalidInputError.
func ErrInvalidInput(msg string) error { return invalidInputError{msg: msg} }

// IsInvalidInput reports whether err indicates a bad request (return 400).
func IsInvalidInput(err error) bool {
	var e invalidInputError
	return errors.As(err, &e)
}
