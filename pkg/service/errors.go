package service

import "errors"

// IsValidationError reports whether err is a request-shape problem (a 400,
// invalid argument) rather than an engine-time failure.
func IsValidationError(err error) bool {
	var e *ErrorResponse
	return errors.As(err, &e)
}
