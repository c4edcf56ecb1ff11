package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidQuery indicates that query parameters (pagination window or
// filter values) could not be parsed or are out of bounds.
var ErrInvalidQuery = errors.New("invalid query parameters")
