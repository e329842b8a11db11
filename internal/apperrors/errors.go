package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrExportFailure indicates that an interchange export could not be
// serialized. The export is all-or-nothing; there is no partial output.
var ErrExportFailure = errors.New("export failure")
