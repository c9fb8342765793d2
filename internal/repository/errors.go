package repository

import "errors"

// ErrNotFound is returned when an operation targets an identity that has
// no matching row. Business-rule refusals are reported as boolean false
// by the service layer, never as this error.
var ErrNotFound = errors.New("not found")
