// Package apperr defines sentinel errors shared across service and API
// layers.
package apperr

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidBackup = errors.New("invalid backup document")
)
