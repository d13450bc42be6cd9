package domain

import "errors"

// Sentinel errors shared by services and repositories. Wrap them with
// fmt.Errorf("...: %w", ErrX) so the REST layer can map them to status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
