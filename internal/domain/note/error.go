package note

import "errors"

var (
	ErrNotFound    = errors.New("note not found")
	ErrInvalidData = errors.New("invalid note data")
)
