package models

import "errors"

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned when a request is missing required input
	ErrInvalidArgument = errors.New("invalid argument")
)
