package sql

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrInvalidType is returned when a value cannot be converted to the
	// type it was declared with.
	ErrInvalidType = errors.NewKind("invalid type: %s")

	// ErrNotArray is returned when a non array value reaches an array type.
	ErrNotArray = errors.NewKind("value of type %T is not an array")

	// ErrTypeNotFound is returned when a type name does not resolve to a
	// known type.
	ErrTypeNotFound = errors.NewKind("type not found: %q")
)
