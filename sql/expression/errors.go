package expression

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrFunctionNotFound is returned when a function name does not
	// resolve in the registry.
	ErrFunctionNotFound = errors.NewKind("function not found: %s")

	// ErrInvalidArgumentNumber is returned when a function is built with
	// the wrong number of arguments.
	ErrInvalidArgumentNumber = errors.NewKind("function %s expects %d arguments, %d given")

	// ErrArgumentColumnMissing is returned when a prepared function is
	// executed with an argument that carries no column.
	ErrArgumentColumnMissing = errors.NewKind("argument %q has no column")

	// ErrCastTypeArgument is returned when the second argument of cast is
	// not a constant string naming the target type.
	ErrCastTypeArgument = errors.NewKind("cast expects a constant string type name as second argument, got %s")

	// ErrCastFailed wraps a conversion error with the source and target
	// column names the cast was inserted for.
	ErrCastFailed = errors.NewKind("cannot cast column %q to the type of column %q")

	// ErrDivisionByZero is returned on integer division by zero.
	ErrDivisionByZero = errors.NewKind("division by zero")
)
