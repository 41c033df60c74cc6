package actions

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrDuplicateColumn is returned when a node is added under a name the
	// index already holds and replacement was not requested.
	ErrDuplicateColumn = errors.NewKind("column %q already exists")

	// ErrUnknownIdentifier is returned when a name does not resolve in the
	// index.
	ErrUnknownIdentifier = errors.NewKind("unknown identifier: %q")

	// ErrUnknownColumn is returned when pruning is asked to keep a column
	// the index does not hold.
	ErrUnknownColumn = errors.NewKind("unknown column: %q, there are only columns %s")

	// ErrArrayJoinNotArray is returned when an array join source is not an
	// array column.
	ErrArrayJoinNotArray = errors.NewKind("array join requires an array argument, got %s")

	// ErrColumnCountMismatch is returned by positional schema conversion
	// when source and target differ in size.
	ErrColumnCountMismatch = errors.NewKind("number of columns doesn't match: %d source, %d result")

	// ErrSourceColumnNotFound is returned by name-matched schema
	// conversion when a target column has no source left.
	ErrSourceColumnNotFound = errors.NewKind("cannot find column %q in source stream")

	// ErrConstantValueMismatch is returned when source and target are both
	// constant but disagree on the value.
	ErrConstantValueMismatch = errors.NewKind("cannot convert column %q: it is constant but source and result constants differ")

	// ErrConstantExpected is returned when the target column is constant
	// but the source is not.
	ErrConstantExpected = errors.NewKind("cannot convert column %q: it is not constant in source but must be constant in result")

	// ErrNilColumn is returned when a column action is added without a
	// column value.
	ErrNilColumn = errors.NewKind("cannot add column %q: column is nil")

	// ErrInputNotFound is returned when an input to remove is not an input
	// of the DAG.
	ErrInputNotFound = errors.NewKind("input %q not found in DAG:\n%s")

	// ErrInputHasDependents is returned when an input to remove is still a
	// child of some node.
	ErrInputHasDependents = errors.NewKind("cannot remove input %q because it has dependent nodes in DAG:\n%s")

	// ErrMergeResultMissing is returned when a merge needs a column of the
	// first DAG's result which projection already dropped.
	ErrMergeResultMissing = errors.NewKind("cannot find column %q in DAG result")

	// ErrFilterColumnMissing is returned when a filter split names a
	// column outside the index.
	ErrFilterColumnMissing = errors.NewKind("index does not contain filter column %q, DAG:\n%s")

	// ErrMissingInputColumn is returned by the executor when the block
	// does not provide a required input.
	ErrMissingInputColumn = errors.NewKind("block does not contain input column %q")

	// ErrTooManyTemporaryColumns is returned by the executor when a DAG
	// needs more simultaneous columns than allowed.
	ErrTooManyTemporaryColumns = errors.NewKind("too many temporary columns: %d, maximum: %d")

	// ErrTooManyTemporaryNonConstColumns is returned by the executor when
	// a DAG needs more simultaneous non constant columns than allowed.
	ErrTooManyTemporaryNonConstColumns = errors.NewKind("too many temporary non-const columns: %d, maximum: %d")
)
