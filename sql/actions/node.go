package actions

import (
	"gopkg.in/src-d/go-expression-dag.v0/sql"
	"gopkg.in/src-d/go-expression-dag.v0/sql/expression"
)

// ActionType is the kind of a DAG node.
type ActionType byte

const (
	// ActionInput is a column that must be provided by the caller.
	ActionInput ActionType = iota
	// ActionColumn is a column with a known value.
	ActionColumn
	// ActionAlias renames its child.
	ActionAlias
	// ActionArrayJoin unnests an array column. It is the only action that
	// changes the row count.
	ActionArrayJoin
	// ActionFunction applies a function to its children.
	ActionFunction
)

func (t ActionType) String() string {
	switch t {
	case ActionInput:
		return "INPUT"
	case ActionColumn:
		return "COLUMN"
	case ActionAlias:
		return "ALIAS"
	case ActionArrayJoin:
		return "ARRAY JOIN"
	case ActionFunction:
		return "FUNCTION"
	}
	return "UNKNOWN"
}

// Node is a vertex of an ActionsDAG producing a single named, typed
// column. Children always point at nodes added to the DAG earlier, which
// keeps the graph acyclic. Nodes are allocated individually, so child
// pointers stay valid across any number of later insertions.
type Node struct {
	Type     ActionType
	Children []*Node

	ResultName string
	ResultType sql.Type

	// Column is always set for ActionColumn nodes. It may be set for
	// inputs given as constant literals, for aliases of nodes carrying a
	// column and for folded function results.
	Column sql.Column

	// Resolver, Function and Executable are set for ActionFunction nodes:
	// the overload resolver, the function bound to the argument types and
	// its prepared form.
	Resolver   expression.Resolver
	Function   expression.Function
	Executable expression.Executable

	// AllowConstantFolding starts as the conjunction of the children's
	// flags. It is cleared when a function reports a constant result that
	// does not depend on its argument values, so that constant is not
	// inlined further.
	AllowConstantFolding bool
}
