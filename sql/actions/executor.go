package actions

import (
	"gopkg.in/src-d/go-expression-dag.v0/sql"
)

// ExpressionActions materializes a DAG over blocks of named columns.
type ExpressionActions struct {
	dag *ActionsDAG
}

// NewExpressionActions returns an executor over the given DAG. The DAG
// must not be mutated while the executor uses it.
func NewExpressionActions(dag *ActionsDAG) *ExpressionActions {
	return &ExpressionActions{dag: dag}
}

// RequiredColumns returns the inputs the executor expects in a block.
func (e *ExpressionActions) RequiredColumns() sql.Schema {
	return e.dag.RequiredColumns()
}

// Execute computes the DAG's output columns for the given block. Inputs
// resolve against the block by name, leftmost unconsumed match first.
// The temporary column caps stored in the DAG's settings are enforced
// here.
func (e *ExpressionActions) Execute(ctx *sql.Context, block []sql.TypedColumn) ([]sql.TypedColumn, error) {
	span, ctx := ctx.Span("expression.Execute")
	defer span.Finish()

	rows := blockRows(block)

	remaining := make(map[string][]int, len(block))
	for pos, col := range block {
		remaining[col.Name] = append(remaining[col.Name], pos)
	}

	settings := e.dag.settings
	computed := make(map[*Node]sql.Column, len(e.dag.nodes))
	var tempColumns, tempNonConstColumns uint64

	for _, node := range e.dag.nodes {
		col, err := e.executeNode(node, block, remaining, computed, rows)
		if err != nil {
			return nil, err
		}
		computed[node] = col

		if node.Type != ActionInput {
			tempColumns++
			if settings.MaxTemporaryColumns > 0 && tempColumns > settings.MaxTemporaryColumns {
				return nil, ErrTooManyTemporaryColumns.New(tempColumns, settings.MaxTemporaryColumns)
			}

			if !sql.IsConst(col) {
				tempNonConstColumns++
				if settings.MaxTemporaryNonConstColumns > 0 &&
					tempNonConstColumns > settings.MaxTemporaryNonConstColumns {
					return nil, ErrTooManyTemporaryNonConstColumns.New(
						tempNonConstColumns, settings.MaxTemporaryNonConstColumns)
				}
			}
		}
	}

	outputs := e.dag.index.Nodes()
	result := make([]sql.TypedColumn, len(outputs))
	for i, node := range outputs {
		result[i] = sql.TypedColumn{
			Column: computed[node],
			Type:   node.ResultType,
			Name:   node.ResultName,
		}
	}

	ctx.Logger().WithField("nodes", len(e.dag.nodes)).Debug("executed expression dag")
	return result, nil
}

func (e *ExpressionActions) executeNode(
	node *Node,
	block []sql.TypedColumn,
	remaining map[string][]int,
	computed map[*Node]sql.Column,
	rows int,
) (sql.Column, error) {
	switch node.Type {
	case ActionInput:
		positions := remaining[node.ResultName]
		if len(positions) == 0 {
			return nil, ErrMissingInputColumn.New(node.ResultName)
		}
		remaining[node.ResultName] = positions[1:]

		col := block[positions[0]].Column
		if col == nil {
			return nil, ErrMissingInputColumn.New(node.ResultName)
		}
		return col, nil

	case ActionColumn:
		return node.Column, nil

	case ActionAlias:
		return computed[node.Children[0]], nil

	case ActionArrayJoin:
		child := sql.Materialized(computed[node.Children[0]])

		var values []interface{}
		for i := 0; i < child.Size(); i++ {
			elems, err := node.Children[0].ResultType.Convert(child.Get(i))
			if err != nil {
				return nil, err
			}
			values = append(values, elems.([]interface{})...)
		}

		col, err := sql.NewValueColumn(node.ResultType, values)
		if err != nil {
			return nil, err
		}
		return col, nil

	default: // ActionFunction
		if node.Column != nil && sql.IsConst(node.Column) {
			return node.Column, nil
		}

		args := make([]sql.TypedColumn, len(node.Children))
		nrows := rows
		for i, child := range node.Children {
			col := computed[child]
			args[i] = sql.TypedColumn{
				Column: col,
				Type:   child.ResultType,
				Name:   child.ResultName,
			}

			// Past an array join the row count is whatever the unnested
			// column has.
			if !sql.IsConst(col) && col.Size() != nrows {
				nrows = col.Size()
			}
		}

		return node.Executable.Execute(args, node.ResultType, nrows, false)
	}
}

// blockRows is the row count of a block: the size of its first non
// constant column, or of its first column when all are constant, or 1 for
// an empty block.
func blockRows(block []sql.TypedColumn) int {
	for _, col := range block {
		if col.Column != nil && !sql.IsConst(col.Column) {
			return col.Column.Size()
		}
	}
	for _, col := range block {
		if col.Column != nil {
			return col.Column.Size()
		}
	}
	return 1
}
