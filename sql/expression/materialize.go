package expression

import (
	"gopkg.in/src-d/go-expression-dag.v0/sql"
)

// NewMaterialize returns the materialize function. It is the identity on
// values but its result column is never constant, which is how a planner
// strips the constant representation off a column before handing it to a
// consumer that expects full columns. It is not suitable for constant
// folding for the same reason.
func NewMaterialize() Resolver {
	return &resolver{
		name: "materialize",
		build: func(args []sql.TypedColumn) (Function, error) {
			if len(args) != 1 {
				return nil, ErrInvalidArgumentNumber.New("materialize", 1, len(args))
			}

			return &base{
				name:        "materialize",
				resultType:  args[0].Type,
				notFoldable: true,
				prepare: func([]sql.TypedColumn) Executable {
					return materializeExec{}
				},
			}, nil
		},
	}
}

type materializeExec struct{}

func (materializeExec) Execute(args []sql.TypedColumn, resultType sql.Type, rows int, dryRun bool) (sql.Column, error) {
	if args[0].Column == nil {
		return nil, ErrArgumentColumnMissing.New(args[0].Name)
	}

	col := args[0].Column
	if sql.IsConst(col) && col.Size() != rows {
		col = col.Resize(rows)
	}
	return sql.Materialized(col), nil
}
