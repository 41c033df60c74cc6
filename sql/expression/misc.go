package expression

import (
	"math/rand"

	"gopkg.in/src-d/go-expression-dag.v0/sql"
)

// NewIgnore returns the ignore function. It accepts any arguments and
// always returns the constant zero, which exercises the planner's
// always-constant detection: the result column is known without folding
// the arguments away.
func NewIgnore() Resolver {
	return &resolver{
		name: "ignore",
		build: func(args []sql.TypedColumn) (Function, error) {
			eval := func([]interface{}) (interface{}, error) {
				return int64(0), nil
			}

			var alwaysConst func([]sql.TypedColumn) sql.Column
			if len(args) > 0 {
				alwaysConst = func([]sql.TypedColumn) sql.Column {
					return sql.MustNewConstColumn(sql.BigInteger, 1, int64(0))
				}
			}

			return &base{
				name:        "ignore",
				resultType:  sql.BigInteger,
				eval:        eval,
				alwaysConst: alwaysConst,
			}, nil
		},
	}
}

// NewRand returns the random number function. Not deterministic and never
// folded.
func NewRand() Resolver {
	return &resolver{
		name: "rand",
		build: func(args []sql.TypedColumn) (Function, error) {
			if len(args) != 0 {
				return nil, ErrInvalidArgumentNumber.New("rand", 0, len(args))
			}

			return &base{
				name:        "rand",
				resultType:  sql.Float64,
				notFoldable: true,
				nondet:      true,
				prepare: func([]sql.TypedColumn) Executable {
					return randExec{}
				},
			}, nil
		},
	}
}

// NewRunningCount returns a stateful row counter: every row evaluated by a
// prepared instance gets the next value of its counter.
func NewRunningCount() Resolver {
	return &resolver{
		name: "runningCount",
		build: func(args []sql.TypedColumn) (Function, error) {
			if len(args) != 0 {
				return nil, ErrInvalidArgumentNumber.New("runningCount", 0, len(args))
			}

			return &base{
				name:        "runningCount",
				resultType:  sql.BigInteger,
				notFoldable: true,
				stateful:    true,
				prepare: func([]sql.TypedColumn) Executable {
					return &runningCountExec{}
				},
			}, nil
		},
	}
}

type randExec struct{}

func (randExec) Execute(args []sql.TypedColumn, resultType sql.Type, rows int, dryRun bool) (sql.Column, error) {
	out := make([]interface{}, rows)
	for i := range out {
		out[i] = rand.Float64()
	}

	col, err := sql.NewValueColumn(resultType, out)
	if err != nil {
		return nil, err
	}
	return col, nil
}

type runningCountExec struct {
	count int64
}

func (e *runningCountExec) Execute(args []sql.TypedColumn, resultType sql.Type, rows int, dryRun bool) (sql.Column, error) {
	out := make([]interface{}, rows)
	for i := range out {
		e.count++
		out[i] = e.count
	}

	col, err := sql.NewValueColumn(resultType, out)
	if err != nil {
		return nil, err
	}
	return col, nil
}
