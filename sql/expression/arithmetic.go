package expression

import (
	"reflect"

	"github.com/spf13/cast"
	"gopkg.in/src-d/go-expression-dag.v0/sql"
)

// NewPlus returns the addition function.
func NewPlus() Resolver {
	return newArithmetic("plus",
		func(a, b int64) (int64, error) { return a + b, nil },
		func(a, b float64) (float64, error) { return a + b, nil },
	)
}

// NewMinus returns the subtraction function.
func NewMinus() Resolver {
	return newArithmetic("minus",
		func(a, b int64) (int64, error) { return a - b, nil },
		func(a, b float64) (float64, error) { return a - b, nil },
	)
}

// NewMultiply returns the multiplication function.
func NewMultiply() Resolver {
	return newArithmetic("multiply",
		func(a, b int64) (int64, error) { return a * b, nil },
		func(a, b float64) (float64, error) { return a * b, nil },
	)
}

// NewDivide returns the division function.
func NewDivide() Resolver {
	return newArithmetic("divide",
		func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, ErrDivisionByZero.New()
			}
			return a / b, nil
		},
		func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, ErrDivisionByZero.New()
			}
			return a / b, nil
		},
	)
}

func newArithmetic(
	name string,
	intOp func(a, b int64) (int64, error),
	floatOp func(a, b float64) (float64, error),
) Resolver {
	return &resolver{
		name: name,
		build: func(args []sql.TypedColumn) (Function, error) {
			if len(args) != 2 {
				return nil, ErrInvalidArgumentNumber.New(name, 2, len(args))
			}

			resultType, err := sql.NumberPromotion(args[0].Type, args[1].Type)
			if err != nil {
				return nil, err
			}

			eval := func(values []interface{}) (interface{}, error) {
				if resultType.InternalType() == reflect.Float64 {
					a, err := cast.ToFloat64E(values[0])
					if err != nil {
						return nil, err
					}
					b, err := cast.ToFloat64E(values[1])
					if err != nil {
						return nil, err
					}
					return floatOp(a, b)
				}

				a, err := cast.ToInt64E(values[0])
				if err != nil {
					return nil, err
				}
				b, err := cast.ToInt64E(values[1])
				if err != nil {
					return nil, err
				}
				return intOp(a, b)
			}

			return &base{name: name, resultType: resultType, eval: eval}, nil
		},
	}
}
