package expression

import (
	"gopkg.in/src-d/go-expression-dag.v0/sql"
)

// NewEquals returns the equality comparison function.
func NewEquals() Resolver {
	return newComparison("equals", func(cmp int) bool { return cmp == 0 })
}

// NewGreater returns the greater-than comparison function.
func NewGreater() Resolver {
	return newComparison("greater", func(cmp int) bool { return cmp > 0 })
}

// NewLess returns the less-than comparison function.
func NewLess() Resolver {
	return newComparison("less", func(cmp int) bool { return cmp < 0 })
}

func newComparison(name string, test func(cmp int) bool) Resolver {
	return &resolver{
		name: name,
		build: func(args []sql.TypedColumn) (Function, error) {
			if len(args) != 2 {
				return nil, ErrInvalidArgumentNumber.New(name, 2, len(args))
			}

			// Numeric operands compare in their promoted type, anything
			// else must already share a type.
			compareType := args[0].Type
			if sql.IsNumber(args[0].Type) && sql.IsNumber(args[1].Type) {
				promoted, err := sql.NumberPromotion(args[0].Type, args[1].Type)
				if err != nil {
					return nil, err
				}
				compareType = promoted
			} else if !sql.TypesEqual(args[0].Type, args[1].Type) {
				return nil, sql.ErrInvalidType.New(args[1].Type.Name())
			}

			eval := func(values []interface{}) (interface{}, error) {
				a, err := compareType.Convert(values[0])
				if err != nil {
					return nil, err
				}
				b, err := compareType.Convert(values[1])
				if err != nil {
					return nil, err
				}
				return test(compareType.Compare(a, b)), nil
			}

			return &base{name: name, resultType: sql.Boolean, eval: eval}, nil
		},
	}
}
