package expression

import (
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/src-d/go-expression-dag.v0/sql"
)

// NewConcat returns the string concatenation function. It accepts any
// number of arguments and stringifies each of them.
func NewConcat() Resolver {
	return &resolver{
		name: "concat",
		build: func(args []sql.TypedColumn) (Function, error) {
			eval := func(values []interface{}) (interface{}, error) {
				var sb strings.Builder
				for _, v := range values {
					s, err := cast.ToStringE(v)
					if err != nil {
						return nil, err
					}
					sb.WriteString(s)
				}
				return sb.String(), nil
			}

			return &base{name: "concat", resultType: sql.String, eval: eval}, nil
		},
	}
}

// NewUpper returns the upper-casing function.
func NewUpper() Resolver {
	return &resolver{
		name: "upper",
		build: func(args []sql.TypedColumn) (Function, error) {
			if len(args) != 1 {
				return nil, ErrInvalidArgumentNumber.New("upper", 1, len(args))
			}

			eval := func(values []interface{}) (interface{}, error) {
				s, err := cast.ToStringE(values[0])
				if err != nil {
					return nil, err
				}
				return strings.ToUpper(s), nil
			}

			return &base{name: "upper", resultType: sql.String, eval: eval}, nil
		},
	}
}

// NewLength returns the string length function.
func NewLength() Resolver {
	return &resolver{
		name: "length",
		build: func(args []sql.TypedColumn) (Function, error) {
			if len(args) != 1 {
				return nil, ErrInvalidArgumentNumber.New("length", 1, len(args))
			}

			eval := func(values []interface{}) (interface{}, error) {
				s, err := cast.ToStringE(values[0])
				if err != nil {
					return nil, err
				}
				return int64(len(s)), nil
			}

			return &base{name: "length", resultType: sql.BigInteger, eval: eval}, nil
		},
	}
}
