package expression

import (
	"gopkg.in/src-d/go-expression-dag.v0/sql"
)

// Diagnostic names the columns a cast converts between, to make conversion
// errors traceable to the schema adaptation that inserted the cast.
type Diagnostic struct {
	SourceName string
	TargetName string
}

// NewCast returns the cast function. It takes two arguments: the value to
// convert and a constant string column naming the target type. The target
// type name resolves through sql.TypeByName.
func NewCast(diagnostic Diagnostic) Resolver {
	return &resolver{
		name: "CAST",
		build: func(args []sql.TypedColumn) (Function, error) {
			if len(args) != 2 {
				return nil, ErrInvalidArgumentNumber.New("CAST", 2, len(args))
			}

			typeArg := args[1]
			if typeArg.Column == nil || !sql.IsConst(typeArg.Column) {
				return nil, ErrCastTypeArgument.New(typeArg.Type.Name())
			}

			name, ok := typeArg.Column.(*sql.ConstColumn).Value().(string)
			if !ok {
				return nil, ErrCastTypeArgument.New(typeArg.Type.Name())
			}

			target, err := sql.TypeByName(name)
			if err != nil {
				return nil, err
			}

			eval := func(values []interface{}) (interface{}, error) {
				v, err := target.Convert(values[0])
				if err != nil {
					return nil, ErrCastFailed.Wrap(err, diagnostic.SourceName, diagnostic.TargetName)
				}
				return v, nil
			}

			return &base{name: "CAST", resultType: target, eval: eval}, nil
		},
	}
}
