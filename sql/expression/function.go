package expression

import (
	"gopkg.in/src-d/go-expression-dag.v0/sql"
)

// Resolver resolves a function name and concrete argument shapes to a
// built function. Resolvers are what callers register and what the DAG
// builder receives.
type Resolver interface {
	// Name returns the function name.
	Name() string
	// Build binds the function to the given arguments, reporting the
	// result type. The argument columns may be nil for non constant
	// arguments; only their types and names are guaranteed.
	Build(args []sql.TypedColumn) (Function, error)
}

// Function is a function bound to concrete argument types.
type Function interface {
	// Name returns the function name.
	Name() string
	// ResultType returns the type of the function result for the bound
	// arguments.
	ResultType() sql.Type
	// Prepare returns the executable form of the function for the bound
	// arguments.
	Prepare(args []sql.TypedColumn) Executable
	// SuitableForConstantFolding reports whether the planner may execute
	// the function over constant arguments and keep the result.
	SuitableForConstantFolding() bool
	// Deterministic reports whether equal arguments always produce equal
	// results.
	Deterministic() bool
	// Stateful reports whether the function keeps state between rows.
	Stateful() bool
	// AlwaysConstantResult returns the constant result column the function
	// produces regardless of its argument values, or nil if the result
	// depends on them.
	AlwaysConstantResult(args []sql.TypedColumn) sql.Column
}

// Executable is a prepared function ready to run over columns.
//
// For functions suitable for constant folding, when every argument column
// is constant the result is a constant column; this is what makes eager
// folding in the DAG builder observable. Functions not suitable for
// folding (materialize, rand, runningCount) return value columns. With
// rows == 0 the result is empty. dryRun is set when the call happens at
// planning time rather than over real data.
type Executable interface {
	Execute(args []sql.TypedColumn, resultType sql.Type, rows int, dryRun bool) (sql.Column, error)
}

// base is the scaffolding shared by the builtin functions: a typing rule
// plus a per row evaluator.
type base struct {
	name        string
	resultType  sql.Type
	eval        func(values []interface{}) (interface{}, error)
	notFoldable bool
	nondet      bool
	stateful    bool
	alwaysConst func(args []sql.TypedColumn) sql.Column
	prepare     func(args []sql.TypedColumn) Executable
}

func (f *base) Name() string { return f.name }

func (f *base) ResultType() sql.Type { return f.resultType }

func (f *base) Prepare(args []sql.TypedColumn) Executable {
	if f.prepare != nil {
		return f.prepare(args)
	}
	return &rowEval{eval: f.eval}
}

func (f *base) SuitableForConstantFolding() bool { return !f.notFoldable }

func (f *base) Deterministic() bool { return !f.nondet }

func (f *base) Stateful() bool { return f.stateful }

func (f *base) AlwaysConstantResult(args []sql.TypedColumn) sql.Column {
	if f.alwaysConst == nil {
		return nil
	}
	return f.alwaysConst(args)
}

// rowEval runs a per row evaluator over the argument columns. Constant
// arguments produce a constant result.
type rowEval struct {
	eval func(values []interface{}) (interface{}, error)
}

func (e *rowEval) Execute(args []sql.TypedColumn, resultType sql.Type, rows int, dryRun bool) (sql.Column, error) {
	allConst := true
	for _, arg := range args {
		if arg.Column == nil {
			return nil, ErrArgumentColumnMissing.New(arg.Name)
		}
		if !sql.IsConst(arg.Column) {
			allConst = false
		}
	}

	if allConst {
		values := make([]interface{}, len(args))
		for i, arg := range args {
			values[i] = arg.Column.Get(0)
		}

		v, err := e.eval(values)
		if err != nil {
			return nil, err
		}

		col, err := sql.NewConstColumn(resultType, rows, v)
		if err != nil {
			return nil, err
		}
		return col, nil
	}

	out := make([]interface{}, rows)
	values := make([]interface{}, len(args))
	for i := 0; i < rows; i++ {
		for j, arg := range args {
			values[j] = arg.Column.Get(i)
		}

		v, err := e.eval(values)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	col, err := sql.NewValueColumn(resultType, out)
	if err != nil {
		return nil, err
	}
	return col, nil
}

// resolver builds base functions from a binding rule.
type resolver struct {
	name  string
	build func(args []sql.TypedColumn) (Function, error)
}

func (r *resolver) Name() string { return r.name }

func (r *resolver) Build(args []sql.TypedColumn) (Function, error) {
	return r.build(args)
}
