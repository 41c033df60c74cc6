package actions

import (
	"strings"

	"gopkg.in/src-d/go-expression-dag.v0/sql"
	"gopkg.in/src-d/go-expression-dag.v0/sql/expression"
)

// Settings are the per-DAG knobs. The executor caps and compilation
// thresholds are copied off the context by every AddFunction call, so the
// last call wins; ProjectInput and ProjectedOutput track what
// transformations were applied.
type Settings struct {
	MaxTemporaryColumns         uint64
	MaxTemporaryNonConstColumns uint64
	CompileExpressions          bool
	MinCountToCompileExpression uint64

	// ProjectInput makes transformations treat the DAG's inputs as exactly
	// consumed by the current output: merging may not add surviving inputs
	// past it.
	ProjectInput bool
	// ProjectedOutput is set once Project has been applied.
	ProjectedOutput bool
}

// ActionsDAG is a directed acyclic graph of actions over named, typed
// columns. Nodes are appended by the builder calls; the index selects
// which nodes form the output schema at any moment.
//
// A DAG is a single-owner, single-threaded structure: no mutating call is
// safe to run concurrently with any other call on the same DAG.
type ActionsDAG struct {
	nodes  []*Node
	index  *Index
	inputs []*Node

	settings Settings
	cache    sql.KeyValueCache
}

// New returns an empty DAG.
func New() *ActionsDAG {
	return &ActionsDAG{index: NewIndex()}
}

// NewFromSchema returns a DAG with one input per schema field.
func NewFromSchema(schema sql.Schema) *ActionsDAG {
	d := New()
	for _, f := range schema {
		d.addInput(f.Name, f.Type, true)
	}
	return d
}

// NewFromColumns returns a DAG with one input per column. Constant columns
// become constant literal inputs.
func NewFromColumns(cols []sql.TypedColumn) *ActionsDAG {
	d := New()
	for _, col := range cols {
		if col.Column != nil && sql.IsConst(col.Column) {
			d.addInputColumn(col, true)
		} else {
			d.addInput(col.Name, col.Type, true)
		}
	}
	return d
}

func (d *ActionsDAG) addNode(node *Node, canReplace bool) (*Node, error) {
	if d.index.Contains(node.ResultName) && !canReplace {
		return nil, ErrDuplicateColumn.New(node.ResultName)
	}

	d.nodes = append(d.nodes, node)
	if node.Type == ActionInput {
		d.inputs = append(d.inputs, node)
	}

	d.index.Replace(node)
	return node, nil
}

// GetNode returns the index entry with the given name.
func (d *ActionsDAG) GetNode(name string) (*Node, error) {
	node, ok := d.index.Get(name)
	if !ok {
		return nil, ErrUnknownIdentifier.New(name)
	}
	return node, nil
}

// AddInput adds an input column that the caller must provide at execution
// time.
func (d *ActionsDAG) AddInput(name string, t sql.Type) (*Node, error) {
	return d.addInput(name, t, false)
}

func (d *ActionsDAG) addInput(name string, t sql.Type, canReplace bool) (*Node, error) {
	return d.addNode(&Node{
		Type:                 ActionInput,
		ResultName:           name,
		ResultType:           t,
		AllowConstantFolding: true,
	}, canReplace)
}

// AddInputColumn adds an input whose value is already known, typically a
// constant literal.
func (d *ActionsDAG) AddInputColumn(col sql.TypedColumn) (*Node, error) {
	return d.addInputColumn(col, false)
}

func (d *ActionsDAG) addInputColumn(col sql.TypedColumn, canReplace bool) (*Node, error) {
	return d.addNode(&Node{
		Type:                 ActionInput,
		ResultName:           col.Name,
		ResultType:           col.Type,
		Column:               col.Column,
		AllowConstantFolding: true,
	}, canReplace)
}

// AddColumn adds a column with a known value.
func (d *ActionsDAG) AddColumn(col sql.TypedColumn) (*Node, error) {
	return d.addColumn(col, false)
}

func (d *ActionsDAG) addColumn(col sql.TypedColumn, canReplace bool) (*Node, error) {
	if col.Column == nil {
		return nil, ErrNilColumn.New(col.Name)
	}

	return d.addNode(&Node{
		Type:                 ActionColumn,
		ResultName:           col.Name,
		ResultType:           col.Type,
		Column:               col.Column,
		AllowConstantFolding: true,
	}, canReplace)
}

// AddAlias adds a rename of the node with the given name. The alias keeps
// the child's type and column.
func (d *ActionsDAG) AddAlias(name, alias string) (*Node, error) {
	child, err := d.GetNode(name)
	if err != nil {
		return nil, err
	}
	return d.addAliasNode(child, alias, false)
}

func (d *ActionsDAG) addAliasNode(child *Node, alias string, canReplace bool) (*Node, error) {
	return d.addNode(&Node{
		Type:                 ActionAlias,
		ResultName:           alias,
		ResultType:           child.ResultType,
		Column:               child.Column,
		AllowConstantFolding: child.AllowConstantFolding,
		Children:             []*Node{child},
	}, canReplace)
}

// AddArrayJoin adds an unnest of the named array column. The result type
// is the array's element type.
func (d *ActionsDAG) AddArrayJoin(sourceName, resultName string) (*Node, error) {
	child, err := d.GetNode(sourceName)
	if err != nil {
		return nil, err
	}

	arr, ok := child.ResultType.(sql.ArrayType)
	if !ok {
		return nil, ErrArrayJoinNotArray.New(child.ResultType.Name())
	}

	return d.addNode(&Node{
		Type:                 ActionArrayJoin,
		ResultName:           resultName,
		ResultType:           arr.Nested(),
		Children:             []*Node{child},
		AllowConstantFolding: true,
	}, false)
}

// AddFunction resolves the argument names, binds the function to them and
// adds the application. Executor caps and compilation settings are taken
// from the context, and so is the compiled expression cache while the DAG
// has none.
//
// If every argument is constant and the function allows it, the result is
// computed now and attached to the node. If resultName is empty a name of
// the form fname(a, b) is synthesized from the children.
func (d *ActionsDAG) AddFunction(
	ctx *sql.Context,
	fn expression.Resolver,
	argumentNames []string,
	resultName string,
) (*Node, error) {
	d.settings.MaxTemporaryColumns = ctx.Settings.MaxTemporaryColumns
	d.settings.MaxTemporaryNonConstColumns = ctx.Settings.MaxTemporaryNonConstColumns
	d.settings.CompileExpressions = ctx.Settings.CompileExpressions
	d.settings.MinCountToCompileExpression = ctx.Settings.MinCountToCompileExpression
	if d.cache == nil {
		d.cache = ctx.CompiledExpressionCache
	}

	children := make([]*Node, len(argumentNames))
	for i, name := range argumentNames {
		child, err := d.GetNode(name)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}

	return d.addFunction(fn, children, resultName, false)
}

func (d *ActionsDAG) addFunction(
	fn expression.Resolver,
	children []*Node,
	resultName string,
	canReplace bool,
) (*Node, error) {
	node := &Node{
		Type:                 ActionFunction,
		Resolver:             fn,
		Children:             children,
		AllowConstantFolding: true,
	}

	allConst := true
	args := make([]sql.TypedColumn, len(children))
	for i, child := range children {
		node.AllowConstantFolding = node.AllowConstantFolding && child.AllowConstantFolding

		args[i] = sql.TypedColumn{
			Column: child.Column,
			Type:   child.ResultType,
			Name:   child.ResultName,
		}

		if child.Column == nil || !sql.IsConst(child.Column) {
			allConst = false
		}
	}

	function, err := fn.Build(args)
	if err != nil {
		return nil, err
	}
	node.Function = function
	node.ResultType = function.ResultType()
	node.Executable = function.Prepare(args)

	// If all arguments are constants and the function allows it, execute
	// now. When expressions get compiled, the compiled version may land in
	// the shared cache, so non deterministic functions must not be
	// unfolded there.
	if allConst && function.SuitableForConstantFolding() &&
		(!d.settings.CompileExpressions || function.Deterministic()) {
		rows := 0
		if len(args) > 0 {
			rows = args[0].Column.Size()
		}

		col, err := node.Executable.Execute(args, node.ResultType, rows, true)
		if err != nil {
			return nil, err
		}

		// If the result is not constant, consider it unknown.
		if sql.IsConst(col) {
			// Literal columns are added with size 1, but with no argument
			// columns the result has size 0. Normalize to 1.
			if col.Empty() {
				col = col.Resize(1)
			}
			node.Column = col
		}
	}

	// Functions like ignore return a constant result even over non
	// constant arguments. The constant can be attached, but folding it
	// further would lose the dependency on the arguments.
	if node.Column == nil && function.SuitableForConstantFolding() {
		if col := function.AlwaysConstantResult(args); col != nil {
			node.Column = col
			node.AllowConstantFolding = false
		}
	}

	if resultName == "" {
		var sb strings.Builder
		sb.WriteString(fn.Name())
		sb.WriteByte('(')
		for i, child := range children {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(child.ResultName)
		}
		sb.WriteByte(')')
		resultName = sb.String()
	}
	node.ResultName = resultName

	return d.addNode(node, canReplace)
}

// RequiredColumns returns the names and types of the inputs in insertion
// order.
func (d *ActionsDAG) RequiredColumns() sql.Schema {
	schema := make(sql.Schema, len(d.inputs))
	for i, input := range d.inputs {
		schema[i] = sql.Field{Name: input.ResultName, Type: input.ResultType}
	}
	return schema
}

// ResultColumns returns the output columns in index order. Columns are nil
// for results not known at planning time.
func (d *ActionsDAG) ResultColumns() []sql.TypedColumn {
	nodes := d.index.Nodes()
	result := make([]sql.TypedColumn, len(nodes))
	for i, node := range nodes {
		result[i] = sql.TypedColumn{
			Column: node.Column,
			Type:   node.ResultType,
			Name:   node.ResultName,
		}
	}
	return result
}

// Schema returns the names and types of the output in index order.
func (d *ActionsDAG) Schema() sql.Schema {
	nodes := d.index.Nodes()
	schema := make(sql.Schema, len(nodes))
	for i, node := range nodes {
		schema[i] = sql.Field{Name: node.ResultName, Type: node.ResultType}
	}
	return schema
}

// Names returns the output names in index order.
func (d *ActionsDAG) Names() []string {
	nodes := d.index.Nodes()
	names := make([]string, len(nodes))
	for i, node := range nodes {
		names[i] = node.ResultName
	}
	return names
}

// Nodes returns every node in insertion order.
func (d *ActionsDAG) Nodes() []*Node {
	nodes := make([]*Node, len(d.nodes))
	copy(nodes, d.nodes)
	return nodes
}

// Inputs returns the input nodes in insertion order.
func (d *ActionsDAG) Inputs() []*Node {
	inputs := make([]*Node, len(d.inputs))
	copy(inputs, d.inputs)
	return inputs
}

// Outputs returns the index entries in order.
func (d *ActionsDAG) Outputs() []*Node {
	return d.index.Nodes()
}

// Settings returns the DAG's settings.
func (d *ActionsDAG) Settings() Settings {
	return d.settings
}

// ProjectInput marks the DAG's inputs as exactly consumed by the current
// output.
func (d *ActionsDAG) ProjectInput() {
	d.settings.ProjectInput = true
}

// HasArrayJoin reports whether the DAG contains an array join action.
func (d *ActionsDAG) HasArrayJoin() bool {
	for _, node := range d.nodes {
		if node.Type == ActionArrayJoin {
			return true
		}
	}
	return false
}

// HasStatefulFunctions reports whether the DAG applies a stateful
// function.
func (d *ActionsDAG) HasStatefulFunctions() bool {
	for _, node := range d.nodes {
		if node.Type == ActionFunction && node.Function.Stateful() {
			return true
		}
	}
	return false
}

// Empty reports whether the DAG consists of inputs only.
func (d *ActionsDAG) Empty() bool {
	for _, node := range d.nodes {
		if node.Type != ActionInput {
			return false
		}
	}
	return true
}

func (d *ActionsDAG) cloneEmpty() *ActionsDAG {
	return &ActionsDAG{
		index:    NewIndex(),
		settings: d.settings,
		cache:    d.cache,
	}
}

// Clone returns a deep copy of the DAG. Node columns, types and functions
// are shared; the graph structure is copied.
func (d *ActionsDAG) Clone() *ActionsDAG {
	clone := d.cloneEmpty()

	copies := make(map[*Node]*Node, len(d.nodes))
	for _, node := range d.nodes {
		cp := *node
		cp.Children = make([]*Node, len(node.Children))
		for i, child := range node.Children {
			cp.Children[i] = copies[child]
		}

		copies[node] = &cp
		clone.nodes = append(clone.nodes, &cp)
	}

	for _, node := range d.index.Nodes() {
		clone.index.Insert(copies[node])
	}

	for _, input := range d.inputs {
		clone.inputs = append(clone.inputs, copies[input])
	}

	return clone
}
