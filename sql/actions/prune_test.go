package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-expression-dag.v0/sql"
	"gopkg.in/src-d/go-expression-dag.v0/sql/actions"
	"gopkg.in/src-d/go-expression-dag.v0/sql/expression"
)

func TestRemoveUnusedActionsUnknownColumn(t *testing.T) {
	require := require.New(t)

	d := actions.NewFromSchema(sql.Schema{{Name: "x", Type: sql.Integer}})
	err := d.RemoveUnusedActions("nope")
	require.True(actions.ErrUnknownColumn.Is(err))
}

func TestRemoveUnusedActionsPrunes(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	d := actions.NewFromSchema(sql.Schema{
		{Name: "x", Type: sql.Integer},
		{Name: "unused", Type: sql.String},
	})
	_, err := d.AddFunction(ctx, expression.NewPlus(), []string{"x", "x"}, "twice")
	require.NoError(err)

	require.NoError(d.RemoveUnusedActions("twice"))

	require.Equal([]string{"twice"}, d.Names())
	require.Equal(sql.Schema{{Name: "x", Type: sql.Integer}}, d.RequiredColumns())

	for _, node := range d.Nodes() {
		require.NotEqual("unused", node.ResultName)
	}
}

func TestRemoveUnusedActionsKeepsArrayJoin(t *testing.T) {
	require := require.New(t)

	d := actions.NewFromSchema(sql.Schema{
		{Name: "arr", Type: sql.CreateArray(sql.Integer)},
	})
	_, err := d.AddArrayJoin("arr", "e")
	require.NoError(err)

	// The array join is not in the required output but survives: it
	// changes the row count.
	require.NoError(d.RemoveUnusedActions("arr"))

	require.True(d.HasArrayJoin())
	require.Equal([]string{"arr"}, d.Names())
}

func TestRemoveUnusedActionsIdempotent(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	d := actions.NewFromSchema(sql.Schema{
		{Name: "x", Type: sql.Integer},
		{Name: "y", Type: sql.Integer},
	})
	_, err := d.AddFunction(ctx, expression.NewPlus(), []string{"x", "y"}, "sum")
	require.NoError(err)

	require.NoError(d.RemoveUnusedActions("sum"))
	dump := d.DumpDAG()

	require.NoError(d.RemoveUnusedActions())
	require.Equal(dump, d.DumpDAG())
}

func TestRemoveUnusedActionsPreservesOrder(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	d := actions.NewFromSchema(sql.Schema{
		{Name: "a", Type: sql.Integer},
		{Name: "b", Type: sql.Integer},
		{Name: "c", Type: sql.Integer},
	})
	_, err := d.AddFunction(ctx, expression.NewPlus(), []string{"a", "c"}, "sum")
	require.NoError(err)

	require.NoError(d.RemoveUnusedActions("sum"))

	var names []string
	for _, node := range d.Nodes() {
		names = append(names, node.ResultName)
	}
	require.Equal([]string{"a", "c", "sum"}, names)
}

func TestTryRestoreColumn(t *testing.T) {
	require := require.New(t)

	d := actions.NewFromSchema(sql.Schema{{Name: "x", Type: sql.Integer}})
	_, err := d.AddAlias("x", "y")
	require.NoError(err)

	require.NoError(d.RemoveUnusedActions("y"))
	require.Equal([]string{"y"}, d.Names())

	// x is still a node, just not an output anymore.
	require.True(d.TryRestoreColumn("x"))
	require.Equal([]string{"y", "x"}, d.Names())

	// Already present names restore trivially.
	require.True(d.TryRestoreColumn("y"))

	require.False(d.TryRestoreColumn("nope"))
}

func TestRemoveUnusedInput(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	d := actions.NewFromSchema(sql.Schema{
		{Name: "x", Type: sql.Integer},
		{Name: "y", Type: sql.Integer},
	})
	_, err := d.AddFunction(ctx, expression.NewPlus(), []string{"x", "x"}, "sum")
	require.NoError(err)

	// y has no dependents and goes away completely.
	require.NoError(d.RemoveUnusedInput("y"))
	require.Equal(sql.Schema{{Name: "x", Type: sql.Integer}}, d.RequiredColumns())
	require.False(d.TryRestoreColumn("y"))

	// x is still referenced by the function.
	err = d.RemoveUnusedInput("x")
	require.True(actions.ErrInputHasDependents.Is(err))

	err = d.RemoveUnusedInput("nope")
	require.True(actions.ErrInputNotFound.Is(err))
}

func TestProject(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	d := actions.NewFromSchema(sql.Schema{
		{Name: "x", Type: sql.Integer},
		{Name: "y", Type: sql.Integer},
		{Name: "unused", Type: sql.String},
	})
	_, err := d.AddFunction(ctx, expression.NewPlus(), []string{"x", "y"}, "sum")
	require.NoError(err)

	require.NoError(d.Project([]actions.NameWithAlias{
		{Name: "sum", Alias: "total"},
		{Name: "x", Alias: "x"},
	}))

	require.Equal([]string{"total", "x"}, d.Names())
	require.True(d.Settings().ProjectInput)
	require.True(d.Settings().ProjectedOutput)

	// Inputs the projection does not reach are gone.
	require.Equal(sql.Schema{
		{Name: "x", Type: sql.Integer},
		{Name: "y", Type: sql.Integer},
	}, d.RequiredColumns())
}
