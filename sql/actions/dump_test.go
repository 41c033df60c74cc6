package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-expression-dag.v0/sql"
	"gopkg.in/src-d/go-expression-dag.v0/sql/actions"
	"gopkg.in/src-d/go-expression-dag.v0/sql/expression"
)

func TestDumpNames(t *testing.T) {
	require := require.New(t)

	d := actions.NewFromSchema(sql.Schema{
		{Name: "x", Type: sql.Integer},
		{Name: "y", Type: sql.String},
	})
	require.Equal("x, y", d.DumpNames())
}

func TestDumpDAG(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	d := actions.NewFromSchema(sql.Schema{{Name: "x", Type: sql.Integer}})
	c := constCol(sql.Integer, 2)
	c.Name = "c"
	_, err := d.AddColumn(c)
	require.NoError(err)
	_, err = d.AddFunction(ctx, expression.NewPlus(), []string{"x", "c"}, "")
	require.NoError(err)

	expected := "0 : INPUT () (no column) integer x\n" +
		"1 : COLUMN () Const(integer) integer c\n" +
		"2 : FUNCTION (0, 1) (no column) integer plus(x, c) [plus]\n" +
		"Index: 0 1 2\n"

	require.Equal(expected, d.DumpDAG())

	// Stable across calls for the same DAG.
	require.Equal(d.DumpDAG(), d.DumpDAG())
}
