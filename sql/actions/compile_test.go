package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-expression-dag.v0/sql"
	"gopkg.in/src-d/go-expression-dag.v0/sql/actions"
	"gopkg.in/src-d/go-expression-dag.v0/sql/expression"
)

func compileCtx(cache sql.KeyValueCache) *sql.Context {
	settings := sql.DefaultSettings()
	settings.CompileExpressions = true
	settings.MinCountToCompileExpression = 2
	return sql.NewContext(
		sql.NewEmptyContext(),
		sql.WithSettings(settings),
		sql.WithCompiledExpressionCache(cache),
	)
}

func sumDAG(t *testing.T, ctx *sql.Context) *actions.ActionsDAG {
	require := require.New(t)

	d := actions.NewFromSchema(sql.Schema{
		{Name: "x", Type: sql.Integer},
		{Name: "y", Type: sql.Integer},
	})
	_, err := d.AddFunction(ctx, expression.NewPlus(), []string{"x", "y"}, "sum")
	require.NoError(err)
	return d
}

func TestCompileExpressionsSharesPrepared(t *testing.T) {
	require := require.New(t)

	cache := sql.NewLRUCache(16)
	ctx := compileCtx(cache)

	// First sighting only counts.
	first := sumDAG(t, ctx)
	first.CompileExpressions()

	node, err := first.GetNode("sum")
	require.NoError(err)
	key, err := actions.Fingerprint(node)
	require.NoError(err)

	v, err := cache.Get(key)
	require.NoError(err)
	require.Equal(uint64(1), v)

	// Second sighting crosses the threshold and publishes the prepared
	// function.
	second := sumDAG(t, ctx)
	second.CompileExpressions()

	v, err = cache.Get(key)
	require.NoError(err)
	published, ok := v.(expression.Executable)
	require.True(ok)

	// Later DAGs with the same shape pick it up.
	third := sumDAG(t, ctx)
	third.CompileExpressions()

	node, err = third.GetNode("sum")
	require.NoError(err)
	require.Equal(published, node.Executable)

	// The shared prepared function still computes.
	out, err := actions.NewExpressionActions(third).Execute(ctx, []sql.TypedColumn{
		{Name: "x", Type: sql.Integer, Column: sql.MustNewValueColumn(sql.Integer, 1)},
		{Name: "y", Type: sql.Integer, Column: sql.MustNewValueColumn(sql.Integer, 2)},
	})
	require.NoError(err)
	require.Equal(int32(3), out[2].Column.Get(0))
}

func TestCompileExpressionsDisabled(t *testing.T) {
	require := require.New(t)

	// No cache, no setting: a no-op.
	ctx := sql.NewEmptyContext()
	d := sumDAG(t, ctx)
	dump := d.DumpDAG()

	d.CompileExpressions()
	require.Equal(dump, d.DumpDAG())
}

func TestFingerprintStable(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	a := sumDAG(t, ctx)
	b := sumDAG(t, ctx)

	nodeA, err := a.GetNode("sum")
	require.NoError(err)
	nodeB, err := b.GetNode("sum")
	require.NoError(err)

	keyA, err := actions.Fingerprint(nodeA)
	require.NoError(err)
	keyB, err := actions.Fingerprint(nodeB)
	require.NoError(err)
	require.Equal(keyA, keyB)

	// A different shape hashes differently.
	c := actions.NewFromSchema(sql.Schema{
		{Name: "x", Type: sql.Integer},
		{Name: "y", Type: sql.Integer},
	})
	_, err = c.AddFunction(ctx, expression.NewMultiply(), []string{"x", "y"}, "sum")
	require.NoError(err)
	nodeC, err := c.GetNode("sum")
	require.NoError(err)

	keyC, err := actions.Fingerprint(nodeC)
	require.NoError(err)
	require.NotEqual(keyA, keyC)
}
