package sql_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-expression-dag.v0/sql"
)

func TestConstColumn(t *testing.T) {
	require := require.New(t)

	col, err := sql.NewConstColumn(sql.Integer, 3, int64(42))
	require.NoError(err)
	require.Equal(3, col.Size())
	require.False(col.Empty())
	require.Equal(int32(42), col.Value())
	require.Equal(int32(42), col.Get(0))
	require.Equal(int32(42), col.Get(2))
	require.Equal("Const(integer)", col.Name())
	require.True(sql.IsConst(col))

	resized := col.Resize(5)
	require.Equal(5, resized.Size())
	require.Equal(int32(42), resized.Get(4))
	require.Equal(3, col.Size())

	_, err = sql.NewConstColumn(sql.Integer, 1, "nope")
	require.True(sql.ErrInvalidType.Is(err))
}

func TestValueColumn(t *testing.T) {
	require := require.New(t)

	col := sql.MustNewValueColumn(sql.String, "a", "b", "c")
	require.Equal(3, col.Size())
	require.Equal("b", col.Get(1))
	require.Equal("string", col.Name())
	require.False(sql.IsConst(col))

	resized := col.Resize(2)
	require.Equal(2, resized.Size())
	require.Equal("a", resized.Get(0))
}

func TestMaterialized(t *testing.T) {
	require := require.New(t)

	col := sql.MustNewConstColumn(sql.Integer, 2, 7)
	full := sql.Materialized(col)
	require.False(sql.IsConst(full))
	require.Equal(2, full.Size())
	require.Equal(int32(7), full.Get(0))
	require.Equal(int32(7), full.Get(1))

	values := sql.MustNewValueColumn(sql.Integer, 1, 2)
	require.Equal(sql.Column(values), sql.Materialized(values))
}
