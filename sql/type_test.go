package sql_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-expression-dag.v0/sql"
)

func TestTypeByName(t *testing.T) {
	require := require.New(t)

	typ, err := sql.TypeByName("integer")
	require.NoError(err)
	require.Equal(sql.Integer, typ)

	typ, err = sql.TypeByName("array(string)")
	require.NoError(err)
	require.Equal("array(string)", typ.Name())

	typ, err = sql.TypeByName("array(array(biginteger))")
	require.NoError(err)
	require.Equal("array(array(biginteger))", typ.Name())

	_, err = sql.TypeByName("uuid")
	require.True(sql.ErrTypeNotFound.Is(err))
}

func TestTypesEqual(t *testing.T) {
	require := require.New(t)

	require.True(sql.TypesEqual(sql.Integer, sql.Integer))
	require.False(sql.TypesEqual(sql.Integer, sql.BigInteger))
	require.True(sql.TypesEqual(
		sql.CreateArray(sql.String),
		sql.CreateArray(sql.String),
	))
	require.False(sql.TypesEqual(
		sql.CreateArray(sql.String),
		sql.CreateArray(sql.Integer),
	))
	require.True(sql.TypesEqual(nil, nil))
	require.False(sql.TypesEqual(sql.Integer, nil))
}

func TestNumberPromotion(t *testing.T) {
	require := require.New(t)

	typ, err := sql.NumberPromotion(sql.Integer, sql.Integer)
	require.NoError(err)
	require.Equal(sql.Integer, typ)

	typ, err = sql.NumberPromotion(sql.Integer, sql.BigInteger)
	require.NoError(err)
	require.Equal(sql.BigInteger, typ)

	typ, err = sql.NumberPromotion(sql.BigInteger, sql.Float64)
	require.NoError(err)
	require.Equal(sql.Float64, typ)

	_, err = sql.NumberPromotion(sql.Integer, sql.String)
	require.True(sql.ErrInvalidType.Is(err))
}

func TestTypeConvert(t *testing.T) {
	testCases := []struct {
		typ      sql.Type
		value    interface{}
		expected interface{}
	}{
		{sql.Integer, int64(7), int32(7)},
		{sql.Integer, "7", int32(7)},
		{sql.BigInteger, int32(7), int64(7)},
		{sql.Float64, int32(2), float64(2)},
		{sql.String, 42, "42"},
		{sql.Boolean, 1, true},
	}

	for _, tt := range testCases {
		t.Run(tt.typ.Name(), func(t *testing.T) {
			require := require.New(t)
			v, err := tt.typ.Convert(tt.value)
			require.NoError(err)
			require.Equal(tt.expected, v)
		})
	}

	require := require.New(t)
	_, err := sql.Integer.Convert("not a number")
	require.True(sql.ErrInvalidType.Is(err))
}

func TestArrayTypeConvert(t *testing.T) {
	require := require.New(t)

	arr := sql.CreateArray(sql.Integer)
	v, err := arr.Convert([]interface{}{int64(1), "2", int32(3)})
	require.NoError(err)
	require.Equal([]interface{}{int32(1), int32(2), int32(3)}, v)

	_, err = arr.Convert("nope")
	require.True(sql.ErrNotArray.Is(err))
}

func TestArrayTypeCompare(t *testing.T) {
	require := require.New(t)

	arr := sql.CreateArray(sql.Integer)
	require.Equal(0, arr.Compare(
		[]interface{}{int32(1), int32(2)},
		[]interface{}{int32(1), int32(2)},
	))
	require.Equal(-1, arr.Compare(
		[]interface{}{int32(1)},
		[]interface{}{int32(1), int32(2)},
	))
	require.Equal(1, arr.Compare(
		[]interface{}{int32(3)},
		[]interface{}{int32(2)},
	))
}
