package sql

import "fmt"

// Column is an immutable typed column of values. Constant columns hold a
// single value repeated over their row count; value columns hold one value
// per row.
type Column interface {
	// Type returns the column's data type.
	Type() Type
	// Size returns the number of rows.
	Size() int
	// Empty reports whether the column has no rows.
	Empty() bool
	// Get returns the value at the given row.
	Get(i int) interface{}
	// Resize returns a copy of the column with the given row count. Value
	// columns are truncated or padded with nulls.
	Resize(n int) Column
	// Name returns a display name for diagnostics.
	Name() string
}

// IsConst reports whether the column is a constant column.
func IsConst(c Column) bool {
	_, ok := c.(*ConstColumn)
	return ok
}

// ConstColumn is a column holding a single value repeated over its row
// count.
type ConstColumn struct {
	typ   Type
	value interface{}
	rows  int
}

// NewConstColumn returns a constant column of the given type, row count and
// value. The value is converted to the type.
func NewConstColumn(t Type, rows int, v interface{}) (*ConstColumn, error) {
	converted, err := t.Convert(v)
	if err != nil {
		return nil, err
	}
	return &ConstColumn{typ: t, value: converted, rows: rows}, nil
}

// MustNewConstColumn is like NewConstColumn but panics if the value cannot
// be converted. For use with literals.
func MustNewConstColumn(t Type, rows int, v interface{}) *ConstColumn {
	c, err := NewConstColumn(t, rows, v)
	if err != nil {
		panic(err)
	}
	return c
}

// Value returns the constant value.
func (c *ConstColumn) Value() interface{} { return c.value }

func (c *ConstColumn) Type() Type { return c.typ }

func (c *ConstColumn) Size() int { return c.rows }

func (c *ConstColumn) Empty() bool { return c.rows == 0 }

func (c *ConstColumn) Get(i int) interface{} { return c.value }

func (c *ConstColumn) Resize(n int) Column {
	return &ConstColumn{typ: c.typ, value: c.value, rows: n}
}

func (c *ConstColumn) Name() string {
	return fmt.Sprintf("Const(%s)", c.typ.Name())
}

// ValueColumn is a column holding one value per row.
type ValueColumn struct {
	typ    Type
	values []interface{}
}

// NewValueColumn returns a column of the given type over the given values.
// Each value is converted to the type.
func NewValueColumn(t Type, values []interface{}) (*ValueColumn, error) {
	converted := make([]interface{}, len(values))
	for i, v := range values {
		cv, err := t.Convert(v)
		if err != nil {
			return nil, err
		}
		converted[i] = cv
	}
	return &ValueColumn{typ: t, values: converted}, nil
}

// MustNewValueColumn is like NewValueColumn but panics if a value cannot be
// converted. For use with literals.
func MustNewValueColumn(t Type, values ...interface{}) *ValueColumn {
	c, err := NewValueColumn(t, values)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *ValueColumn) Type() Type { return c.typ }

func (c *ValueColumn) Size() int { return len(c.values) }

func (c *ValueColumn) Empty() bool { return len(c.values) == 0 }

func (c *ValueColumn) Get(i int) interface{} { return c.values[i] }

func (c *ValueColumn) Resize(n int) Column {
	values := make([]interface{}, n)
	copy(values, c.values)
	return &ValueColumn{typ: c.typ, values: values}
}

func (c *ValueColumn) Name() string { return c.typ.Name() }

// Materialized expands a constant column into a value column of the same
// size. Non-constant columns are returned unchanged.
func Materialized(c Column) Column {
	cc, ok := c.(*ConstColumn)
	if !ok {
		return c
	}

	values := make([]interface{}, cc.rows)
	for i := range values {
		values[i] = cc.value
	}
	return &ValueColumn{typ: cc.typ, values: values}
}
