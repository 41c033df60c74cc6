package sql

import (
	"fmt"
	"reflect"
)

// ArrayType is the type of array columns. Its element type is reachable
// through Nested.
type ArrayType interface {
	Type
	Nested() Type
}

// CreateArray returns a new array type of the given element type.
func CreateArray(nested Type) ArrayType {
	return arrayType{nested}
}

type arrayType struct {
	nested Type
}

func (t arrayType) Name() string {
	return fmt.Sprintf("array(%s)", t.nested.Name())
}

func (t arrayType) InternalType() reflect.Kind {
	return reflect.Slice
}

func (t arrayType) Nested() Type {
	return t.nested
}

func (t arrayType) Check(v interface{}) bool {
	vs, ok := v.([]interface{})
	if !ok {
		return false
	}
	for _, e := range vs {
		if !t.nested.Check(e) {
			return false
		}
	}
	return true
}

func (t arrayType) Convert(v interface{}) (interface{}, error) {
	vs, ok := v.([]interface{})
	if !ok {
		return nil, ErrNotArray.New(v)
	}

	result := make([]interface{}, len(vs))
	for i, e := range vs {
		converted, err := t.nested.Convert(e)
		if err != nil {
			return nil, err
		}
		result[i] = converted
	}
	return result, nil
}

func (t arrayType) Compare(a interface{}, b interface{}) int {
	left := a.([]interface{})
	right := b.([]interface{})

	if len(left) < len(right) {
		return -1
	} else if len(left) > len(right) {
		return 1
	}

	for i := range left {
		if cmp := t.nested.Compare(left[i], right[i]); cmp != 0 {
			return cmp
		}
	}
	return 0
}
