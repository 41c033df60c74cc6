package sql

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Type represents a column data type. A type can check and convert values,
// compare two values of the type and report a stable name. The name round
// trips through TypeByName, which is the lookup the cast calling convention
// relies on.
type Type interface {
	Name() string
	InternalType() reflect.Kind
	Check(interface{}) bool
	Convert(interface{}) (interface{}, error)
	Compare(interface{}, interface{}) int
}

// TypesEqual reports whether two types are structurally equal. Type names
// are unique, including nested array element types, so name equality is
// type equality.
func TypesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name() == b.Name()
}

// IsNumber reports whether the type holds numeric values.
func IsNumber(t Type) bool {
	switch t.InternalType() {
	case reflect.Int32, reflect.Int64, reflect.Float64:
		return true
	}
	return false
}

// NumberPromotion returns the type arithmetic over the two operand types
// produces: Float64 if either side is floating point, otherwise the widest
// integer of the two.
func NumberPromotion(a, b Type) (Type, error) {
	if !IsNumber(a) {
		return nil, ErrInvalidType.New(a.Name())
	}
	if !IsNumber(b) {
		return nil, ErrInvalidType.New(b.Name())
	}

	if a.InternalType() == reflect.Float64 || b.InternalType() == reflect.Float64 {
		return Float64, nil
	}
	if a.InternalType() == reflect.Int64 || b.InternalType() == reflect.Int64 {
		return BigInteger, nil
	}
	return Integer, nil
}

// TypeByName returns the type whose Name equals the given name. Array types
// are spelled array(elem) and resolve recursively.
func TypeByName(name string) (Type, error) {
	trimmed := strings.TrimSpace(name)
	if strings.HasPrefix(trimmed, "array(") && strings.HasSuffix(trimmed, ")") {
		nested, err := TypeByName(trimmed[len("array(") : len(trimmed)-1])
		if err != nil {
			return nil, err
		}
		return CreateArray(nested), nil
	}

	switch trimmed {
	case "integer":
		return Integer, nil
	case "biginteger":
		return BigInteger, nil
	case "float64":
		return Float64, nil
	case "string":
		return String, nil
	case "boolean":
		return Boolean, nil
	}

	return nil, ErrTypeNotFound.New(name)
}

// Integer is a 32 bit integer type.
var Integer Type = integerType{}

type integerType struct{}

func (t integerType) Name() string {
	return "integer"
}

func (t integerType) InternalType() reflect.Kind {
	return reflect.Int32
}

func (t integerType) Check(v interface{}) bool {
	_, ok := v.(int32)
	return ok
}

func (t integerType) Convert(v interface{}) (interface{}, error) {
	i, err := cast.ToInt32E(v)
	if err != nil {
		return nil, ErrInvalidType.New(fmt.Sprintf("%T", v))
	}
	return i, nil
}

func (t integerType) Compare(a interface{}, b interface{}) int {
	av := a.(int32)
	bv := b.(int32)
	if av < bv {
		return -1
	} else if av > bv {
		return 1
	}
	return 0
}

// BigInteger is a 64 bit integer type.
var BigInteger Type = bigIntegerType{}

type bigIntegerType struct{}

func (t bigIntegerType) Name() string {
	return "biginteger"
}

func (t bigIntegerType) InternalType() reflect.Kind {
	return reflect.Int64
}

func (t bigIntegerType) Check(v interface{}) bool {
	_, ok := v.(int64)
	return ok
}

func (t bigIntegerType) Convert(v interface{}) (interface{}, error) {
	i, err := cast.ToInt64E(v)
	if err != nil {
		return nil, ErrInvalidType.New(fmt.Sprintf("%T", v))
	}
	return i, nil
}

func (t bigIntegerType) Compare(a interface{}, b interface{}) int {
	av := a.(int64)
	bv := b.(int64)
	if av < bv {
		return -1
	} else if av > bv {
		return 1
	}
	return 0
}

// Float64 is a 64 bit floating point type.
var Float64 Type = float64Type{}

type float64Type struct{}

func (t float64Type) Name() string {
	return "float64"
}

func (t float64Type) InternalType() reflect.Kind {
	return reflect.Float64
}

func (t float64Type) Check(v interface{}) bool {
	_, ok := v.(float64)
	return ok
}

func (t float64Type) Convert(v interface{}) (interface{}, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, ErrInvalidType.New(fmt.Sprintf("%T", v))
	}
	return f, nil
}

func (t float64Type) Compare(a interface{}, b interface{}) int {
	av := a.(float64)
	bv := b.(float64)
	if av < bv {
		return -1
	} else if av > bv {
		return 1
	}
	return 0
}

// String is a string type.
var String Type = stringType{}

type stringType struct{}

func (t stringType) Name() string {
	return "string"
}

func (t stringType) InternalType() reflect.Kind {
	return reflect.String
}

func (t stringType) Check(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

func (t stringType) Convert(v interface{}) (interface{}, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, ErrInvalidType.New(fmt.Sprintf("%T", v))
	}
	return s, nil
}

func (t stringType) Compare(a interface{}, b interface{}) int {
	av := a.(string)
	bv := b.(string)
	return strings.Compare(av, bv)
}

// Boolean is a boolean type.
var Boolean Type = booleanType{}

type booleanType struct{}

func (t booleanType) Name() string {
	return "boolean"
}

func (t booleanType) InternalType() reflect.Kind {
	return reflect.Bool
}

func (t booleanType) Check(v interface{}) bool {
	_, ok := v.(bool)
	return ok
}

func (t booleanType) Convert(v interface{}) (interface{}, error) {
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil, ErrInvalidType.New(fmt.Sprintf("%T", v))
	}
	return b, nil
}

func (t booleanType) Compare(a interface{}, b interface{}) int {
	av := a.(bool)
	bv := b.(bool)
	if av == bv {
		return 0
	} else if !av {
		return -1
	}
	return 1
}
