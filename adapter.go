package jsonval

import (
	"fmt"
	"math"
	"time"
)

// FromAny converts a native Go value into a typed Value.
//
// This exists as an adapter layer for user input and legacy APIs. Integer
// input maps to the fixed-width kinds (int32 to Int32, every other integer
// to Int64); floats map to Number, time.Time to Date, []byte to Bytes and
// map[string]any to Object.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Int64(int64(x)), nil
	case int8:
		return Int64(int64(x)), nil
	case int16:
		return Int64(int64(x)), nil
	case int32:
		return Int32(x), nil
	case int64:
		return Int64(x), nil
	case uint:
		return Int64(int64(x)), nil
	case uint8:
		return Int64(int64(x)), nil
	case uint16:
		return Int64(int64(x)), nil
	case uint32:
		return Int64(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			// Avoid silently truncating large values.
			return Value{}, fmt.Errorf("uint64 out of range: %d", x)
		}
		return Int64(int64(x)), nil
	case time.Time:
		return Date(x), nil
	case []byte:
		return Bytes(x), nil
	case []Value:
		return Array(x), nil
	case []any:
		arr := make([]Value, len(x))
		for i := range x {
			vv, err := FromAny(x[i])
			if err != nil {
				return Value{}, err
			}
			arr[i] = vv
		}
		return Array(arr), nil
	case []string:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = String(x[i])
		}
		return Array(arr), nil
	case []float64:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Number(x[i])
		}
		return Array(arr), nil
	case []int:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Int64(int64(x[i]))
		}
		return Array(arr), nil
	case Document:
		return Object(x), nil
	case map[string]any:
		d, err := DocumentFromAny(x)
		if err != nil {
			return Value{}, err
		}
		return Object(d), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}

// ToAny converts a typed Value back into a native Go value: strings,
// float64, bool, nil, []any, map[string]any, []byte, int32, int64 and
// time.Time. Undefined maps to nil.
func ToAny(v Value) any {
	switch v.Kind {
	case KindString:
		return v.S
	case KindNumber:
		return v.F64
	case KindObject:
		return DocumentToAny(v.O)
	case KindArray:
		arr := make([]any, len(v.A))
		for i := range v.A {
			arr[i] = ToAny(v.A[i])
		}
		return arr
	case KindTrue:
		return true
	case KindFalse:
		return false
	case KindBytes:
		return v.B
	case KindInt32:
		return v.I32
	case KindInt64:
		return v.I64
	case KindDate:
		return v.T
	default:
		return nil
	}
}

// DocumentFromAny converts a legacy map[string]any document to a typed
// Document.
func DocumentFromAny(m map[string]any) (Document, error) {
	d := make(Document, len(m))
	for k, v := range m {
		vv, err := FromAny(v)
		if err != nil {
			return nil, err
		}
		d[k] = vv
	}
	return d, nil
}

// DocumentToAny converts a typed Document to a map[string]any.
func DocumentToAny(d Document) map[string]any {
	if d == nil {
		return nil
	}
	m := make(map[string]any, len(d))
	for k, v := range d {
		m[k] = ToAny(v)
	}
	return m
}
