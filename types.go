package jsonval

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the payload interpretation active in a Value.
//
// The declared order is significant: it is the primary sort key when
// comparing values of different kinds. KindUndefined is the zero value, so
// a zero Value is Undefined. KindFalse is declared before KindTrue so that
// tag order yields false < true.
type Kind uint8

const (
	// KindUndefined represents "no value". It is the default state of a
	// freshly constructed Value and the reader's end-of-sequence sentinel.
	KindUndefined Kind = iota
	// KindString represents a string value.
	KindString
	// KindNumber represents a double-precision float value.
	KindNumber
	// KindObject represents an object (key/value document) value.
	KindObject
	// KindArray represents an array value.
	KindArray
	// KindFalse represents the boolean false value.
	KindFalse
	// KindTrue represents the boolean true value.
	KindTrue
	// KindNull represents the null value.
	KindNull
	// KindBytes represents a raw byte-sequence value.
	KindBytes
	// KindInt32 represents a 32-bit integer value.
	KindInt32
	// KindInt64 represents a 64-bit integer value.
	KindInt64
	// KindDate represents a time instant value.
	KindDate
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "Undefined"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	case KindFalse:
		return "False"
	case KindTrue:
		return "True"
	case KindNull:
		return "Null"
	case KindBytes:
		return "Bytes"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindDate:
		return "Date"
	default:
		return "Unknown"
	}
}

// Value is a tagged document value. Exactly one payload field is active,
// selected by Kind; the remaining fields hold their zero values.
//
// A Value owns its payload. Plain assignment is a shallow copy (arrays,
// bytes and objects share storage); use Clone for an independent deep copy.
type Value struct {
	Kind Kind
	S    string
	F64  float64
	I32  int32
	I64  int64
	T    time.Time
	B    []byte
	A    []Value
	O    Document
}

// Undefined returns the Undefined Value. Identical to a zero Value.
func Undefined() Value { return Value{} }

// String returns a string Value.
func String(s string) Value { return Value{Kind: KindString, S: s} }

// Number returns a float64 Value.
func Number(f float64) Value { return Value{Kind: KindNumber, F64: f} }

// Bool returns a boolean Value. True and false are distinct kinds.
func Bool(b bool) Value {
	if b {
		return Value{Kind: KindTrue}
	}
	return Value{Kind: KindFalse}
}

// Null returns the null Value.
func Null() Value { return Value{Kind: KindNull} }

// Array returns an array Value wrapping elems. The caller yields ownership
// of the slice.
func Array(elems []Value) Value { return Value{Kind: KindArray, A: elems} }

// MakeArray returns an array Value of n Undefined elements.
func MakeArray(n int) Value { return Value{Kind: KindArray, A: make([]Value, n)} }

// Object returns an object Value wrapping d. The caller yields ownership
// of the document.
func Object(d Document) Value { return Value{Kind: KindObject, O: d} }

// Bytes returns a byte-sequence Value holding a copy of b, so the Value
// never aliases caller-owned storage.
func Bytes(b []byte) Value {
	data := make([]byte, len(b))
	copy(data, b)
	return Value{Kind: KindBytes, B: data}
}

// Int32 returns a 32-bit integer Value.
func Int32(i int32) Value { return Value{Kind: KindInt32, I32: i} }

// Int64 returns a 64-bit integer Value.
func Int64(i int64) Value { return Value{Kind: KindInt64, I64: i} }

// Date returns a time instant Value.
func Date(t time.Time) Value { return Value{Kind: KindDate, T: t} }

// IsDefined reports whether the Value holds anything at all. It is false
// only for Undefined; parsing loops use it to detect the reader's
// end-of-sequence sentinel.
func (v Value) IsDefined() bool { return v.Kind != KindUndefined }

// IsNull reports whether the Value is null.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// AsString returns the string payload if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.S, true
}

// AsNumber returns the float64 payload if Kind is KindNumber.
func (v Value) AsNumber() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.F64, true
}

// AsBool returns the boolean payload if Kind is KindTrue or KindFalse.
func (v Value) AsBool() (bool, bool) {
	switch v.Kind {
	case KindTrue:
		return true, true
	case KindFalse:
		return false, true
	default:
		return false, false
	}
}

// AsArray returns the element slice if Kind is KindArray.
func (v Value) AsArray() ([]Value, bool) {
	if v.Kind != KindArray {
		return nil, false
	}
	return v.A, true
}

// AsObject returns the document payload if Kind is KindObject.
func (v Value) AsObject() (Document, bool) {
	if v.Kind != KindObject {
		return nil, false
	}
	return v.O, true
}

// AsBytes returns the byte payload if Kind is KindBytes.
func (v Value) AsBytes() ([]byte, bool) {
	if v.Kind != KindBytes {
		return nil, false
	}
	return v.B, true
}

// AsInt32 returns the int32 payload if Kind is KindInt32.
func (v Value) AsInt32() (int32, bool) {
	if v.Kind != KindInt32 {
		return 0, false
	}
	return v.I32, true
}

// AsInt64 returns the int64 payload if Kind is KindInt64.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt64 {
		return 0, false
	}
	return v.I64, true
}

// AsDate returns the time payload if Kind is KindDate.
func (v Value) AsDate() (time.Time, bool) {
	if v.Kind != KindDate {
		return time.Time{}, false
	}
	return v.T, true
}

// Len returns the element count for arrays and 0 for every other kind.
func (v Value) Len() int {
	if v.Kind != KindArray {
		return 0
	}
	return len(v.A)
}

// At returns element i of an array Value. Indexing a non-array value
// returns ErrNotArray; an out-of-bounds index returns *ErrIndexOutOfRange.
func (v Value) At(i int) (Value, error) {
	if v.Kind != KindArray {
		return Value{}, ErrNotArray
	}
	if i < 0 || i >= len(v.A) {
		return Value{}, &ErrIndexOutOfRange{Index: i, Len: len(v.A)}
	}
	return v.A[i], nil
}

// SetAt replaces element i of an array Value in place.
func (v *Value) SetAt(i int, elem Value) error {
	if v.Kind != KindArray {
		return ErrNotArray
	}
	if i < 0 || i >= len(v.A) {
		return &ErrIndexOutOfRange{Index: i, Len: len(v.A)}
	}
	v.A[i] = elem
	return nil
}

// Append appends elems to the receiver in place, with promotion:
//
//   - Undefined receiver: becomes an array of exactly elems.
//   - Non-array receiver: the current value becomes element 0 of a new
//     array, followed by elems.
//   - Array receiver: grows and appends at the end.
func (v *Value) Append(elems ...Value) {
	switch v.Kind {
	case KindUndefined:
		*v = Array(append([]Value(nil), elems...))
	case KindArray:
		v.A = append(v.A, elems...)
	default:
		head := *v
		*v = Array(append([]Value{head}, elems...))
	}
}

// Clone creates a deep copy of the Value: arrays, byte payloads and object
// documents are duplicated recursively so the clone shares no mutable
// storage with the original.
func (v Value) Clone() Value {
	switch v.Kind {
	case KindArray:
		if len(v.A) == 0 {
			return Value{Kind: KindArray, A: []Value{}}
		}
		elems := make([]Value, len(v.A))
		for i := range v.A {
			elems[i] = v.A[i].Clone()
		}
		return Value{Kind: KindArray, A: elems}
	case KindBytes:
		data := make([]byte, len(v.B))
		copy(data, v.B)
		return Value{Kind: KindBytes, B: data}
	case KindObject:
		return Value{Kind: KindObject, O: v.O.Clone()}
	default:
		// Scalar kinds are copied by value semantics.
		return v
	}
}

// Key returns a stable string representation for use in maps.
//
// It is intended for internal indexing (inverted indexes) and must remain
// stable across versions.
func (v Value) Key() string {
	switch v.Kind {
	case KindUndefined:
		return "undefined"
	case KindString:
		return "s:" + v.S
	case KindNumber:
		return "f:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindObject:
		keys := v.O.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "\x1e" + v.O[k].Key()
		}
		return "o:" + strings.Join(parts, "\x1f")
	case KindArray:
		if len(v.A) == 0 {
			return "a:"
		}
		parts := make([]string, len(v.A))
		for i := range v.A {
			parts[i] = v.A[i].Key()
		}
		return "a:" + strings.Join(parts, "\x1f")
	case KindFalse:
		return "b:0"
	case KindTrue:
		return "b:1"
	case KindNull:
		return "null"
	case KindBytes:
		return "y:" + string(v.B)
	case KindInt32:
		return "i32:" + strconv.FormatInt(int64(v.I32), 10)
	case KindInt64:
		return "i64:" + strconv.FormatInt(v.I64, 10)
	case KindDate:
		return "d:" + strconv.FormatInt(v.T.UnixNano(), 10)
	default:
		return "invalid"
	}
}

// Document is an ordered mapping from unique string keys to Values. The
// underlying storage is a Go map; ordering (sorted keys) is applied at
// comparison and serialization time. Duplicate keys are last-write-wins.
type Document map[string]Value

// Keys returns the document's keys in sorted order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone creates a deep copy of the document. Values are deep copied,
// including nested arrays and objects, so the clone is completely
// independent from the original.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	clone := make(Document, len(d))
	for k, v := range d {
		clone[k] = v.Clone()
	}
	return clone
}

// CloneIfNeeded clones a document only if it is non-nil and non-empty.
// Returns nil for nil or empty input, avoiding the allocation.
func CloneIfNeeded(d Document) Document {
	if len(d) == 0 {
		return nil
	}
	return d.Clone()
}

// Equal reports whether two documents hold the same key set with pairwise
// equal values.
func (d Document) Equal(other Document) bool {
	return equalDocuments(d, other)
}
