package jsonval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsUndefined(t *testing.T) {
	var v Value
	assert.Equal(t, KindUndefined, v.Kind)
	assert.False(t, v.IsDefined())
	assert.Equal(t, Undefined(), v)
}

func TestConstructorsAndAccessors(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tests := []struct {
		name string
		val  Value
		kind Kind
	}{
		{"String", String("hello"), KindString},
		{"Number", Number(3.14), KindNumber},
		{"True", Bool(true), KindTrue},
		{"False", Bool(false), KindFalse},
		{"Null", Null(), KindNull},
		{"Array", Array([]Value{Number(1)}), KindArray},
		{"Object", Object(Document{"a": Number(1)}), KindObject},
		{"Bytes", Bytes([]byte{1, 2}), KindBytes},
		{"Int32", Int32(7), KindInt32},
		{"Int64", Int64(9), KindInt64},
		{"Date", Date(now), KindDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.val.Kind)
			assert.True(t, tt.val.IsDefined())
		})
	}

	s, ok := String("hello").AsString()
	require.True(t, ok)
	assert.Equal(t, "hello", s)

	f, ok := Number(3.14).AsNumber()
	require.True(t, ok)
	assert.Equal(t, 3.14, f)

	b, ok := Bool(true).AsBool()
	require.True(t, ok)
	assert.True(t, b)

	b, ok = Bool(false).AsBool()
	require.True(t, ok)
	assert.False(t, b)

	i32, ok := Int32(7).AsInt32()
	require.True(t, ok)
	assert.Equal(t, int32(7), i32)

	i64, ok := Int64(9).AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(9), i64)

	ts, ok := Date(now).AsDate()
	require.True(t, ok)
	assert.True(t, now.Equal(ts))

	// Cross-kind access fails closed.
	_, ok = Number(1).AsString()
	assert.False(t, ok)
	_, ok = String("x").AsArray()
	assert.False(t, ok)
	_, ok = Null().AsBool()
	assert.False(t, ok)
}

func TestBytesCopiesInput(t *testing.T) {
	src := []byte{1, 2, 3}
	v := Bytes(src)
	src[0] = 99

	got, ok := v.AsBytes()
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestMakeArray(t *testing.T) {
	v := MakeArray(3)
	assert.Equal(t, KindArray, v.Kind)
	require.Equal(t, 3, v.Len())

	for i := 0; i < 3; i++ {
		elem, err := v.At(i)
		require.NoError(t, err)
		assert.False(t, elem.IsDefined())
	}
}

func TestAtAndSetAt(t *testing.T) {
	v := MakeArray(2)
	require.NoError(t, v.SetAt(0, String("a")))
	require.NoError(t, v.SetAt(1, Number(2)))

	elem, err := v.At(0)
	require.NoError(t, err)
	assert.True(t, elem.Equal(String("a")))

	_, err = v.At(2)
	var oor *ErrIndexOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 2, oor.Index)
	assert.Equal(t, 2, oor.Len)

	_, err = v.At(-1)
	assert.ErrorAs(t, err, &oor)

	err = v.SetAt(5, Null())
	assert.ErrorAs(t, err, &oor)

	s := String("x")
	_, err = s.At(0)
	assert.ErrorIs(t, err, ErrNotArray)
	assert.ErrorIs(t, s.SetAt(0, Null()), ErrNotArray)
}

func TestAppendPromotion(t *testing.T) {
	t.Run("undefined receiver becomes array", func(t *testing.T) {
		var v Value
		v.Append(Number(1))
		require.Equal(t, KindArray, v.Kind)
		require.Equal(t, 1, v.Len())
		assert.True(t, v.A[0].Equal(Number(1)))
	})

	t.Run("scalar receiver is promoted", func(t *testing.T) {
		v := String("x")
		v.Append(Number(5))
		require.Equal(t, KindArray, v.Kind)
		require.Equal(t, 2, v.Len())
		assert.True(t, v.A[0].Equal(String("x")))
		assert.True(t, v.A[1].Equal(Number(5)))
	})

	t.Run("array receiver grows", func(t *testing.T) {
		v := Array([]Value{Number(1)})
		v.Append(Number(2), Number(3))
		require.Equal(t, 3, v.Len())
		assert.True(t, v.A[2].Equal(Number(3)))
	})

	t.Run("undefined receiver with multiple elements", func(t *testing.T) {
		var v Value
		v.Append(Number(1), Number(2))
		require.Equal(t, 2, v.Len())
	})
}

func TestCloneIndependence(t *testing.T) {
	t.Run("array elements", func(t *testing.T) {
		a := Array([]Value{String("a"), Number(1)})
		b := a.Clone()

		require.NoError(t, a.SetAt(0, String("changed")))
		got, err := b.At(0)
		require.NoError(t, err)
		assert.True(t, got.Equal(String("a")))
	})

	t.Run("nested arrays", func(t *testing.T) {
		inner := Array([]Value{Number(1)})
		a := Array([]Value{inner})
		b := a.Clone()

		a.A[0].A[0] = Number(99)
		assert.True(t, b.A[0].A[0].Equal(Number(1)))
	})

	t.Run("bytes", func(t *testing.T) {
		a := Bytes([]byte{1, 2})
		b := a.Clone()
		a.B[0] = 9
		assert.Equal(t, []byte{1, 2}, b.B)
	})

	t.Run("objects", func(t *testing.T) {
		a := Object(Document{"k": Number(1)})
		b := a.Clone()
		a.O["k"] = Number(2)
		assert.True(t, b.O["k"].Equal(Number(1)))
	})
}

func TestDocumentClone(t *testing.T) {
	assert.Nil(t, Document(nil).Clone())

	d := Document{"k": Array([]Value{Number(1)})}
	c := d.Clone()
	d["k"].A[0] = Number(2)
	assert.True(t, c["k"].A[0].Equal(Number(1)))
}

func TestCloneIfNeeded(t *testing.T) {
	assert.Nil(t, CloneIfNeeded(nil))
	assert.Nil(t, CloneIfNeeded(Document{}))

	d := Document{"k": Int64(1)}
	c := CloneIfNeeded(d)
	require.NotNil(t, c)

	c["k"] = Int64(2)
	assert.Equal(t, int64(1), d["k"].I64)
}

func TestDocumentKeys(t *testing.T) {
	d := Document{"b": Null(), "a": Null(), "c": Null()}
	assert.Equal(t, []string{"a", "b", "c"}, d.Keys())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Undefined", KindUndefined.String())
	assert.Equal(t, "String", KindString.String())
	assert.Equal(t, "Number", KindNumber.String())
	assert.Equal(t, "Date", KindDate.String())
	assert.Equal(t, "Unknown", Kind(200).String())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "null", Null().Key())
	assert.Equal(t, "s:foo", String("foo").Key())
	assert.Equal(t, "b:1", Bool(true).Key())
	assert.Equal(t, "b:0", Bool(false).Key())
	assert.Equal(t, "i32:7", Int32(7).Key())
	assert.Equal(t, "i64:-9", Int64(-9).Key())
	assert.Equal(t, "undefined", Undefined().Key())
	assert.Contains(t, Number(1.0).Key(), "f:")

	arr := Array([]Value{Int64(1), Int64(2)})
	assert.Contains(t, arr.Key(), "a:i64:1")
	assert.Contains(t, arr.Key(), "i64:2")
	assert.Equal(t, "a:", Array([]Value{}).Key())

	// Keys are stable and distinguish kinds with equal renderings.
	assert.NotEqual(t, Int64(1).Key(), Int32(1).Key())
	assert.NotEqual(t, String("1").Key(), Int64(1).Key())

	// Object keys are order independent.
	o1 := Object(Document{"a": Int64(1), "b": Int64(2)}).Key()
	o2 := Object(Document{"b": Int64(2), "a": Int64(1)}).Key()
	assert.Equal(t, o1, o2)
}
