package jsonval

import "bytes"

// Equal reports whether two values are equal.
//
// Values of different kinds are never equal; this is defined behavior, not
// an error. Within a kind the comparison is structural: strings and byte
// sequences by full-length content, arrays element-wise, objects by key set
// and pairwise values. NaN-bearing numbers are never equal, matching
// native float semantics. Null equals Null and Undefined equals Undefined.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}

	switch v.Kind {
	case KindUndefined, KindNull, KindTrue, KindFalse:
		return true
	case KindString:
		return v.S == o.S
	case KindNumber:
		return v.F64 == o.F64
	case KindObject:
		return equalDocuments(v.O, o.O)
	case KindArray:
		if len(v.A) != len(o.A) {
			return false
		}
		for i := range v.A {
			if !v.A[i].Equal(o.A[i]) {
				return false
			}
		}
		return true
	case KindBytes:
		return bytes.Equal(v.B, o.B)
	case KindInt32:
		return v.I32 == o.I32
	case KindInt64:
		return v.I64 == o.I64
	case KindDate:
		return v.T.Equal(o.T)
	default:
		return false
	}
}

// Less reports whether v sorts before o.
//
// The declared Kind order is the primary sort key; payloads break ties
// within a kind. Arrays and objects order lexicographically (a strict
// prefix sorts first). The relation is a strict weak ordering except for
// NaN numbers, which are never ordered in either direction.
func (v Value) Less(o Value) bool {
	if v.Kind != o.Kind {
		return v.Kind < o.Kind
	}

	switch v.Kind {
	case KindString:
		return v.S < o.S
	case KindNumber:
		return v.F64 < o.F64
	case KindObject:
		return lessDocuments(v.O, o.O)
	case KindArray:
		return lessValues(v.A, o.A)
	case KindBytes:
		return bytes.Compare(v.B, o.B) < 0
	case KindInt32:
		return v.I32 < o.I32
	case KindInt64:
		return v.I64 < o.I64
	case KindDate:
		return v.T.Before(o.T)
	default:
		// Payload-free kinds are equal, never less.
		return false
	}
}

// lessValues is a lexicographic element compare over value slices.
func lessValues(a, b []Value) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i].Less(b[i]) {
			return true
		}
		if b[i].Less(a[i]) {
			return false
		}
	}
	return len(a) < len(b)
}

func equalDocuments(a, b Document) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !va.Equal(vb) {
			return false
		}
	}
	return true
}

// lessDocuments orders documents lexicographically by (key, value) pairs in
// sorted key order.
func lessDocuments(a, b Document) bool {
	ka, kb := a.Keys(), b.Keys()
	n := len(ka)
	if len(kb) < n {
		n = len(kb)
	}
	for i := 0; i < n; i++ {
		if ka[i] != kb[i] {
			return ka[i] < kb[i]
		}
		va, vb := a[ka[i]], b[kb[i]]
		if va.Less(vb) {
			return true
		}
		if vb.Less(va) {
			return false
		}
	}
	return len(ka) < len(kb)
}
