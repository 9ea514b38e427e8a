package jsonval

import (
	"io"
	"strconv"
)

// AppendValue appends the text rendering of v to dst and returns the
// extended buffer.
//
// The rendering is the inverse of the reader's grammar for the JSON kinds:
// strings are double-quoted with no escaping, arrays are comma-joined
// bracketed elements, objects are comma-joined "key":value pairs in sorted
// key order, booleans render as true/false, null as null, and numbers use
// locale-independent strconv formatting. The extended kinds are not part
// of the textual grammar: Int32/Int64 render as decimal integers, Date as
// Unix seconds, and Bytes as its raw bytes; such values do not round-trip
// through text. Undefined renders as the *undefined* marker.
func AppendValue(dst []byte, v Value) []byte {
	switch v.Kind {
	case KindString:
		dst = append(dst, '"')
		dst = append(dst, v.S...)
		dst = append(dst, '"')
	case KindNumber:
		dst = strconv.AppendFloat(dst, v.F64, 'g', -1, 64)
	case KindObject:
		dst = AppendDocument(dst, v.O)
	case KindArray:
		dst = append(dst, '[')
		for i := range v.A {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendValue(dst, v.A[i])
		}
		dst = append(dst, ']')
	case KindFalse:
		dst = append(dst, "false"...)
	case KindTrue:
		dst = append(dst, "true"...)
	case KindNull:
		dst = append(dst, "null"...)
	case KindBytes:
		dst = append(dst, v.B...)
	case KindInt32:
		dst = strconv.AppendInt(dst, int64(v.I32), 10)
	case KindInt64:
		dst = strconv.AppendInt(dst, v.I64, 10)
	case KindDate:
		dst = strconv.AppendInt(dst, v.T.Unix(), 10)
	default:
		dst = append(dst, "*undefined*"...)
	}
	return dst
}

// AppendDocument appends the text rendering of d to dst, pairs in sorted
// key order.
func AppendDocument(dst []byte, d Document) []byte {
	dst = append(dst, '{')
	for i, k := range d.Keys() {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = append(dst, '"')
		dst = append(dst, k...)
		dst = append(dst, '"', ':')
		dst = AppendValue(dst, d[k])
	}
	return append(dst, '}')
}

// Writer serializes values to an io.Writer.
type Writer struct {
	w   io.Writer
	buf []byte
}

// NewWriter returns a Writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteValue writes the text rendering of v.
func (w *Writer) WriteValue(v Value) error {
	w.buf = AppendValue(w.buf[:0], v)
	_, err := w.w.Write(w.buf)
	return err
}

// WriteDocument writes the text rendering of d.
func (w *Writer) WriteDocument(d Document) error {
	w.buf = AppendDocument(w.buf[:0], d)
	_, err := w.w.Write(w.buf)
	return err
}

// String returns the text rendering of the value.
func (v Value) String() string {
	return string(AppendValue(nil, v))
}

// String returns the text rendering of the document.
func (d Document) String() string {
	return string(AppendDocument(nil, d))
}
