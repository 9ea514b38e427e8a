// Package jsonval provides a typed, schema-free document value model for
// JSON-like data, together with a textual reader and writer that round-trip
// it to a compact JSON-ish text form.
//
// # Value Model
//
// A Value is a tagged union: exactly one payload interpretation is active,
// selected by its Kind. Supported kinds are the JSON kinds (String, Number,
// Object, Array, True, False, Null) plus BSON-style extensions (Bytes,
// Int32, Int64, Date) and an Undefined sentinel meaning "no value".
//
// Values are built with typed constructors:
//
//	v := jsonval.String("tech")
//	n := jsonval.Number(3.14)
//	a := jsonval.Array([]jsonval.Value{jsonval.Number(1), jsonval.String("a")})
//	o := jsonval.Object(jsonval.Document{"year": jsonval.Int64(2024)})
//
// The zero Value is Undefined. Appending to a non-array value promotes it
// into an array:
//
//	v := jsonval.String("x")
//	v.Append(jsonval.Number(5)) // v is now ["x",5]
//
// # Ordering
//
// Values carry a total-by-construction ordering: the declared Kind order is
// the primary sort key, payloads break ties within a kind. Equal and Less
// are the two primitive relations; NaN-bearing numbers are never equal and
// never ordered, matching native float semantics.
//
// # Text Form
//
// The reader parses values from a character stream:
//
//	v, err := jsonval.Parse(`{"a":1,"b":"s"}`)
//
// and the writer renders them back:
//
//	text := v.String() // {"a":1,"b":"s"}
//
// The text form is deliberately NOT strict JSON: strings carry no escape
// sequences (reader and writer are paired on this), Bytes values render as
// raw bytes, and Dates render as Unix seconds. See Reader and Writer for
// the exact contract.
//
// # Filtering and Indexing
//
// Documents can be matched against filter sets:
//
//	fs := jsonval.NewFilterSet(
//	    jsonval.Filter{Key: "category", Operator: jsonval.OpEqual, Value: jsonval.String("tech")},
//	    jsonval.Filter{Key: "year", Operator: jsonval.OpGreaterEqual, Value: jsonval.Int64(2023)},
//	)
//	ok := fs.Matches(doc)
//
// # Subpackages
//
//   - index: Roaring-Bitmap-backed inverted index over document collections
package jsonval
