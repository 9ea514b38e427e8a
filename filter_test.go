package jsonval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testDoc() Document {
	return Document{
		"category":  String("tech"),
		"year":      Int64(2024),
		"score":     Number(4.5),
		"published": Bool(true),
		"tags":      Array([]Value{String("go"), String("db")}),
		"created":   Date(time.Unix(1700000000, 0)),
		"note":      Null(),
	}
}

func TestFilterMatches(t *testing.T) {
	doc := testDoc()

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"eq string match", Filter{Key: "category", Operator: OpEqual, Value: String("tech")}, true},
		{"eq string mismatch", Filter{Key: "category", Operator: OpEqual, Value: String("news")}, false},
		{"eq missing key", Filter{Key: "missing", Operator: OpEqual, Value: String("x")}, false},
		{"eq null", Filter{Key: "note", Operator: OpEqual, Value: Null()}, true},
		{"eq bool", Filter{Key: "published", Operator: OpEqual, Value: Bool(true)}, true},
		{"ne", Filter{Key: "category", Operator: OpNotEqual, Value: String("news")}, true},
		{"gt", Filter{Key: "year", Operator: OpGreaterThan, Value: Int64(2023)}, true},
		{"gt false", Filter{Key: "year", Operator: OpGreaterThan, Value: Int64(2024)}, false},
		{"gte boundary", Filter{Key: "year", Operator: OpGreaterEqual, Value: Int64(2024)}, true},
		{"lt", Filter{Key: "score", Operator: OpLessThan, Value: Number(5)}, true},
		{"lte boundary", Filter{Key: "score", Operator: OpLessEqual, Value: Number(4.5)}, true},
		{"in", Filter{Key: "category", Operator: OpIn, Value: Array([]Value{String("news"), String("tech")})}, true},
		{"in miss", Filter{Key: "category", Operator: OpIn, Value: Array([]Value{String("news")})}, false},
		{"in non-array", Filter{Key: "category", Operator: OpIn, Value: String("tech")}, false},
		{"contains", Filter{Key: "category", Operator: OpContains, Value: String("ec")}, true},
		{"contains miss", Filter{Key: "category", Operator: OpContains, Value: String("xyz")}, false},
		{"contains non-string", Filter{Key: "year", Operator: OpContains, Value: String("20")}, false},
		{"unknown operator", Filter{Key: "category", Operator: Operator("bogus"), Value: String("tech")}, false},
		{"array eq", Filter{Key: "tags", Operator: OpEqual, Value: Array([]Value{String("go"), String("db")})}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(doc))
		})
	}
}

func TestFilterNumericCoercion(t *testing.T) {
	doc := testDoc()

	// Filters coerce across the numeric kinds even though the core
	// relation keeps them distinct.
	assert.True(t, (&Filter{Key: "year", Operator: OpEqual, Value: Number(2024)}).Matches(doc))
	assert.True(t, (&Filter{Key: "score", Operator: OpGreaterThan, Value: Int32(4)}).Matches(doc))
	assert.True(t, (&Filter{Key: "year", Operator: OpLessEqual, Value: Int32(2024)}).Matches(doc))
	assert.False(t, (&Filter{Key: "category", Operator: OpGreaterThan, Value: Number(1)}).Matches(doc))
}

func TestFilterDates(t *testing.T) {
	doc := testDoc()

	before := Date(time.Unix(1600000000, 0))
	after := Date(time.Unix(1800000000, 0))

	assert.True(t, (&Filter{Key: "created", Operator: OpGreaterThan, Value: before}).Matches(doc))
	assert.True(t, (&Filter{Key: "created", Operator: OpLessThan, Value: after}).Matches(doc))
	assert.False(t, (&Filter{Key: "created", Operator: OpGreaterThan, Value: after}).Matches(doc))
	assert.True(t, (&Filter{Key: "created", Operator: OpEqual, Value: Date(time.Unix(1700000000, 0))}).Matches(doc))
}

func TestFilterSetMatches(t *testing.T) {
	doc := testDoc()

	fs := NewFilterSet(
		Filter{Key: "category", Operator: OpEqual, Value: String("tech")},
		Filter{Key: "year", Operator: OpGreaterEqual, Value: Int64(2023)},
	)
	assert.True(t, fs.Matches(doc))

	fs = NewFilterSet(
		Filter{Key: "category", Operator: OpEqual, Value: String("tech")},
		Filter{Key: "year", Operator: OpLessThan, Value: Int64(2000)},
	)
	assert.False(t, fs.Matches(doc))

	// An empty set matches everything.
	assert.True(t, NewFilterSet().Matches(doc))
}
