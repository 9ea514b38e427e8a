package jsonval

import "strings"

// Operator represents a comparison operator for document filtering.
type Operator string

const (
	// OpEqual represents the equality operator.
	OpEqual Operator = "eq"
	// OpNotEqual represents the inequality operator.
	OpNotEqual Operator = "ne"
	// OpGreaterThan represents the greater than operator.
	OpGreaterThan Operator = "gt"
	// OpGreaterEqual represents the greater than or equal operator.
	OpGreaterEqual Operator = "gte"
	// OpLessThan represents the less than operator.
	OpLessThan Operator = "lt"
	// OpLessEqual represents the less than or equal operator.
	OpLessEqual Operator = "lte"
	// OpIn represents the in list operator.
	OpIn Operator = "in"
	// OpContains represents the contains substring operator.
	OpContains Operator = "contains"
)

// Filter represents a single document filter condition.
type Filter struct {
	Key      string
	Operator Operator
	Value    Value
}

// FilterSet represents a set of filters that must all match (AND logic).
type FilterSet struct {
	Filters []Filter
}

// NewFilterSet creates a new filter set.
func NewFilterSet(filters ...Filter) *FilterSet {
	return &FilterSet{Filters: filters}
}

// Matches checks if the provided document matches this filter.
//
// Filters are deliberately looser than the core ordering relation: the
// numeric kinds (Number, Int32, Int64) coerce to a common float for
// comparison, so a filter value Int64(3) matches a document Number(3).
func (f *Filter) Matches(doc Document) bool {
	value, exists := doc[f.Key]
	if !exists {
		return false
	}

	switch f.Operator {
	case OpEqual:
		return filterEqual(value, f.Value)
	case OpNotEqual:
		return !filterEqual(value, f.Value)
	case OpGreaterThan:
		return filterGreater(value, f.Value)
	case OpGreaterEqual:
		return filterGreater(value, f.Value) || filterEqual(value, f.Value)
	case OpLessThan:
		return filterLess(value, f.Value)
	case OpLessEqual:
		return filterLess(value, f.Value) || filterEqual(value, f.Value)
	case OpIn:
		return filterIn(value, f.Value)
	case OpContains:
		return filterContains(value, f.Value)
	default:
		return false
	}
}

// Matches checks if the provided document matches all filters in the set.
func (fs *FilterSet) Matches(doc Document) bool {
	for _, filter := range fs.Filters {
		if !filter.Matches(doc) {
			return false
		}
	}
	return true
}

func filterEqual(a, b Value) bool {
	if isNumeric(a) && isNumeric(b) {
		// Prefer exact integer compare when possible.
		if a.Kind != KindNumber && b.Kind != KindNumber {
			return intOf(a) == intOf(b)
		}
		return floatOf(a) == floatOf(b)
	}

	if a.Kind == KindArray && b.Kind == KindArray {
		if len(a.A) != len(b.A) {
			return false
		}
		for i := range a.A {
			if !filterEqual(a.A[i], b.A[i]) {
				return false
			}
		}
		return true
	}

	return a.Equal(b)
}

func filterGreater(a, b Value) bool {
	if a.Kind == KindDate && b.Kind == KindDate {
		return a.T.After(b.T)
	}
	if !isNumeric(a) || !isNumeric(b) {
		return false
	}
	return floatOf(a) > floatOf(b)
}

func filterLess(a, b Value) bool {
	if a.Kind == KindDate && b.Kind == KindDate {
		return a.T.Before(b.T)
	}
	if !isNumeric(a) || !isNumeric(b) {
		return false
	}
	return floatOf(a) < floatOf(b)
}

func filterIn(a, b Value) bool {
	if b.Kind != KindArray {
		return false
	}
	for _, item := range b.A {
		if filterEqual(a, item) {
			return true
		}
	}
	return false
}

func filterContains(a, b Value) bool {
	if a.Kind != KindString || b.Kind != KindString {
		return false
	}
	return strings.Contains(a.S, b.S)
}

func isNumeric(v Value) bool {
	return v.Kind == KindNumber || v.Kind == KindInt32 || v.Kind == KindInt64
}

func floatOf(v Value) float64 {
	switch v.Kind {
	case KindNumber:
		return v.F64
	case KindInt32:
		return float64(v.I32)
	case KindInt64:
		return float64(v.I64)
	default:
		return 0
	}
}

func intOf(v Value) int64 {
	switch v.Kind {
	case KindInt32:
		return int64(v.I32)
	case KindInt64:
		return v.I64
	default:
		return 0
	}
}
