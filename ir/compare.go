package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes by content.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Tags do not take part in the comparison.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case ScalarType:
		return compareScalars(a, b)
	case SequenceType:
		return compareSequences(a, b)
	case MappingType:
		return compareMappings(a, b)
	}
	return 0
}

// Equal reports whether a and b have the same content.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Order: Null < Bool < Int < Float < String
func compareScalars(a, b *Node) int {
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	switch a.Kind {
	case BoolKind:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntKind:
		return cmp.Compare(a.Int64, b.Int64)
	case FloatKind:
		return cmp.Compare(a.Float64, b.Float64)
	case StringKind:
		return strings.Compare(a.String, b.String)
	}
	return 0
}

func compareSequences(a, b *Node) int {
	return slices.CompareFunc(a.Values, b.Values, Compare)
}

func compareMappings(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
