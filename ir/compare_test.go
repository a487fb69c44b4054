package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Scalar < Sequence < Mapping
		{"Scalar < Sequence", FromInt(1), NewSequence(), -1},
		{"Sequence < Mapping", NewSequence(), NewMapping(), -1},

		// Kind Ranking: Null < Bool < Int < Float < String
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Int", FromBool(true), FromInt(1), -1},
		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Float < String", FromFloat(1.0), FromString("a"), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"String < String", FromString("a"), FromString("b"), -1},

		// tags are metadata
		{"Null == str-tagged Null", Null(), Null().WithTag(StrTag), 0},

		{"Empty Sequence == Empty Sequence", NewSequence(), NewSequence(), 0},
		{"Short Sequence < Long Sequence", NewSequence(FromInt(1)), NewSequence(FromInt(1), FromInt(2)), -1},
		{"Sequence Element Comparison", NewSequence(FromInt(1)), NewSequence(FromInt(2)), -1},

		{"Empty Mapping == Empty Mapping", NewMapping(), NewMapping(), 0},
		{"Short Mapping < Long Mapping",
			NewMapping().Set("a", FromInt(1)),
			NewMapping().Set("a", FromInt(1)).Set("b", FromInt(2)),
			-1},
		{"Mapping Key Comparison",
			NewMapping().Set("a", FromInt(1)),
			NewMapping().Set("b", FromInt(1)),
			-1},
		{"Mapping Value Comparison",
			NewMapping().Set("a", FromInt(1)),
			NewMapping().Set("a", FromInt(2)),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}
