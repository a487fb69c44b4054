package decode

import (
	"errors"
	"math"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/blockyaml/ir"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *ir.Node
	}{
		{name: "null", in: `null`, want: ir.Null()},
		{name: "bool", in: `true`, want: ir.FromBool(true)},
		{name: "int", in: `42`, want: ir.FromInt(42)},
		{name: "negative int", in: `-7`, want: ir.FromInt(-7)},
		{name: "float", in: `20.2`, want: ir.FromFloat(20.2)},
		{name: "string", in: `"hi"`, want: ir.FromString("hi")},
		{
			name: "array",
			in:   `[1, "a", null]`,
			want: ir.NewSequence(ir.FromInt(1), ir.FromString("a"), ir.Null()),
		},
		{
			name: "object keeps order",
			in:   `{"z": 1, "a": {"m": [true]}, "k": 2.5}`,
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: "z", Val: ir.FromInt(1)},
				{Key: "a", Val: ir.FromKeyVals([]ir.KeyVal{
					{Key: "m", Val: ir.NewSequence(ir.FromBool(true))},
				})},
				{Key: "k", Val: ir.FromFloat(2.5)},
			}),
		},
		{
			name: "empty collections",
			in:   `{"s": [], "m": {}}`,
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: "s", Val: ir.NewSequence()},
				{Key: "m", Val: ir.NewMapping()},
			}),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode([]byte(tc.in))
			if err != nil {
				t.Fatalf("Decode(%q): %v", tc.in, err)
			}
			if !ir.Equal(got, tc.want) {
				t.Errorf("Decode(%q) mismatch", tc.in)
			}
			if got.Type == ir.MappingType {
				if diff := cmp.Diff(tc.want.Keys(), got.Keys()); diff != "" {
					t.Errorf("key order (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestDecodeError(t *testing.T) {
	_, err := Decode([]byte(`{"a": [1, 2`))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("got %v, want ErrDecode", err)
	}
}

func TestDecodeNumberOutOfRange(t *testing.T) {
	tests := []string{
		`{"a": 100000000000000000000}`,
		`{"a": 1e400}`,
		`[1, -1e400]`,
		`100000000000000000000`,
		`{"a": 18446744073709551616}`,
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			node, err := Decode([]byte(in))
			if !errors.Is(err, ErrUnsupported) {
				t.Errorf("Decode(%q) = %v, %v; want ErrUnsupported", in, node, err)
			}
		})
	}
}

func TestDecodeNumericStrings(t *testing.T) {
	got, err := Decode([]byte(`{"a": "100000000000000000000", "b": "1e400"}`))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromString("100000000000000000000")},
		{Key: "b", Val: ir.FromString("1e400")},
	})
	if !ir.Equal(got, want) {
		t.Errorf("quoted numbers should stay strings")
	}
}

func TestFromAny(t *testing.T) {
	got, err := FromAny(map[string]any{
		"b": uint8(3),
		"a": []any{int32(-1), float32(0.5)},
		"c": yaml.MapSlice{
			{Key: 1, Value: "one"},
			{Key: true, Value: nil},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.NewSequence(ir.FromInt(-1), ir.FromFloat(0.5))},
		{Key: "b", Val: ir.FromInt(3)},
		{Key: "c", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "1", Val: ir.FromString("one")},
			{Key: "true", Val: ir.Null()},
		})},
	})
	if !ir.Equal(got, want) {
		t.Errorf("FromAny mismatch")
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, got.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	tests := []struct {
		name string
		v    any
	}{
		{name: "uint overflow", v: uint64(math.MaxInt64) + 1},
		{name: "struct", v: struct{}{}},
		{name: "nested", v: []any{map[string]any{"x": complex(1, 2)}}},
		{name: "collection key", v: yaml.MapSlice{{Key: []any{1}, Value: 1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromAny(tc.v)
			if !errors.Is(err, ErrUnsupported) {
				t.Errorf("got %v, want ErrUnsupported", err)
			}
		})
	}
}
