package ir

import (
	"fmt"
	"maps"
	"slices"
)

type Node struct {
	Type Type
	Tag  Tag

	Kind    Kind
	Bool    bool
	Int64   int64
	Float64 float64
	String  string

	Fields []string
	Values []*Node
}

func (y *Node) WithTag(tag Tag) *Node {
	y.Tag = tag
	return y
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	*dst = *y
	dst.Fields = nil
	dst.Values = nil
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func Null() *Node {
	return &Node{Type: ScalarType, Tag: NullTag, Kind: NullKind}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: ScalarType,
		Tag:  BoolTag,
		Kind: BoolKind,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  ScalarType,
		Tag:   IntTag,
		Kind:  IntKind,
		Int64: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    ScalarType,
		Tag:     FloatTag,
		Kind:    FloatKind,
		Float64: f,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   ScalarType,
		Tag:    StrTag,
		Kind:   StringKind,
		String: v,
	}
}

// NewSequence returns a sequence holding items in order.
func NewSequence(items ...*Node) *Node {
	return FromSlice(items)
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: SequenceType,
		Tag:  SeqTag,
	}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

func NewMapping() *Node {
	return &Node{Type: MappingType, Tag: MapTag}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a mapping in the order of kvs. A repeated key replaces
// the earlier value at the earlier position.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewMapping()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds a mapping from a Go map. Go maps are unordered, so the
// entries are placed in sorted key order.
func FromMap(yMap map[string]*Node) *Node {
	res := NewMapping()
	keys := slices.Sorted(maps.Keys(yMap))
	res.Fields = make([]string, 0, len(keys))
	res.Values = make([]*Node, 0, len(keys))
	for _, key := range keys {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, yMap[key])
	}
	return res
}

func (y *Node) mustBe(t Type, op string) {
	if y.Type != t {
		panic(fmt.Errorf("%w: %s on %s node", ErrWrongType, op, y.Type))
	}
}

// Len returns the number of items of a sequence or entries of a mapping,
// and 0 for scalars.
func (y *Node) Len() int {
	return len(y.Values)
}

// Append adds items to the end of a sequence.
func (y *Node) Append(items ...*Node) *Node {
	y.mustBe(SequenceType, "Append")
	y.Values = append(y.Values, items...)
	return y
}

// Insert places item at index i of a sequence, shifting later items.
func (y *Node) Insert(i int, item *Node) *Node {
	y.mustBe(SequenceType, "Insert")
	y.Values = slices.Insert(y.Values, i, item)
	return y
}

// RemoveAt removes the item at index i of a sequence.
func (y *Node) RemoveAt(i int) *Node {
	y.mustBe(SequenceType, "RemoveAt")
	y.Values = slices.Delete(y.Values, i, i+1)
	return y
}

func (y *Node) fieldIndex(key string) int {
	return slices.Index(y.Fields, key)
}

// Set upserts key in a mapping. An existing key keeps its position and has
// its value replaced; a new key is appended.
func (y *Node) Set(key string, val *Node) *Node {
	y.mustBe(MappingType, "Set")
	if i := y.fieldIndex(key); i != -1 {
		y.Values[i] = val
		return y
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
	return y
}

// Lookup returns the value under key in a mapping.
func (y *Node) Lookup(key string) (*Node, bool) {
	y.mustBe(MappingType, "Lookup")
	i := y.fieldIndex(key)
	if i == -1 {
		return nil, false
	}
	return y.Values[i], true
}

// Delete removes key from a mapping, reporting whether it was present.
func (y *Node) Delete(key string) bool {
	y.mustBe(MappingType, "Delete")
	i := y.fieldIndex(key)
	if i == -1 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

// Keys returns the keys of a mapping in insertion order.
func (y *Node) Keys() []string {
	y.mustBe(MappingType, "Keys")
	return slices.Clone(y.Fields)
}

// Get returns the value under field of a mapping. Any other node, including
// nil, yields nil instead of the panic Lookup raises.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != MappingType {
		return nil
	}
	i := y.fieldIndex(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
