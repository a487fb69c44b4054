package ir

// Tag is a YAML core schema tag. Tags are informational: constructors set
// the tag matching their value, but nothing derives formatting from it.
type Tag string

const (
	NullTag  Tag = "!!null"
	BoolTag  Tag = "!!bool"
	IntTag   Tag = "!!int"
	FloatTag Tag = "!!float"
	StrTag   Tag = "!!str"
	SeqTag   Tag = "!!seq"
	MapTag   Tag = "!!map"
)

func (t Tag) String() string {
	return string(t)
}

// CoreTags returns the seven core schema tags.
func CoreTags() []Tag {
	return []Tag{NullTag, BoolTag, IntTag, FloatTag, StrTag, SeqTag, MapTag}
}

// IsCore reports whether t is one of the core schema tags.
func (t Tag) IsCore() bool {
	for _, c := range CoreTags() {
		if t == c {
			return true
		}
	}
	return false
}

// KindTag returns the tag a constructor assigns to a scalar of kind k.
func KindTag(k Kind) Tag {
	switch k {
	case NullKind:
		return NullTag
	case BoolKind:
		return BoolTag
	case IntKind:
		return IntTag
	case FloatKind:
		return FloatTag
	case StringKind:
		return StrTag
	default:
		return ""
	}
}
