// Package ir provides the node model that the block writer consumes.
//
// # Overview
//
// A document is a tree of *Node values. Every node is one of three shapes,
// selected by its Type field:
//
//   - ScalarType: a single value
//   - SequenceType: an ordered list of nodes
//   - MappingType: an insertion-ordered list of key/value entries
//
// The set of shapes is closed. Code that walks a tree switches on Type and
// treats any other value as a programming error.
//
// The Node struct works as a tagged union: the fields that carry meaning
// depend on Type (and, for scalars, on Kind).
//
// # Scalars
//
// The Kind field gives the runtime shape of a scalar value:
//
//   - NullKind: no value
//   - BoolKind: Bool
//   - IntKind: Int64
//   - FloatKind: Float64
//   - StringKind: String
//
// # Tags
//
// Each node carries one of the YAML core schema tags (!!null, !!bool, !!int,
// !!float, !!str, !!seq, !!map). Constructors set the tag matching the value,
// and WithTag overrides it. The tag is metadata only: a null scalar tagged
// !!str is still a null scalar.
//
//	n := ir.Null().WithTag(ir.StrTag)
//
// # Creating Nodes
//
//	s := ir.FromString("hello")
//	i := ir.FromInt(42)
//	seq := ir.NewSequence(ir.FromInt(1), ir.FromInt(2))
//	m := ir.NewMapping().
//	    Set("name", ir.FromString("alice")).
//	    Set("tags", seq)
//
// # Mappings
//
// For MappingType nodes, Fields[i] is the key for the value at Values[i].
// Keys are unique. Set on an existing key replaces the value and keeps the
// key's original position; new keys are appended. Insertion order is the
// order in which entries are written.
//
// # Ownership
//
// Children are owned by their container; a node should appear at most once
// in a tree. Nothing detects a container that holds itself, and walking such
// a tree does not terminate.
//
// # Thread Safety
//
// Node structures are not thread-safe. Concurrent readers are fine as long as
// nothing mutates the tree at the same time.
//
// # Related Packages
//
//   - github.com/signadot/blockyaml/encode - Encodes IR nodes to block YAML
//   - github.com/signadot/blockyaml/decode - Builds IR nodes from JSON
package ir
