// Package encode writes IR nodes as block-style YAML.
//
// # Usage
//
//	node := ir.NewMapping().
//	    Set("name", ir.FromString("alice")).
//	    Set("ids", ir.NewSequence(ir.FromInt(1), ir.FromInt(2)))
//
//	// Encode to a writer
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode to bytes with unix line endings
//	out := encode.Serialize(node, encode.EncodeNewLine(format.LF))
//
// produces
//
//	name: "alice"
//	ids: 
//	  - 1
//	  - 2
//
// Note the space after "ids:". Every mapping key is followed by ": ", also
// when its value starts on the next line.
//
// # Layout
//
// Each nesting level indents by two spaces. A scalar in a sequence is written
// as "- value". A non-empty sequence or mapping in a sequence gets a line
// holding only "-" and its contents follow two spaces deeper. Empty sequences
// and mappings produce no lines at all.
//
// # Scalars
//
// Scalars are written from their runtime value; the node's tag is ignored.
//
//   - null: null
//   - bool: true, false
//   - int: base 10
//   - float: shortest text that parses back to the same float64, in
//     exponent form (1E+15, 1E-05) outside [1e-4, 1e15)
//   - string: wrapped in double quotes without escaping; the empty string
//     writes nothing
//
// # Faults
//
// Encode panics with an error wrapping ErrInvalidNode for nil nodes and
// unknown types or kinds, and with an error wrapping ErrEncoding for keys or
// strings that are not valid UTF-8. Both indicate a malformed tree.
//
// # Related Packages
//
//   - github.com/signadot/blockyaml/ir - IR representation
//   - github.com/signadot/blockyaml/format - Line terminators
package encode
