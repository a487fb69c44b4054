// Package decode builds IR node trees from JSON documents.
//
// Decoding is delegated to github.com/goccy/go-yaml with ordered maps, so
// object members keep the order they have in the input, and integers and
// floats stay distinct.
//
//	node, err := decode.Decode([]byte(`{"b": [1, 2.5], "a": null}`))
//
// FromAny converts already decoded Go values.
//
// # Related Packages
//
//   - github.com/signadot/blockyaml/ir - IR representation
//   - github.com/signadot/blockyaml/encode - Encode IR to block YAML
package decode
