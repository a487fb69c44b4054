// Package format selects the line terminator used for encoded output.
//
// # Usage
//
//	nl, err := format.ParseNewLine("crlf")
//	output := encode.Serialize(node, encode.EncodeNewLine(nl))
//
// Native resolves to "\r\n" on windows and "\n" everywhere else.
//
// # Related Packages
//
//   - github.com/signadot/blockyaml/encode - Encode IR to block YAML
package format
