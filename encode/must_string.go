package encode

import (
	"github.com/signadot/blockyaml/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	return string(Serialize(node, opts...))
}
