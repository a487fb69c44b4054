package encode

import "github.com/signadot/blockyaml/format"

type EncodeOption func(*EncState)

// EncodeNewLine selects the line terminator. The default is format.Native.
func EncodeNewLine(nl format.NewLine) EncodeOption {
	return func(es *EncState) { es.nl = nl }
}

// NewLineFromOpts extracts the line terminator setting from encode options.
func NewLineFromOpts(opts ...EncodeOption) format.NewLine {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.nl
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
