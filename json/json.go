// Package json provides a JSON codec for verdict reports.
package json

import (
	"encoding/json"

	"github.com/zoobzio/verdict"
)

// ContentType is the MIME type reported by the codec.
const ContentType = "application/json"

type jsonCodec struct {
	indent string
}

// New returns a compact JSON codec.
func New() verdict.Codec {
	return &jsonCodec{}
}

// NewIndented returns a JSON codec that indents nested entries with indent.
func NewIndented(indent string) verdict.Codec {
	return &jsonCodec{indent: indent}
}

func (*jsonCodec) ContentType() string { return ContentType }

func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	if c.indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", c.indent)
}

func (*jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
