// Package xml provides an XML codec for verdict reports.
//
// A report encodes as a <report valid="..."> root with one <error> element
// per failure; child failures nest as <error> elements of their parent.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/verdict"
)

// ContentType is the MIME type reported by the codec.
const ContentType = "application/xml"

type xmlCodec struct {
	indent string
}

// New returns a compact XML codec.
func New() verdict.Codec {
	return &xmlCodec{}
}

// NewIndented returns an XML codec that indents nested elements with indent.
func NewIndented(indent string) verdict.Codec {
	return &xmlCodec{indent: indent}
}

func (*xmlCodec) ContentType() string { return ContentType }

func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	if c.indent == "" {
		return xml.Marshal(v)
	}
	return xml.MarshalIndent(v, "", c.indent)
}

func (*xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
