// Package yaml provides a YAML codec for verdict reports.
package yaml

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/verdict"
)

// ContentType is the MIME type reported by the codec.
const ContentType = "application/yaml"

// DefaultIndent is the number of spaces New indents nested entries by.
const DefaultIndent = 2

type yamlCodec struct {
	indent int
}

// New returns a YAML codec using DefaultIndent.
func New() verdict.Codec {
	return &yamlCodec{indent: DefaultIndent}
}

// NewIndented returns a YAML codec indenting by the given number of spaces.
// Values below 2 use DefaultIndent.
func NewIndented(spaces int) verdict.Codec {
	if spaces < 2 {
		spaces = DefaultIndent
	}
	return &yamlCodec{indent: spaces}
}

func (*yamlCodec) ContentType() string { return ContentType }

func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (*yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
