// Package msgpack provides a MessagePack codec for verdict reports.
package msgpack

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/zoobzio/verdict"
)

// ContentType is the MIME type reported by the codec.
const ContentType = "application/msgpack"

type msgpackCodec struct{}

// New returns a MessagePack codec. Integers are written in their smallest
// encoding, which keeps entry indexes to a single byte in most reports.
func New() verdict.Codec {
	return msgpackCodec{}
}

func (msgpackCodec) ContentType() string { return ContentType }

func (msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.UseCompactInts(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
