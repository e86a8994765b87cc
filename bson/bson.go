// Package bson provides a BSON codec for verdict reports, for callers that
// store validation outcomes next to MongoDB documents.
package bson

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zoobzio/verdict"
)

// ContentType is the MIME type reported by the codec.
const ContentType = "application/bson"

type bsonCodec struct{}

// New returns a BSON codec. Reports encode as a top-level document.
func New() verdict.Codec {
	return bsonCodec{}
}

func (bsonCodec) ContentType() string { return ContentType }

func (bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal rejects data that is not a complete BSON document.
func (bsonCodec) Unmarshal(data []byte, v any) error {
	if err := bson.Raw(data).Validate(); err != nil {
		return err
	}
	return bson.Unmarshal(data, v)
}
