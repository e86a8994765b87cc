package verdict

// Codec encodes and decodes failure reports. Implementations live in the
// json, xml, yaml, msgpack and bson subpackages; any type with these three
// methods can be passed to Result.Encode and DecodeReport.
type Codec interface {
	// ContentType returns the MIME type of the encoding, e.g. "application/json".
	ContentType() string

	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}
