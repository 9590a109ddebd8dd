package codec

import (
	"bytes"
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Output is compact and ends without a newline. Map keys are sorted and
// struct fields keep declaration order. '<', '>' and '&' are written
// literally rather than as \u003c-style escapes, so the text matches what other
// JSON serializers hash. Channels, funcs and complex numbers cannot be
// serialized and fail with an error instead of producing a digest.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns "json".
func (JSON) Name() string { return "json" }

// Default is the codec a Hasher uses unless configured otherwise.
var Default Codec = GoJSON{}
