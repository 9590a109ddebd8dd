package codec

import gojson "github.com/goccy/go-json"

// GoJSON serializes with github.com/goccy/go-json. It produces the same text
// as JSON for every value JSON accepts, HTML escaping disabled included.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error) {
	return gojson.MarshalWithOption(v, gojson.DisableHTMLEscape())
}

func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

func (GoJSON) Name() string { return "go-json" }
