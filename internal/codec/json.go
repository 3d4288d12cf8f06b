package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/handiism/discman/internal/model"
)

const releaseSchemaURL = "release.schema.json"

const releaseSchema = `{
  "type": "object",
  "properties": {
    "year":  {"type": "string"},
    "month": {"type": "string"},
    "day":   {"type": "string"},
    "order": {"type": "string"},
    "type":  {"type": "string"},
    "title": {"type": "string"},
    "tracks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "is_inst"],
        "properties": {
          "name":    {"type": "string"},
          "is_inst": {"type": "boolean"}
        }
      }
    }
  }
}`

var schema = jsonschema.MustCompileString(releaseSchemaURL, releaseSchema)

// EncodeJSON renders rel as a project file: four space indentation, no
// HTML escaping, no trailing newline.
func EncodeJSON(rel *model.Release) ([]byte, error) {
	out := *rel
	if out.Tracks == nil {
		out.Tracks = []model.Track{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(&out); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DecodeJSON parses a project file. The document is checked against the
// release schema first; header fields that are absent decode as "".
func DecodeJSON(data []byte) (*model.Release, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	var rel model.Release
	if err := json.Unmarshal(data, &rel); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if rel.Tracks == nil {
		rel.Tracks = []model.Track{}
	}

	return &rel, nil
}
