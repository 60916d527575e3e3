package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled holds one compiled validator per *Schema. Schemas are package
// level values, so pointer identity is stable for the life of the process.
var compiled sync.Map // map[*Schema]*jsonschema.Schema

// validateResponse checks raw against schema and reports any mismatch as
// *ErrInvalidResponse. A nil schema accepts anything.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	invalid := func(err error) error {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid(fmt.Errorf("invalid JSON: %w", err))
	}

	v, err := compileSchema(schema)
	if err != nil {
		return invalid(fmt.Errorf("compile schema %q: %w", schema.Name, err))
	}

	if err := v.Validate(doc); err != nil {
		return invalid(fmt.Errorf("schema validation failed: %w", err))
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if v, ok := compiled.Load(schema); ok {
		return v.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded document with json.Number leaves, which
	// a round trip through UnmarshalJSON produces.
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}

	url := "mem://schemas/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	v, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	actual, _ := compiled.LoadOrStore(schema, v)
	return actual.(*jsonschema.Schema), nil
}
