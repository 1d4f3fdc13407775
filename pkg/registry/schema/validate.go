// Package schema validates JSON payloads before they reach the registry,
// currently just the device batches posted to the import endpoint.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// DeviceBatch is the schema for an imported device batch. The store enforces
// the real invariants (id uniqueness); this just rejects payloads the UI
// could never have produced.
var DeviceBatch = json.RawMessage(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "name", "type", "status"],
		"properties": {
			"id":   {"type": "string", "minLength": 1},
			"name": {"type": "string", "minLength": 1},
			"type": {"type": "string", "enum": ["light", "plug", "thermostat", "camera", "lock", "sensor", "speaker", "vacuum", "hub"]},
			"room": {"type": "string"},
			"status": {"type": "string", "enum": ["on", "off", "online", "offline"]},
			"value": {"type": "string"},
			"battery": {"type": "number", "minimum": 0, "maximum": 100},
			"connection_type": {"type": "string", "enum": ["wifi", "zigbee", "bluetooth", "ethernet"]},
			"integration": {"type": "string"},
			"serial_number": {"type": "string"},
			"ip_address": {"type": "string"},
			"model_number": {"type": "string"}
		}
	}
}`)

// Validator validates JSON payloads against JSON Schema documents, caching
// compiled schemas keyed by their raw bytes.
type Validator struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

// NewValidator creates a Validator with an empty cache.
func NewValidator() *Validator {
	return &Validator{cache: make(map[string]*jsonschema.Schema)}
}

// Validate validates payload against the given JSON Schema document.
// Returns nil if valid, or an error describing the validation failures.
func (v *Validator) Validate(schemaDoc json.RawMessage, payload any) error {
	compiled, err := v.compile(schemaDoc)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}
	return compiled.Validate(payload)
}

func (v *Validator) compile(schemaDoc json.RawMessage) (*jsonschema.Schema, error) {
	key := string(schemaDoc)

	v.mu.RLock()
	if s, ok := v.cache[key]; ok {
		v.mu.RUnlock()
		return s, nil
	}
	v.mu.RUnlock()

	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.cache[key]; ok {
		return s, nil
	}

	var schemaDocAny any
	if err := json.Unmarshal(schemaDoc, &schemaDocAny); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaDocAny); err != nil {
		return nil, fmt.Errorf("failed to add resource: %w", err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile: %w", err)
	}

	v.cache[key] = compiled
	return compiled, nil
}
