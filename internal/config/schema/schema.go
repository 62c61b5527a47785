// Package schema provides the JSON Schema of the keycore configuration file
// and a validator for decoded configuration documents.
//
// The schema is embedded in the binary so that it can be published with
// "keycore schema" and applied to files before they are decoded into
// typed configuration.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
)

//go:embed keycore.schema.json
var embedded []byte

// Schema is the part of JSON Schema (draft 2020-12) keycore's config
// file uses. Keywords outside this set are ignored when parsing.
type Schema struct {
	ID            string `json:"$id,omitempty"`
	SchemaVersion string `json:"$schema,omitempty"`
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`

	Type SchemaType `json:"type,omitempty"`
	Enum []any      `json:"enum,omitempty"`

	// Documentation only; Default values are applied by the config package.
	Default any `json:"default,omitempty"`

	// Objects.
	Properties           map[string]*Schema `json:"properties,omitempty"`
	AdditionalProperties *bool              `json:"additionalProperties,omitempty"`
	Required             []string           `json:"required,omitempty"`

	// Arrays.
	Items       *Schema `json:"items,omitempty"`
	UniqueItems bool    `json:"uniqueItems,omitempty"`

	// Numbers.
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Strings. Format "duration" must parse with time.ParseDuration; other
	// formats are not checked.
	MinLength *int   `json:"minLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	Format    string `json:"format,omitempty"`

	// Ref is resolved only against "#/$defs/" of the root schema.
	Ref  string             `json:"$ref,omitempty"`
	Defs map[string]*Schema `json:"$defs,omitempty"`
}

// SchemaType is the "type" keyword: one type name or a list of them.
type SchemaType struct {
	Types []string
}

func (t *SchemaType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		t.Types = []string{name}
		return nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("type must be a string or a list of strings: %w", err)
	}
	t.Types = names
	return nil
}

func (t SchemaType) MarshalJSON() ([]byte, error) {
	if len(t.Types) == 1 {
		return json.Marshal(t.Types[0])
	}
	return json.Marshal(t.Types)
}

// Is reports whether typ is one of the allowed types.
func (t SchemaType) Is(typ string) bool {
	return slices.Contains(t.Types, typ)
}

// IsEmpty reports whether the keyword was absent.
func (t SchemaType) IsEmpty() bool {
	return len(t.Types) == 0
}

func (t SchemaType) String() string {
	if len(t.Types) == 1 {
		return t.Types[0]
	}
	return strings.Join(t.Types, "|")
}

var (
	configSchema     *Schema
	configSchemaOnce sync.Once
	configSchemaErr  error
)

// Config returns the parsed configuration schema.
func Config() (*Schema, error) {
	configSchemaOnce.Do(func() {
		configSchema, configSchemaErr = Parse(embedded)
		if configSchemaErr != nil {
			configSchemaErr = fmt.Errorf("embedded schema: %w", configSchemaErr)
		}
	})
	return configSchema, configSchemaErr
}

// JSON returns the configuration schema document as published.
func JSON() []byte {
	out := make([]byte, len(embedded))
	copy(out, embedded)
	return out
}

// Parse parses a JSON Schema from bytes.
func Parse(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	return s, nil
}

// Property returns the schema for a dot-separated property path such as
// "log.level", or nil if there is none.
func (s *Schema) Property(path string) *Schema {
	if s == nil || path == "" {
		return s
	}

	for _, name := range splitPath(path) {
		prop, ok := s.Properties[name]
		if !ok {
			return nil
		}
		s = prop
	}
	return s
}

// AllowsAdditionalProperties reports whether an object may carry
// properties its schema does not list. JSON Schema allows them by default.
func (s *Schema) AllowsAdditionalProperties() bool {
	if s.AdditionalProperties == nil {
		return true
	}
	return *s.AdditionalProperties
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '.' })
}
