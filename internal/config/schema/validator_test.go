package schema

import (
	"errors"
	"strings"
	"testing"
)

func typ(names ...string) SchemaType {
	return SchemaType{Types: names}
}

func object(props map[string]*Schema) *Schema {
	return &Schema{Type: typ("object"), Properties: props}
}

func TestValidator_TypeChecks(t *testing.T) {
	tests := []struct {
		name      string
		prop      *Schema
		value     any
		wantError bool
	}{
		{"string", &Schema{Type: typ("string")}, "a", false},
		{"string got int", &Schema{Type: typ("string")}, 123, true},
		{"integer from yaml", &Schema{Type: typ("integer")}, 42, false},
		{"integer from toml", &Schema{Type: typ("integer")}, int64(42), false},
		{"integer from json", &Schema{Type: typ("integer")}, float64(42), false},
		{"integer got fraction", &Schema{Type: typ("integer")}, 3.14, true},
		{"number", &Schema{Type: typ("number")}, 3.14, false},
		{"boolean", &Schema{Type: typ("boolean")}, true, false},
		{"boolean got string", &Schema{Type: typ("boolean")}, "true", true},
		{"array", &Schema{Type: typ("array")}, []any{"a"}, false},
		{"nullable", &Schema{Type: typ("string", "null")}, nil, false},
		{"null rejected", &Schema{Type: typ("string")}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(object(map[string]*Schema{"x": tt.prop}))
			err := v.Validate(map[string]any{"x": tt.value})
			if tt.wantError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidator_Constraints(t *testing.T) {
	one := 1
	lo := 1.0
	no := false

	tests := []struct {
		name      string
		schema    *Schema
		data      map[string]any
		wantError bool
	}{
		{
			name:   "enum match",
			schema: object(map[string]*Schema{"level": {Type: typ("string"), Enum: []any{"debug", "info"}}}),
			data:   map[string]any{"level": "info"},
		},
		{
			name:      "enum mismatch",
			schema:    object(map[string]*Schema{"level": {Type: typ("string"), Enum: []any{"debug", "info"}}}),
			data:      map[string]any{"level": "loud"},
			wantError: true,
		},
		{
			name:      "min length",
			schema:    object(map[string]*Schema{"key": {Type: typ("string"), MinLength: &one}}),
			data:      map[string]any{"key": ""},
			wantError: true,
		},
		{
			name:      "minimum",
			schema:    object(map[string]*Schema{"n": {Type: typ("integer"), Minimum: &lo}}),
			data:      map[string]any{"n": int64(0)},
			wantError: true,
		},
		{
			name:   "pattern",
			schema: object(map[string]*Schema{"m": {Type: typ("string"), Pattern: "^(?i)(ctrl|alt)$"}}),
			data:   map[string]any{"m": "Ctrl"},
		},
		{
			name:      "pattern mismatch",
			schema:    object(map[string]*Schema{"m": {Type: typ("string"), Pattern: "^(?i)(ctrl|alt)$"}}),
			data:      map[string]any{"m": "fn"},
			wantError: true,
		},
		{
			name:      "duration",
			schema:    object(map[string]*Schema{"d": {Type: typ("string"), Format: "duration"}}),
			data:      map[string]any{"d": "soon"},
			wantError: true,
		},
		{
			name:      "unique items",
			schema:    object(map[string]*Schema{"a": {Type: typ("array"), UniqueItems: true}}),
			data:      map[string]any{"a": []any{"ctrl", "ctrl"}},
			wantError: true,
		},
		{
			name:      "required",
			schema:    &Schema{Type: typ("object"), Required: []string{"key"}},
			data:      map[string]any{},
			wantError: true,
		},
		{
			name:   "additional allowed by default",
			schema: object(nil),
			data:   map[string]any{"extra": 1},
		},
		{
			name:      "additional rejected",
			schema:    &Schema{Type: typ("object"), AdditionalProperties: &no},
			data:      map[string]any{"extra": 1},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidator(tt.schema).Validate(tt.data)
			if tt.wantError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidator_ConfigDocuments(t *testing.T) {
	s, err := Config()
	if err != nil {
		t.Fatalf("Config() error: %v", err)
	}
	v := NewValidator(s)

	valid := map[string]any{
		"editor": map[string]any{"poll_interval": "250ms", "extend_defaults": true},
		"log":    map[string]any{"level": "debug", "file": "keycore.log", "format": "json"},
		"keymaps": []any{
			map[string]any{"key": "q", "modifiers": []any{"ctrl"}, "command": "quit"},
			map[string]any{"key": "i", "when": "mode == normal", "command": "mode", "arg": "insert"},
		},
	}
	if err := v.Validate(valid); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}
	if err := v.Validate(map[string]any{}); err != nil {
		t.Fatalf("empty document rejected: %v", err)
	}

	tests := []struct {
		name string
		data map[string]any
		path string
		rule Rule
	}{
		{"unknown section", map[string]any{"theme": "dark"}, "theme", RuleUnknown},
		{"bad level", map[string]any{"log": map[string]any{"level": "loud"}}, "log.level", RuleEnum},
		{"bad duration", map[string]any{"editor": map[string]any{"poll_interval": "fast"}}, "editor.poll_interval", RuleFormat},
		{"missing command", map[string]any{"keymaps": []any{map[string]any{"key": "q"}}}, "keymaps[0].command", RuleRequired},
		{"unknown command", map[string]any{"keymaps": []any{map[string]any{"key": "q", "command": "explode"}}}, "keymaps[0].command", RuleEnum},
		{"bad modifier", map[string]any{"keymaps": []any{map[string]any{"key": "q", "command": "quit", "modifiers": []any{"fn"}}}}, "keymaps[0].modifiers[0]", RulePattern},
		{"entry not object", map[string]any{"keymaps": []any{"q"}}, "keymaps[0]", RuleType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.data)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("errors.Is(err, ErrInvalid) = false")
			}
			var verrs *ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("error type = %T", err)
			}
			at := verrs.ForPath(tt.path)
			if len(at) == 0 {
				t.Fatalf("no error at %q: %v", tt.path, err)
			}
			if at[0].Rule != tt.rule {
				t.Errorf("Rule = %q, want %q (%v)", at[0].Rule, tt.rule, at[0])
			}
		})
	}
}

func TestValidator_MaxErrors(t *testing.T) {
	no := false
	v := NewValidator(&Schema{Type: typ("object"), AdditionalProperties: &no}).WithMaxErrors(1)
	err := v.Validate(map[string]any{"a": 1, "b": 2, "c": 3})

	var verrs *ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("error type = %T", err)
	}
	if verrs.Len() != 1 {
		t.Errorf("Len() = %d", verrs.Len())
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := &ValidationErrors{}
	if errs.err() != nil {
		t.Error("empty errors should be nil")
	}
	errs.add("log.level", RuleEnum, "loud", "bad")
	if got := errs.Error(); got != "log.level: bad" {
		t.Errorf("Error() = %q", got)
	}
	errs.add("", RuleType, nil, "worse")
	if got := errs.Error(); !strings.HasPrefix(got, "2 validation errors:") {
		t.Errorf("Error() = %q", got)
	}
}
