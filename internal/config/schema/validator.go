package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
)

// Validator validates decoded configuration documents against a schema.
//
// Documents are the generic form produced by the JSON, TOML and YAML
// decoders: map[string]any, []any and scalar values.
type Validator struct {
	schema    *Schema
	maxErrors int

	patterns sync.Map // map[string]*regexp.Regexp
}

// NewValidator creates a validator for the given schema.
func NewValidator(schema *Schema) *Validator {
	return &Validator{schema: schema, maxErrors: 100}
}

// WithMaxErrors sets the maximum number of errors to collect.
func (v *Validator) WithMaxErrors(max int) *Validator {
	v.maxErrors = max
	return v
}

// Validate validates data against the schema. The returned error is a
// *ValidationErrors or nil.
func (v *Validator) Validate(data map[string]any) error {
	if v.schema == nil {
		return nil
	}

	errs := &ValidationErrors{}
	v.validateValue("", data, v.schema, errs)
	return errs.err()
}

func (v *Validator) validateValue(path string, value any, schema *Schema, errs *ValidationErrors) {
	if schema == nil || v.full(errs) {
		return
	}

	if schema.Ref != "" {
		ref := v.resolveRef(schema.Ref)
		if ref == nil {
			errs.add(path, RuleRef, nil, "unresolved reference %s", schema.Ref)
			return
		}
		v.validateValue(path, value, ref, errs)
		return
	}

	if len(schema.Enum) > 0 {
		v.validateEnum(path, value, schema.Enum, errs)
	}

	if !schema.Type.IsEmpty() {
		v.validateType(path, value, schema, errs)
	}
}

func (v *Validator) full(errs *ValidationErrors) bool {
	return v.maxErrors > 0 && errs.Len() >= v.maxErrors
}

func (v *Validator) validateType(path string, value any, schema *Schema, errs *ValidationErrors) {
	if value == nil {
		if !schema.Type.Is("null") {
			errs.add(path, RuleType, nil, "expected %s, got null", schema.Type)
		}
		return
	}

	for _, typ := range schema.Type.Types {
		if !matchesType(value, typ) {
			continue
		}
		switch typ {
		case "string":
			v.validateString(path, value.(string), schema, errs)
		case "number", "integer":
			v.validateNumber(path, value, schema, errs)
		case "array":
			v.validateArray(path, value.([]any), schema, errs)
		case "object":
			v.validateObject(path, value.(map[string]any), schema, errs)
		}
		return
	}

	errs.add(path, RuleType, value, "expected %s, got %s", schema.Type, typeName(value))
}

func matchesType(value any, typ string) bool {
	switch typ {
	case "string":
		_, ok := value.(string)
		return ok
	case "number":
		_, ok := toFloat64(value)
		return ok
	case "integer":
		return isInteger(value)
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "array":
		_, ok := value.([]any)
		return ok
	case "object":
		_, ok := value.(map[string]any)
		return ok
	case "null":
		return value == nil
	default:
		return false
	}
}

func (v *Validator) validateString(path, value string, schema *Schema, errs *ValidationErrors) {
	if n := len([]rune(value)); schema.MinLength != nil && n < *schema.MinLength {
		errs.add(path, RuleMinLength, value, "length %d is below the minimum %d", n, *schema.MinLength)
	}

	if schema.Pattern != "" && !v.matchPattern(value, schema.Pattern) {
		errs.add(path, RulePattern, value, "%q does not match %s", value, schema.Pattern)
	}

	if schema.Format == "duration" {
		if _, err := time.ParseDuration(value); err != nil {
			errs.add(path, RuleFormat, value, "%q is not a duration such as 300ms", value)
		}
	}
}

func (v *Validator) validateNumber(path string, value any, schema *Schema, errs *ValidationErrors) {
	f, _ := toFloat64(value)
	if (schema.Minimum != nil && f < *schema.Minimum) || (schema.Maximum != nil && f > *schema.Maximum) {
		errs.add(path, RuleRange, value, "%v is out of range, want %s", value, rangeText(schema.Minimum, schema.Maximum))
	}
}

func (v *Validator) validateArray(path string, arr []any, schema *Schema, errs *ValidationErrors) {
	if schema.UniqueItems {
		seen := make(map[string]bool, len(arr))
		for i, item := range arr {
			k, err := json.Marshal(item)
			key := string(k)
			if err != nil {
				key = fmt.Sprintf("%v", item)
			}
			if seen[key] {
				errs.add(path, RuleUnique, item, "duplicate item %v at index %d", item, i)
				break
			}
			seen[key] = true
		}
	}

	if schema.Items != nil {
		for i, item := range arr {
			v.validateValue(fmt.Sprintf("%s[%d]", path, i), item, schema.Items, errs)
		}
	}
}

func (v *Validator) validateObject(path string, obj map[string]any, schema *Schema, errs *ValidationErrors) {
	for _, req := range schema.Required {
		if _, ok := obj[req]; !ok {
			errs.add(joinPath(path, req), RuleRequired, nil, "required field is missing")
		}
	}

	for name, propValue := range obj {
		if v.full(errs) {
			return
		}
		propPath := joinPath(path, name)
		if propSchema, ok := schema.Properties[name]; ok {
			v.validateValue(propPath, propValue, propSchema, errs)
		} else if !schema.AllowsAdditionalProperties() {
			errs.add(propPath, RuleUnknown, propValue, "unknown property")
		}
	}
}

func (v *Validator) validateEnum(path string, value any, allowed []any, errs *ValidationErrors) {
	for _, a := range allowed {
		if valuesEqual(value, a) {
			return
		}
	}
	errs.add(path, RuleEnum, value, "%v is not one of %v", value, allowed)
}

// resolveRef resolves a "#/$defs/Name" reference against the root schema.
func (v *Validator) resolveRef(ref string) *Schema {
	name, ok := strings.CutPrefix(ref, "#/$defs/")
	if !ok || v.schema.Defs == nil {
		return nil
	}
	return v.schema.Defs[name]
}

func (v *Validator) matchPattern(value, pattern string) bool {
	if cached, ok := v.patterns.Load(pattern); ok {
		return cached.(*regexp.Regexp).MatchString(value)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	v.patterns.Store(pattern, re)
	return re.MatchString(value)
}

// toFloat64 converts the numeric types produced by the config decoders.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func isInteger(v any) bool {
	switch n := v.(type) {
	case int, int64, uint64:
		return true
	case float64:
		return n == float64(int64(n))
	default:
		return false
	}
}

func valuesEqual(a, b any) bool {
	fa, aNum := toFloat64(a)
	fb, bNum := toFloat64(b)
	if aNum && bNum {
		return fa == fb
	}
	if aNum != bNum {
		return false
	}
	return a == b
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	if isInteger(v) {
		return "integer"
	}
	if _, ok := toFloat64(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
