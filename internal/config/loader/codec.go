package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Format  Format
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Decode parses data in the given format into a document. Source names the
// input in errors. Empty input decodes to an empty document.
func Decode(format Format, source string, data []byte) (map[string]any, error) {
	doc := map[string]any{}
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return doc, nil
		}
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return nil, newParseError(format, source, data, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// Encode renders v in the given format. V is usually a typed configuration
// value carrying toml, json and yaml struct tags.
func Encode(format Format, v any) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(v)
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

var yamlLine = regexp.MustCompile(`^yaml: line (\d+): (.*)$`)

func newParseError(format Format, source string, data []byte, err error) *ParseError {
	pe := &ParseError{Path: source, Format: format, Message: err.Error(), Err: err}

	var tomlErr *toml.DecodeError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &tomlErr):
		pe.Line, pe.Column = tomlErr.Position()
	case errors.As(err, &syntaxErr):
		pe.Line, pe.Column = position(data, syntaxErr.Offset)
	case errors.As(err, &typeErr):
		pe.Line, pe.Column = position(data, typeErr.Offset)
	default:
		if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
			pe.Line, _ = strconv.Atoi(m[1])
			pe.Message = m[2]
		}
	}
	return pe
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
