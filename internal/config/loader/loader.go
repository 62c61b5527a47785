// Package loader reads keycore configuration sources into generic documents.
//
// A document is the map[string]any form produced by the TOML, JSON and YAML
// decoders. Documents from files and from the environment are merged with
// DeepMerge and validated before they are turned into typed configuration.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a configuration file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for file extensions and format names
// that have no codec.
var ErrUnsupportedFormat = errors.New("unsupported configuration format")

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatTOML, FormatJSON, FormatYAML}
}

// ParseFormat parses a format name such as "toml" or "yml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath returns the format implied by the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// FileLoader loads configuration documents from files.
type FileLoader struct {
	fs FileSystem
}

// NewFileLoader creates a loader reading from fsys. A nil fsys reads from
// the OS file system.
func NewFileLoader(fsys FileSystem) *FileLoader {
	if fsys == nil {
		fsys = DefaultFS()
	}
	return &FileLoader{fs: fsys}
}

// Load reads and decodes the file at path, choosing the codec from its
// extension. A missing file is not an error: Load returns a nil document.
func (l *FileLoader) Load(path string) (map[string]any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return Decode(format, path, data)
}
