package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dshills/keycore/internal/config/loader"
	"github.com/dshills/keycore/internal/config/schema"
	"github.com/dshills/keycore/internal/input/keymap"
	"github.com/dshills/keycore/internal/logging"
)

// UserTableName names the keymap table compiled from the config file.
const UserTableName = "user"

// Config is the typed keycore configuration.
type Config struct {
	Editor  EditorConfig   `json:"editor" toml:"editor" yaml:"editor"`
	Log     LogConfig      `json:"log" toml:"log" yaml:"log"`
	Keymaps []keymap.Entry `json:"keymaps,omitempty" toml:"keymaps,omitempty" yaml:"keymaps,omitempty"`

	// Source is the config file that was read, or "" if none was.
	Source string `json:"-" toml:"-" yaml:"-"`
}

// EditorConfig holds editor behaviour settings.
type EditorConfig struct {
	// PollInterval is how long the run loop waits for a key, as a Go
	// duration string.
	PollInterval string `json:"poll_interval" toml:"poll_interval" yaml:"poll_interval"`

	// ExtendDefaults keeps the built-in bindings after the configured ones.
	ExtendDefaults bool `json:"extend_defaults" toml:"extend_defaults" yaml:"extend_defaults"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `json:"level" toml:"level" yaml:"level"`
	File   string `json:"file,omitempty" toml:"file,omitempty" yaml:"file,omitempty"`
	Format string `json:"format" toml:"format" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{PollInterval: "300ms"},
		Log:    LogConfig{Level: "info", Format: string(logging.FormatText)},
	}
}

// Option configures Load.
type Option func(*options)

type options struct {
	path      string
	fs        loader.FileSystem
	env       *loader.EnvLoader
	overrides map[string]any
}

// WithPath sets the config file to read. Its extension selects the codec.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithFS sets the file system the config file is read from.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithEnv replaces the environment loader. A nil loader disables the
// environment layer.
func WithEnv(env *loader.EnvLoader) Option {
	return func(o *options) {
		o.env = env
	}
}

// WithOverride sets a value at a dot-separated path above every other layer.
// Command line flags use it.
func WithOverride(path string, value any) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[string]any)
		}
		loader.SetPath(o.overrides, path, value)
	}
}

// Load assembles the configuration from defaults, the config file, the
// environment and overrides, validates it and decodes it.
func Load(opts ...Option) (*Config, error) {
	o := &options{env: loader.NewEnvLoader(loader.DefaultEnvPrefix)}
	for _, opt := range opts {
		opt(o)
	}

	s, err := schema.Config()
	if err != nil {
		return nil, err
	}

	doc, err := Default().document()
	if err != nil {
		return nil, err
	}

	var source string
	if o.path != "" {
		fileDoc, err := loader.NewFileLoader(o.fs).Load(o.path)
		if err != nil {
			return nil, err
		}
		if fileDoc != nil {
			if err := schema.NewValidator(s).Validate(fileDoc); err != nil {
				return nil, fmt.Errorf("config file %s: %w", o.path, err)
			}
			doc = loader.DeepMerge(doc, fileDoc)
			source = o.path
		}
	}

	if o.env != nil {
		envDoc, err := o.env.Load()
		if err != nil {
			return nil, fmt.Errorf("reading environment: %w", err)
		}
		envDoc, err = coerce(s, envDoc)
		if err != nil {
			return nil, fmt.Errorf("environment: %w", err)
		}
		doc = loader.DeepMerge(doc, envDoc)
	}

	doc = loader.DeepMerge(doc, o.overrides)

	if err := schema.NewValidator(s).Validate(doc); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	cfg, err := fromDocument(doc)
	if err != nil {
		return nil, err
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// document converts c to its generic form.
func (c *Config) document() (map[string]any, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding configuration: %w", err)
	}
	doc := map[string]any{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("encoding configuration: %w", err)
	}
	return doc, nil
}

func fromDocument(doc map[string]any) (*Config, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

// coerce converts the string values of an environment document to the
// types the schema declares. Paths the schema does not know are dropped.
func coerce(s *schema.Schema, env map[string]any) (map[string]any, error) {
	out := make(map[string]any)
	var firstErr error

	loader.Walk(env, func(path string, value any) {
		prop := s.Property(path)
		str, ok := value.(string)
		if prop == nil || !ok || firstErr != nil {
			return
		}

		var v any = str
		var err error
		switch {
		case prop.Type.Is("boolean"):
			v, err = strconv.ParseBool(str)
		case prop.Type.Is("integer"):
			v, err = strconv.ParseInt(str, 10, 64)
		case prop.Type.Is("number"):
			v, err = strconv.ParseFloat(str, 64)
		}
		if err != nil {
			firstErr = &FieldError{Path: path, Value: str, Err: err}
			return
		}
		loader.SetPath(out, path, v)
	})

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// Validate checks the values the schema cannot: durations, log levels and
// that every keymap entry compiles.
func (c *Config) Validate() error {
	if _, err := c.PollInterval(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return &FieldError{Path: "log.level", Value: c.Log.Level, Err: err}
	}
	switch logging.Format(c.Log.Format) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return &FieldError{Path: "log.format", Value: c.Log.Format, Err: fmt.Errorf("unknown log format")}
	}
	if _, err := c.Table(); err != nil {
		return err
	}
	return nil
}

// PollInterval parses Editor.PollInterval. The interval must be positive.
func (c *Config) PollInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Editor.PollInterval)
	if err != nil {
		return 0, &FieldError{Path: "editor.poll_interval", Value: c.Editor.PollInterval, Err: err}
	}
	if d <= 0 {
		return 0, &FieldError{Path: "editor.poll_interval", Value: c.Editor.PollInterval, Err: fmt.Errorf("must be positive")}
	}
	return d, nil
}

// Logging returns the logger configuration.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:  c.Log.Level,
		File:   c.Log.File,
		Format: logging.Format(c.Log.Format),
	}
}

// Table compiles the configured keymap. Without keymap entries the
// built-in table is used; with Editor.ExtendDefaults the built-in
// bindings follow the configured ones.
func (c *Config) Table() (*keymap.Table, error) {
	defaults := keymap.DefaultTable()
	if len(c.Keymaps) == 0 {
		return defaults, nil
	}

	user, err := keymap.Compile(UserTableName, c.Keymaps)
	if err != nil {
		return nil, err
	}
	if c.Editor.ExtendDefaults {
		return user.Concat(UserTableName+"+"+defaults.Name, defaults), nil
	}
	return user, nil
}

// Encode renders the configuration in the given format.
func (c *Config) Encode(format loader.Format) ([]byte, error) {
	return loader.Encode(format, c)
}
