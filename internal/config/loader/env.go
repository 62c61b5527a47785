package loader

import (
	"os"
	"strings"
)

// DefaultEnvPrefix is the prefix of keycore environment variables.
const DefaultEnvPrefix = "KEYCORE_"

// EnvLoader loads configuration from environment variables.
//
// Values are returned as strings; the caller converts them to the type the
// configuration expects at each path.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "KEYCORE_")
	mapping map[string]string // Env var -> config path
	lookup  func(string) (string, bool)
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "KEYCORE_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		lookup:  os.LookupEnv,
		environ: os.Environ,
	}
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	l := NewEnvLoader(prefix)
	l.mapping = mapping
	return l
}

// WithEnviron makes the loader read variables from env, a list of
// "KEY=value" pairs, instead of the process environment.
func (l *EnvLoader) WithEnviron(env []string) *EnvLoader {
	vars := make(map[string]string, len(env))
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	l.lookup = func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
	l.environ = func() []string { return env }
	return l
}

func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LOG_LEVEL":       "log.level",
		prefix + "LOG_FILE":        "log.file",
		prefix + "LOG_FORMAT":      "log.format",
		prefix + "POLL_INTERVAL":   "editor.poll_interval",
		prefix + "EXTEND_DEFAULTS": "editor.extend_defaults",
	}
}

// Load reads environment variables and returns a configuration document.
// Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	doc := make(map[string]any)

	for env, path := range l.mapping {
		if val, ok := l.lookup(env); ok {
			SetPath(doc, path, val)
		}
	}

	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if _, mapped := l.mapping[name]; mapped {
			continue
		}
		if path := l.envToPath(name); path != "" {
			SetPath(doc, path, value)
		}
	}

	return doc, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// envToPath converts KEYCORE_EDITOR_POLL_INTERVAL to editor.poll_interval.
// The first word names the section and the rest the setting.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, setting, ok := strings.Cut(name, "_")
	if !ok || section == "" || setting == "" {
		return ""
	}
	return section + "." + setting
}
