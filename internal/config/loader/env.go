package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads configuration from environment variables.
//
// Mapped variables go to their configured path. Any other variable with
// the prefix is converted by lower-casing it and splitting the section off
// at the first underscore: RED_EDITOR_TAB_WIDTH becomes editor.tab_width.
type EnvLoader struct {
	prefix  string
	mapping map[string]string
	environ func() []string
	known   map[string]bool
}

// NewEnvLoader creates a loader for variables starting with prefix, which
// should include the trailing underscore (e.g. "RED_").
func NewEnvLoader(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{prefix: prefix, mapping: mapping, environ: os.Environ}
}

// WithEnviron replaces the environment source. Used in tests.
func (l *EnvLoader) WithEnviron(environ func() []string) *EnvLoader {
	l.environ = environ
	return l
}

// WithKnownPaths restricts Load to the given setting paths. Variables
// that resolve to any other path are skipped, so unrelated variables
// sharing the prefix do not reach strict decoding.
func (l *EnvLoader) WithKnownPaths(paths ...string) *EnvLoader {
	l.known = make(map[string]bool, len(paths))
	for _, p := range paths {
		l.known[p] = true
	}
	return l
}

func (l *EnvLoader) isKnown(path string) bool {
	return l.known == nil || l.known[path]
}

// Load reads the environment and returns a configuration map.
// Empty values are kept; they are not treated as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if path == "" || !l.isKnown(path) {
			continue
		}
		setByPath(config, path, parseValue(value))
	}
	return config, nil
}

// envToPath converts RED_EDITOR_TAB_WIDTH to editor.tab_width.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return section + "." + key
}

// parseValue converts booleans and integers; anything else stays a string.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}
