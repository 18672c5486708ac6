package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultDBPath   = "music.db"
	DefaultLogLevel = "info"

	// EnvPrefix prefixes environment overrides, e.g. MUSICDB_DB_PATH for db_path
	EnvPrefix = "MUSICDB_"
)

// Config holds the resolved application settings
type Config struct {
	DBPath   string
	LogLevel string
	LogFile  string
	// Seed controls whether sample data is inserted on start
	Seed bool
}

// Settings is a flat key/value view over an optional TOML file.
// Nested tables are flattened to dotted keys ("log.max_size_mb").
// Environment variables take precedence over file values.
type Settings struct {
	values map[string]string
	getenv func(string) string
}

// Load reads settings from the TOML file at path. An empty path yields
// settings backed only by the environment.
func Load(path string) (*Settings, error) {
	s := &Settings{values: map[string]string{}, getenv: os.Getenv}
	if path == "" {
		return s, nil
	}

	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	flatten("", raw, s.values)

	return s, nil
}

// GetSetting returns the value for key, or "" when unset
func (s *Settings) GetSetting(key string) (string, error) {
	if s.getenv != nil {
		if val := s.getenv(EnvKey(key)); val != "" {
			return val, nil
		}
	}
	return s.values[key], nil
}

// Keys returns the file-provided keys in sorted order
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve builds a Config from the loader's settings and defaults
func Resolve(loader *Loader) *Config {
	return &Config{
		DBPath:   loader.String("db_path", DefaultDBPath),
		LogLevel: loader.String("log.level", DefaultLogLevel),
		LogFile:  loader.String("log.file", ""),
		Seed:     loader.Bool("seed", true),
	}
}

// EnvKey maps a dotted setting key to its environment variable name
func EnvKey(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func flatten(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = fmt.Sprint(v)
	}
}
