package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes YAML config bytes after checking them against the schema.
// Unset fields keep their zero value; call Normalize to apply defaults.
func Parse(data []byte) (Config, error) {
	if err := checkSchema(data); err != nil {
		return Config{}, err
	}
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads path, falling back to defaults when path does not exist
// and was not explicitly requested.
func LoadOrDefault(path string, explicit bool) (Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Config{}, err
}

// ApplyEnv overlays FASTPATH_* environment variables onto cfg.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("FASTPATH_THEME"); v != "" {
		cfg.UI.Theme = strings.ToLower(strings.TrimSpace(v))
	}
	if v := getenv("FASTPATH_BOOLEAN_STYLE"); v != "" {
		cfg.UI.BooleanStyle = strings.ToLower(strings.TrimSpace(v))
	}
	if v := getenv("FASTPATH_LOG_FILE"); v != "" {
		cfg.Log.File = strings.TrimSpace(v)
	}
	if v := getenv("FASTPATH_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FASTPATH_DEBUG: %w", err)
		}
		cfg.Log.Debug = debug
	}
	return Validate(cfg)
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
