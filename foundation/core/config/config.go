// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing and accessing
//              configuration data from TOML and YAML files with environment
//              variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Dotted-key defaults, uncached env lookups, dropped watching

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/seqkit/foundation/core/error"
	mdwstringx "github.com/msto63/seqkit/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format
	EnvPrefix string

	// Defaults are keyed by dotted path and fill only absent keys
	Defaults map[string]interface{}
}

// New returns an empty configuration that still honours environment
// overrides under envPrefix and the given defaults.
func New(envPrefix string, defaults map[string]interface{}) *Config {
	data := make(map[string]interface{})
	applyDefaults(data, defaults)
	return &Config{
		data:      data,
		format:    FormatAuto,
		envPrefix: envPrefix,
	}
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if mdwstringx.IsBlank(filePath) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}
	applyDefaults(data, options.Defaults)

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.parseContent")
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

func applyDefaults(data, defaults map[string]interface{}) {
	for key, value := range defaults {
		if lookup(data, key) == nil {
			setNested(data, key, value)
		}
	}
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if envValue, ok := c.getEnvValue(key); ok {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if envValue, ok := c.getEnvValue(key); ok {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if envValue, ok := c.getEnvValue(key); ok {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetStringSlice returns a string slice configuration value with optional
// default. An environment override is split on commas.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	if envValue, ok := c.getEnvValue(key); ok {
		return strings.Split(envValue, ",")
	}

	switch v := c.getValue(key).(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return []string{v}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

func (c *Config) getValue(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lookup(c.data, key)
}

// lookup resolves a dotted key against nested maps
func lookup(data map[string]interface{}, key string) interface{} {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func setNested(data map[string]interface{}, key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// getEnvValue reports the environment override for key, if set and non-empty
func (c *Config) getEnvValue(key string) (string, bool) {
	value, ok := os.LookupEnv(c.EnvKey(key))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// EnvKey returns the environment variable that overrides key, e.g.
// seqx.classifier -> SEQKIT_SEQX_CLASSIFIER for prefix "seqkit"
func (c *Config) EnvKey(key string) string {
	c.mu.RLock()
	prefix := c.envPrefix
	c.mu.RUnlock()

	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if prefix != "" {
		envKey = strings.ToUpper(prefix) + "_" + envKey
	}
	return envKey
}

// Has checks if a configuration key exists in the file data
func (c *Config) Has(key string) bool {
	return c.getValue(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	setNested(c.data, key, value)
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// WithEnvPrefix returns a copy reading environment overrides under prefix
func (c *Config) WithEnvPrefix(prefix string) *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &Config{
		data:      deepCopyMap(c.data),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: prefix,
	}
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{fmt.Sprintf("Config{format: %s", c.format)}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))

	return strings.Join(parts, ", ")
}
