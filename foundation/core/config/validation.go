// File: validation.go
// Title: Configuration Validation Implementation
// Description: Checks configuration values against declarative rules:
//              presence, type and a closed set of allowed values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-19 v0.2.0: Enumerated values, single structured error result

package config

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/seqkit/foundation/core/error"
	"github.com/msto63/seqkit/foundation/utils/mapx"
	"github.com/msto63/seqkit/foundation/utils/slicex"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool
	Type     string   // "string", "int", "bool" or "[]string"; empty skips the check
	OneOf    []string // allowed values, compared case-insensitively
	Default  interface{}
}

// ValidationRules maps dotted configuration keys to their rules
type ValidationRules map[string]ValidationRule

// Validate checks every rule and fills in defaults for absent optional keys.
// All problems are reported together in one INVALID_CONFIG error.
func (c *Config) Validate(rules ValidationRules) error {
	var problems []string
	for _, key := range mapx.SortedKeys(rules) {
		if problem := c.validateField(key, rules[key]); problem != "" {
			problems = append(problems, problem)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(problems, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("problems", problems)
}

func (c *Config) validateField(key string, rule ValidationRule) string {
	var value interface{}
	envValue, fromEnv := c.getEnvValue(key)
	if fromEnv {
		value = envValue
	} else {
		value = c.getValue(key)
	}

	if value == nil {
		if rule.Required {
			return fmt.Sprintf("required field '%s' is missing", key)
		}
		if rule.Default != nil {
			c.Set(key, rule.Default)
		}
		return ""
	}

	// environment overrides are always text
	if rule.Type != "" && !fromEnv && !hasType(value, rule.Type) {
		return fmt.Sprintf("field '%s' must be of type %s, got %T", key, rule.Type, value)
	}

	if len(rule.OneOf) > 0 {
		text := strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", value)))
		if slicex.Contains(slicex.Map(rule.OneOf, strings.ToLower), text) {
			return ""
		}
		return fmt.Sprintf("field '%s' must be one of [%s], got '%v'", key, strings.Join(rule.OneOf, ", "), value)
	}

	return ""
}

func hasType(value interface{}, expected string) bool {
	switch expected {
	case "string":
		_, ok := value.(string)
		return ok
	case "int":
		switch v := value.(type) {
		case int, int64:
			return true
		case float64:
			return v == float64(int64(v))
		}
		return false
	case "bool":
		_, ok := value.(bool)
		return ok
	case "[]string":
		switch value.(type) {
		case []string, []interface{}, string:
			return true
		}
		return false
	default:
		return false
	}
}
