// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against declarative rules
//              covering presence, type and allowed values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with validation rules and struct binding
// - 2026-10-19 v0.2.0: Added OneOf, dropped struct binding and bounds

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/timescale/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool     // Whether the field is required
	Type     string   // Expected type: "string", "int", "bool"
	OneOf    []string // Allowed values, compared case-insensitively
	Pattern  string   // Regex pattern for string validation
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult collects the failures of a validation run
type ValidationResult struct {
	Errors []error
}

// Valid reports whether no rule failed
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Err combines all failures into one INVALID_CONFIG error, nil if valid
func (r *ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}

	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Error()
	}
	return mdwerror.New("configuration validation failed: "+strings.Join(messages, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("failures", len(r.Errors))
}

// Validate checks the configuration against rules. Keys are checked in
// sorted order so results are deterministic.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &ValidationResult{}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Errors = append(result.Errors, err)
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	if !c.Has(key) {
		if rule.Required {
			return fieldError(key, "required key missing")
		}
		return nil
	}

	value := c.GetString(key)

	switch rule.Type {
	case "", "string":
	case "int":
		if _, err := strconv.Atoi(value); err != nil {
			return fieldError(key, fmt.Sprintf("expected int, got %q", value))
		}
	case "bool":
		if _, err := strconv.ParseBool(value); err != nil {
			return fieldError(key, fmt.Sprintf("expected bool, got %q", value))
		}
	default:
		return fieldError(key, fmt.Sprintf("unsupported rule type %q", rule.Type))
	}

	if len(rule.OneOf) > 0 {
		allowed := false
		for _, candidate := range rule.OneOf {
			if strings.EqualFold(candidate, value) {
				allowed = true
				break
			}
		}
		if !allowed {
			return fieldError(key, fmt.Sprintf("%q is not one of %s", value, strings.Join(rule.OneOf, ", ")))
		}
	}

	if rule.Pattern != "" {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fieldError(key, fmt.Sprintf("invalid pattern %q", rule.Pattern))
		}
		if !re.MatchString(value) {
			return fieldError(key, fmt.Sprintf("%q does not match %s", value, rule.Pattern))
		}
	}

	return nil
}

func fieldError(key, reason string) error {
	return mdwerror.New(key+": "+reason).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key)
}
