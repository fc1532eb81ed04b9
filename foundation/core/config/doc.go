// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration with
//              environment overrides, dotted-key access and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: seqkit discovery paths and enumerated validation

/*
Package config provides configuration management for seqkit.

Key Features:
  - TOML and YAML with detection by file extension
  - Dotted-key access with typed getters and optional defaults
  - Environment overrides: with prefix SEQKIT the key seqx.classifier is
    overridden by SEQKIT_SEQX_CLASSIFIER
  - File discovery in ., ./configs and $HOME/.config/seqkit
  - Declarative validation reporting every problem at once

# Loading

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
	if err != nil {
		return err
	}
	classifier := cfg.GetString("seqx.classifier", "unicode")

A seqkit.toml might look like:

	[seqx]
	classifier = "ascii"

	[cli]
	encoding = "utf-16le"

	[log]
	level = "debug"
	format = "logfmt"

# Validation

	err := cfg.Validate(config.ValidationRules{
		"seqx.classifier": {Type: "string", OneOf: []string{"unicode", "ascii"}, Default: "unicode"},
	})

Validate returns a single INVALID_CONFIG error listing every violated rule.

# Thread Safety

All Config methods are safe for concurrent use.
*/
package config
