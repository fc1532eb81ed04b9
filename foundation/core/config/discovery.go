// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of directories for the first configuration
//              file with a known base name and extension.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: seqkit search paths, optional discovery yields defaults

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/seqkit/foundation/core/error"
	"github.com/msto63/seqkit/foundation/utils/filex"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order; a leading ~ is the home directory
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
	EnvPrefix  string
	Defaults   map[string]interface{}
	Required   bool // Fail when no file is found
}

// DefaultDiscoveryOptions searches ., ./configs and $HOME/.config/seqkit for
// seqkit.toml, seqkit.yaml or seqkit.yml
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Paths:      []string{".", "./configs", "~/.config/seqkit"},
		Filenames:  []string{"seqkit"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "SEQKIT",
	}
}

// Discover finds and loads the first matching configuration file. Without a
// match it returns an empty configuration carrying the defaults, or a
// NOT_FOUND error when Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		cfg, loadErr := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
		if loadErr != nil {
			return nil, mdwerror.Wrap(loadErr, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return cfg, nil
	}

	if options.Required {
		searchPaths := ListPossibleConfigFiles(options)
		return nil, mdwerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searchPaths, ", "))).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searchPaths)
	}

	return New(options.EnvPrefix, options.Defaults), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if filex.IsFile(configPath) {
			return configPath, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(filex.ExpandHome(path), filename+ext))
			}
		}
	}
	return paths
}
