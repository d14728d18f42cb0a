// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements configuration file discovery across a list of
//              directories and formats.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: User config directory in default search paths

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/timescale/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search order for an application: the
// working directory, the user config directory and /etc
func DefaultDiscoveryOptions(app string) DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, app))
	}
	paths = append(paths, filepath.Join("/etc", app))

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{app, "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  strings.ToUpper(app),
		Required:   false,
	}
}

// Discover loads the first configuration file found. If none exists and the
// file is not required, an empty configuration honoring the environment
// prefix is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if !options.Required && mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			return Empty(options.EnvPrefix), nil
		}
		return nil, err
	}

	config, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", path)).
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return config, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	searched := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(dir, filename+ext)
				if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
					return candidate, nil
				}
				searched = append(searched, candidate)
			}
		}
	}

	return "", mdwerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searched, ", "))).
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", searched)
}
