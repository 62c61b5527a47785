// Package config loads the keycore configuration.
//
// Configuration is assembled from layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← KEYCORE_LOG_LEVEL, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← keycore.toml, .json, .yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The merged document is checked against the JSON Schema in package schema
// and then decoded into a Config. A missing config file is not an error.
//
// # Sub-packages
//
//   - loader: file and environment loading, codecs for TOML, JSON and YAML
//   - schema: the published JSON Schema and its validator
//
// # Basic Usage
//
//	cfg, err := config.Load(config.WithPath("keycore.toml"))
//	if err != nil {
//	    return err
//	}
//	table, err := cfg.Table()
//
// Keymaps are read once, before the editor starts. There is no live reload.
package config
