// File: doc.go
// Title: Core Configuration Package Documentation
// Description: Package config provides TOML/YAML configuration loading
//              with environment variable overrides and typed accessors
//              for the KAL command line tools.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial configuration system

/*
Package config implements configuration loading for the KAL front end.

Configuration files may be TOML (default) or YAML; the format is detected
from the file extension. Values are addressed with dot notation and may be
overridden through environment variables:

	cfg, err := config.Load("kal.toml")
	level := cfg.GetString("log.level", "info")
	depth := cfg.GetInt("parser.max_nesting_depth", 200)

With EnvPrefix "KAL", the key "log.level" is overridden by the environment
variable KAL_LOG_LEVEL when set.
*/
package config
