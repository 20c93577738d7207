// Package config loads, normalizes, and validates irweave's TOML
// configuration.
//
// Load resolves the file (explicit flag, IRWEAVE_CONFIG, the default
// user path, then a project-local irweave.toml), merges it over the
// repository defaults, expands ~ in every path field, and validates the
// result. Other packages receive a fully-resolved Config and never touch
// the file themselves.
package config
