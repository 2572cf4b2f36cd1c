// Package config loads, normalizes, and validates typograph's CLI
// configuration.
//
// It supplies repository defaults, reads TOML files (the user config at
// ~/.config/typograph/config.toml or a project-local typograph.toml),
// and exposes adapters that turn the file-backed settings into the
// explicit values the library packages take. The engine itself never
// reads configuration; only the CLI front end goes through this
// package.
package config
