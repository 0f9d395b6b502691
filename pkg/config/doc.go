// Package config handles configuration management for superflow.
//
// Configuration is layered with koanf: the embedded defaults, then an optional
// superflow.toml (or .superflow.toml, or the file given with --config), then
// SUPERFLOW_* environment variables, then explicit overrides from command-line
// flags. It is resolved once per process and passed to the components that
// need it; nothing else reads SUPERFLOW_* variables.
package config
