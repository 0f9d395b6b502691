package config

import (
	"encoding/json"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/superflow-dev/superflow-extension/pkg/errors"
)

// Dump renders the effective configuration as toml, yaml or json
func (c *Config) Dump(format string) ([]byte, error) {
	raw := c.raw
	if raw == nil {
		raw = map[string]interface{}{}
	}

	switch format {
	case "", "toml":
		return toml.Marshal(raw)
	case "yaml", "yml":
		return yaml.Marshal(raw)
	case "json":
		return json.MarshalIndent(raw, "", "  ")
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format %q", format)
	}
}
