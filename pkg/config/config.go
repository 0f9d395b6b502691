package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/superflow-dev/superflow-extension/pkg/errors"
)

// Injection modes
const (
	ModeFiles   = "files"
	ModeSnippet = "snippet"
)

// Snippet comparison policies
const (
	CompareStrict  = "strict"
	CompareTrimmed = "trimmed"
)

// Config is the fully resolved configuration for one process
type Config struct {
	Extension Extension `koanf:"extension"`
	Inject    Inject    `koanf:"inject"`
	Payload   Payload   `koanf:"payload"`
	Walk      Walk      `koanf:"walk"`
	Snippet   Snippet   `koanf:"snippet"`
	API       API       `koanf:"api"`
	Server    Server    `koanf:"server"`

	// raw is the merged key/value tree, kept for Dump
	raw map[string]interface{}
}

// Extension gates the build event handlers
type Extension struct {
	Enabled bool   `koanf:"enabled"`
	Slug    string `koanf:"slug"`
}

// Inject selects the content-upsert backend
type Inject struct {
	Mode   string `koanf:"mode"`
	DryRun bool   `koanf:"dry_run"`
}

// Payload describes the fragment to inject and its detection marker
type Payload struct {
	ScriptURL string `koanf:"script_url"`
	Marker    string `koanf:"marker"`
	Content   string `koanf:"content"`
}

// Walk controls publish directory enumeration
type Walk struct {
	Extension   string   `koanf:"extension"`
	ExcludeDirs []string `koanf:"exclude_dirs"`
}

// Snippet configures the remote snippet backend
type Snippet struct {
	Title    string `koanf:"title"`
	Position string `koanf:"position"`
	Compare  string `koanf:"compare"`
}

// API configures the host platform client
type API struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

// Server configures the configuration endpoint
type Server struct {
	Addr string `koanf:"addr"`
}

// Validate checks enumerated values and required keys
func (c *Config) Validate() error {
	switch c.Inject.Mode {
	case ModeFiles, ModeSnippet:
	default:
		return errors.Newf(errors.ErrConfigParse, "inject.mode must be %q or %q, got %q",
			ModeFiles, ModeSnippet, c.Inject.Mode)
	}

	switch strings.ToLower(c.Snippet.Position) {
	case "head", "footer":
	default:
		return errors.Newf(errors.ErrConfigParse, "snippet.position must be \"head\" or \"footer\", got %q",
			c.Snippet.Position)
	}

	switch c.Snippet.Compare {
	case CompareStrict, CompareTrimmed:
	default:
		return errors.Newf(errors.ErrConfigParse, "snippet.compare must be %q or %q, got %q",
			CompareStrict, CompareTrimmed, c.Snippet.Compare)
	}

	if c.Payload.Marker == "" {
		return errors.New(errors.ErrConfigParse, "payload.marker cannot be empty")
	}
	if c.Payload.Content == "" && c.Payload.ScriptURL == "" {
		return errors.New(errors.ErrConfigParse, "one of payload.content or payload.script_url is required")
	}
	if c.Payload.Content != "" && !strings.Contains(c.Payload.Content, c.Payload.Marker) {
		return errors.New(errors.ErrConfigParse, "payload.content must contain payload.marker").
			WithDetail("marker", c.Payload.Marker)
	}
	if c.Walk.Extension == "" {
		return errors.New(errors.ErrConfigParse, "walk.extension cannot be empty")
	}
	if c.Snippet.Title == "" {
		return errors.New(errors.ErrConfigParse, "snippet.title cannot be empty")
	}
	if c.API.Timeout < 0 {
		return errors.New(errors.ErrConfigParse, fmt.Sprintf("api.timeout cannot be negative: %s", c.API.Timeout))
	}
	return nil
}
