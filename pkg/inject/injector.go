package inject

import (
	"context"

	"github.com/superflow-dev/superflow-extension/pkg/config"
	"github.com/superflow-dev/superflow-extension/pkg/errors"
	"github.com/superflow-dev/superflow-extension/pkg/types"
)

// Injector upserts the payload into its backend
type Injector interface {
	Inject(ctx context.Context) (*Report, error)
}

// Target is what a run needs to know about the build it runs in
type Target struct {
	PublishDir string
	SiteID     string
	Token      string
}

// Backends are the storage implementations an injector may use
type Backends struct {
	FS      types.FS
	Snippet SnippetStore
}

// New returns the injector selected by cfg.Inject.Mode
func New(cfg *config.Config, target Target, backends Backends) (Injector, error) {
	payload := PayloadFromConfig(cfg.Payload)

	switch cfg.Inject.Mode {
	case config.ModeFiles:
		if backends.FS == nil {
			return nil, errors.New(errors.ErrInternal, "file injection needs a filesystem")
		}
		return &FileInjector{
			FS:      backends.FS,
			Root:    target.PublishDir,
			Payload: payload,
			Walk: WalkOptions{
				Extension:   cfg.Walk.Extension,
				ExcludeDirs: cfg.Walk.ExcludeDirs,
			},
			DryRun: cfg.Inject.DryRun,
		}, nil

	case config.ModeSnippet:
		position, err := ParseSnippetPosition(cfg.Snippet.Position)
		if err != nil {
			return nil, err
		}
		if backends.Snippet == nil {
			return nil, errors.New(errors.ErrInternal, "snippet injection needs a snippet store")
		}
		return &SnippetInjector{
			Store:    backends.Snippet,
			SiteID:   target.SiteID,
			Token:    target.Token,
			Title:    cfg.Snippet.Title,
			Position: position,
			Payload:  payload,
			Compare:  cfg.Snippet.Compare,
			DryRun:   cfg.Inject.DryRun,
		}, nil

	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unknown injection mode %q", cfg.Inject.Mode)
	}
}
