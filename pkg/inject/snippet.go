package inject

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/superflow-dev/superflow-extension/pkg/config"
	"github.com/superflow-dev/superflow-extension/pkg/errors"
	"github.com/superflow-dev/superflow-extension/pkg/logging"
	"github.com/superflow-dev/superflow-extension/pkg/netlify"
)

// SnippetPosition is where the platform places a snippet in each page
type SnippetPosition string

const (
	PositionHead   SnippetPosition = "head"
	PositionFooter SnippetPosition = "footer"
)

// ParseSnippetPosition accepts "head" or "footer", case-insensitively
func ParseSnippetPosition(s string) (SnippetPosition, error) {
	switch SnippetPosition(strings.ToLower(strings.TrimSpace(s))) {
	case PositionHead:
		return PositionHead, nil
	case PositionFooter:
		return PositionFooter, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown snippet position %q", s)
	}
}

// SnippetStore is the remote snippet API
type SnippetStore interface {
	ListSnippets(ctx context.Context, siteID string) ([]netlify.Snippet, error)
	CreateSnippet(ctx context.Context, siteID string, s netlify.Snippet) (*netlify.Snippet, error)
	UpdateSnippet(ctx context.Context, siteID string, id int, s netlify.Snippet) (*netlify.Snippet, error)
}

// SnippetInjector keeps exactly one snippet titled Title equal to Payload.
// The title, not the remote id, is the identity key.
type SnippetInjector struct {
	Store    SnippetStore
	SiteID   string
	Token    string
	Title    string
	Position SnippetPosition
	Payload  Payload
	// Compare is config.CompareStrict (default) or config.CompareTrimmed
	Compare string
	DryRun  bool
}

// Inject lists the site's snippets and creates, updates or leaves alone the
// one named Title. A missing token or site id is reported as a skipped
// target, not an error; network problems are reported as failed.
func (s *SnippetInjector) Inject(ctx context.Context) (*Report, error) {
	logger := logging.GetLogger("inject.snippet")
	start := time.Now()

	target := "snippet:" + s.Title
	report := &Report{Mode: config.ModeSnippet, Target: s.SiteID, DryRun: s.DryRun}
	finish := func(res Result) (*Report, error) {
		report.Add(res)
		report.Duration = time.Since(start)
		return report, nil
	}

	if s.Token == "" || s.SiteID == "" {
		err := errors.New(errors.ErrConfigMissing, "snippet injection needs a site id and an API token").
			WithDetail("has_site_id", s.SiteID != "").
			WithDetail("has_token", s.Token != "")
		logger.Warn().Err(err).Msg("Skipping snippet injection")
		return finish(Result{Target: target, Outcome: OutcomeSkipped, Err: err})
	}
	if err := s.Payload.Validate(); err != nil {
		return nil, err
	}

	desired := netlify.Snippet{
		Title:    s.Title,
		General:  s.Payload.Content,
		Position: string(s.Position),
	}

	snippets, err := s.Store.ListSnippets(ctx, s.SiteID)
	if err != nil {
		logger.Error().Err(err).Str("site_id", s.SiteID).Msg("Failed to list snippets")
		return finish(Result{Target: target, Outcome: OutcomeFailed, Err: err})
	}

	existing := findSnippet(logger, snippets, s.Title)
	if existing == nil {
		if s.DryRun {
			logger.Info().Str("site_id", s.SiteID).Msg("Would create snippet (dry run)")
			return finish(Result{Target: target, Outcome: OutcomeInjected})
		}
		created, err := s.Store.CreateSnippet(ctx, s.SiteID, desired)
		if err != nil {
			logger.Error().Err(err).Str("site_id", s.SiteID).Msg("Failed to create snippet")
			return finish(Result{Target: target, Outcome: OutcomeFailed, Err: err})
		}
		id := 0
		if created != nil {
			id = created.ID
		}
		logger.Info().Str("site_id", s.SiteID).Int("snippet_id", id).Msg("Created snippet")
		return finish(Result{Target: target, Outcome: OutcomeInjected, SnippetID: id})
	}

	if s.equal(*existing, desired) {
		logger.Info().Str("site_id", s.SiteID).Int("snippet_id", existing.ID).Msg("Snippet up to date")
		return finish(Result{Target: target, Outcome: OutcomeUpToDate, SnippetID: existing.ID})
	}

	if s.DryRun {
		logger.Info().Int("snippet_id", existing.ID).Msg("Would update snippet (dry run)")
		return finish(Result{Target: target, Outcome: OutcomeUpdated, SnippetID: existing.ID})
	}
	if _, err := s.Store.UpdateSnippet(ctx, s.SiteID, existing.ID, desired); err != nil {
		logger.Error().Err(err).Str("site_id", s.SiteID).Int("snippet_id", existing.ID).Msg("Failed to update snippet")
		return finish(Result{Target: target, Outcome: OutcomeFailed, SnippetID: existing.ID, Err: err})
	}
	logger.Info().Str("site_id", s.SiteID).Int("snippet_id", existing.ID).Msg("Updated snippet")
	return finish(Result{Target: target, Outcome: OutcomeUpdated, SnippetID: existing.ID})
}

// equal compares content and position; under the trimmed policy surrounding
// whitespace of the content is ignored
func (s *SnippetInjector) equal(existing, desired netlify.Snippet) bool {
	if existing.Position != desired.Position {
		return false
	}
	if s.Compare == config.CompareTrimmed {
		return strings.TrimSpace(existing.General) == strings.TrimSpace(desired.General)
	}
	return existing.General == desired.General
}

// findSnippet returns the first snippet with exactly this title
func findSnippet(logger zerolog.Logger, snippets []netlify.Snippet, title string) *netlify.Snippet {
	var found *netlify.Snippet
	for i := range snippets {
		if snippets[i].Title != title {
			continue
		}
		if found != nil {
			logger.Warn().
				Str("title", title).
				Int("kept", found.ID).
				Int("ignored", snippets[i].ID).
				Msg("Duplicate snippet title, using the first one")
			continue
		}
		found = &snippets[i]
	}
	return found
}
