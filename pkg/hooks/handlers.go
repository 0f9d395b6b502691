package hooks

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/superflow-dev/superflow-extension/pkg/config"
	"github.com/superflow-dev/superflow-extension/pkg/inject"
	"github.com/superflow-dev/superflow-extension/pkg/logging"
	"github.com/superflow-dev/superflow-extension/pkg/netlify"
	"github.com/superflow-dev/superflow-extension/pkg/siteconfig"
	"github.com/superflow-dev/superflow-extension/pkg/types"
)

// Platform is the read-only part of the platform client used for logging
type Platform interface {
	GetSite(ctx context.Context, siteID string) (*netlify.Site, error)
	GetAccount(ctx context.Context, accountID string) (*netlify.Account, error)
	GetCurrentUser(ctx context.Context) (*netlify.User, error)
}

// Handlers holds everything the build handlers need, resolved once by the caller
type Handlers struct {
	Config   *config.Config
	Platform Platform
	Configs  siteconfig.Store
	Snippets inject.SnippetStore
	FS       types.FS

	logger zerolog.Logger
}

// NewHandlers returns Handlers with a component logger
func NewHandlers(cfg *config.Config, platform Platform, configs siteconfig.Store, snippets inject.SnippetStore, fsys types.FS) *Handlers {
	return &Handlers{
		Config:   cfg,
		Platform: platform,
		Configs:  configs,
		Snippets: snippets,
		FS:       fsys,
		logger:   logging.GetLogger("hooks"),
	}
}

func (h *Handlers) enabled() bool {
	if !h.Config.Extension.Enabled {
		h.logger.Info().Msg("Build event handler not enabled")
		return false
	}
	return true
}

// OnPreBuild logs the build identity and the stored configuration
func (h *Handlers) OnPreBuild(ctx context.Context, ev Event) error {
	if !h.enabled() {
		return nil
	}

	h.logger.Info().
		Str("site_id", ev.SiteID).
		Str("account_id", ev.AccountID).
		Str("deploy_id", ev.DeployID).
		Msg("PreBuild event")

	h.logConfigurations(ctx, ev)
	return nil
}

// OnPostBuild logs platform details and then upserts the payload into the
// build output or the site's snippets. Lookup and injection failures are
// logged and reported, never returned; the error is reserved for missing
// preconditions such as an absent publish directory.
func (h *Handlers) OnPostBuild(ctx context.Context, ev Event) (*inject.Report, error) {
	if !h.enabled() {
		return nil, nil
	}

	h.logger.Info().
		Str("site_id", ev.SiteID).
		Str("deploy_id", ev.DeployID).
		Str("publish_dir", ev.PublishDir).
		Msg("PostBuild event")

	siteCfg := h.logConfigurations(ctx, ev)
	h.logPlatform(ctx, ev)

	if siteCfg != nil && !siteCfg.HandlerEnabled() {
		h.logger.Info().Str("site_id", ev.SiteID).Msg("Injection disabled for this site")
		return nil, nil
	}

	injector, err := inject.New(h.Config, inject.Target{
		PublishDir: ev.PublishDir,
		SiteID:     ev.SiteID,
		Token:      ev.Token,
	}, inject.Backends{FS: h.FS, Snippet: h.Snippets})
	if err != nil {
		return nil, err
	}

	report, err := injector.Inject(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("Injection did not run")
		return report, err
	}
	for _, res := range report.Failed() {
		h.logger.Error().Err(res.Err).Str("target", res.Target).Msg("Injection failed for target")
	}
	return report, nil
}

// logConfigurations logs team and site documents and returns the decoded
// site document, or nil when it could not be read
func (h *Handlers) logConfigurations(ctx context.Context, ev Event) *siteconfig.SiteConfig {
	if h.Configs == nil || ev.AccountID == "" {
		h.logger.Warn().
			Str("site_id", ev.SiteID).
			Str("account_id", ev.AccountID).
			Msg("Missing required IDs, skipping configuration lookup")
		return nil
	}

	team, err := siteconfig.GetTeam(ctx, h.Configs, ev.AccountID)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to fetch team configuration")
	} else {
		h.logger.Info().Interface("config", redact(team)).Msg("Team config")
	}

	if ev.SiteID == "" {
		return nil
	}
	doc, err := siteconfig.GetSite(ctx, h.Configs, ev.AccountID, ev.SiteID)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to fetch site configuration")
		return nil
	}
	h.logger.Info().Interface("config", redact(doc)).Msg("Site config")

	site, err := siteconfig.DecodeSite(doc)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Site configuration has unexpected shape")
		return nil
	}
	return &site
}

func (h *Handlers) logPlatform(ctx context.Context, ev Event) {
	if h.Platform == nil || ev.Token == "" {
		h.logger.Debug().Msg("No API token, skipping platform lookups")
		return
	}
	if ev.SiteID == "" || ev.AccountID == "" {
		h.logger.Warn().
			Str("site_id", ev.SiteID).
			Str("account_id", ev.AccountID).
			Msg("Missing required IDs, skipping platform lookups")
		return
	}

	if site, err := h.Platform.GetSite(ctx, ev.SiteID); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to fetch site")
	} else {
		h.logger.Info().
			Str("site_name", site.Name).
			Str("site_link", site.Alias()).
			Msg("Site")
	}

	if account, err := h.Platform.GetAccount(ctx, ev.AccountID); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to fetch account")
	} else {
		h.logger.Info().Str("account_name", account.Name).Str("account_slug", account.Slug).Msg("Account")
	}

	if user, err := h.Platform.GetCurrentUser(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to get user info")
	} else {
		h.logger.Info().Str("email", user.Email).Str("name", user.FullName).Msg("User")
	}
}

// redact masks values of keys that look like secrets
func redact(doc map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		if isSecretKey(k) {
			out[k] = "********"
			continue
		}
		out[k] = v
	}
	return out
}

func isSecretKey(k string) bool {
	return k == siteconfig.KeySiteSecret || k == "exampleSecret"
}
