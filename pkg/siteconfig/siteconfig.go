// Package siteconfig reads and writes the extension's per-site and per-team
// configuration documents held by the host platform.
package siteconfig

import (
	"context"
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/superflow-dev/superflow-extension/pkg/errors"
	"github.com/superflow-dev/superflow-extension/pkg/logging"
	"github.com/superflow-dev/superflow-extension/pkg/netlify"
)

// Document keys
const (
	KeySiteString          = "siteSpecificString"
	KeySiteSecret          = "siteSpecificSecret"
	KeySiteBoolean         = "siteSpecificBoolean"
	KeySiteNumber          = "siteSpecificNumber"
	KeyBuildHandlerEnabled = "buildEventHandlerEnabled"
)

// SiteConfig is the typed view of a site document. Every field is optional.
type SiteConfig struct {
	SiteSpecificString       *string  `mapstructure:"siteSpecificString" json:"siteSpecificString,omitempty"`
	SiteSpecificSecret       *string  `mapstructure:"siteSpecificSecret" json:"siteSpecificSecret,omitempty"`
	SiteSpecificBoolean      *bool    `mapstructure:"siteSpecificBoolean" json:"siteSpecificBoolean,omitempty"`
	SiteSpecificNumber       *float64 `mapstructure:"siteSpecificNumber" json:"siteSpecificNumber,omitempty"`
	BuildEventHandlerEnabled *bool    `mapstructure:"buildEventHandlerEnabled" json:"buildEventHandlerEnabled,omitempty"`
}

// TeamConfig is the typed view of a team document
type TeamConfig struct {
	ExampleString  *string  `mapstructure:"exampleString" json:"exampleString,omitempty"`
	ExampleSecret  *string  `mapstructure:"exampleSecret" json:"exampleSecret,omitempty"`
	ExampleBoolean *bool    `mapstructure:"exampleBoolean" json:"exampleBoolean,omitempty"`
	ExampleNumber  *float64 `mapstructure:"exampleNumber" json:"exampleNumber,omitempty"`
}

// Store is the configuration half of the platform client
type Store interface {
	GetSiteConfiguration(ctx context.Context, accountID, siteID string) (*netlify.Configuration, error)
	CreateSiteConfiguration(ctx context.Context, accountID, siteID string, config map[string]interface{}) error
	UpdateSiteConfiguration(ctx context.Context, accountID, siteID string, config map[string]interface{}) error
	GetTeamConfiguration(ctx context.Context, accountID string) (*netlify.Configuration, error)
}

func requireIDs(accountID, siteID string) error {
	if accountID == "" || siteID == "" {
		return errors.New(errors.ErrConfigMissing, "Missing accountId or siteId").
			WithDetail("account_id", accountID).
			WithDetail("site_id", siteID)
	}
	return nil
}

// GetSite returns the stored site document, or an empty one
func GetSite(ctx context.Context, store Store, accountID, siteID string) (map[string]interface{}, error) {
	if err := requireIDs(accountID, siteID); err != nil {
		return nil, err
	}
	cfg, err := store.GetSiteConfiguration(ctx, accountID, siteID)
	if err != nil {
		return nil, err
	}
	if cfg == nil || cfg.Config == nil {
		return map[string]interface{}{}, nil
	}
	return cfg.Config, nil
}

// GetTeam returns the stored team document, or an empty one
func GetTeam(ctx context.Context, store Store, accountID string) (map[string]interface{}, error) {
	if accountID == "" {
		return nil, errors.New(errors.ErrConfigMissing, "Missing accountId")
	}
	cfg, err := store.GetTeamConfiguration(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if cfg == nil || cfg.Config == nil {
		return map[string]interface{}{}, nil
	}
	return cfg.Config, nil
}

// UpdateSite creates the site document from patch when none exists, or
// replaces it with the existing document shallow-merged under patch. The
// stored document is read back and returned.
func UpdateSite(ctx context.Context, store Store, accountID, siteID string, patch map[string]interface{}) (map[string]interface{}, error) {
	logger := logging.GetLogger("siteconfig").With().
		Str("account_id", accountID).
		Str("site_id", siteID).
		Logger()

	if err := requireIDs(accountID, siteID); err != nil {
		return nil, err
	}

	existing, err := store.GetSiteConfiguration(ctx, accountID, siteID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		if err := store.CreateSiteConfiguration(ctx, accountID, siteID, patch); err != nil {
			return nil, err
		}
		logger.Info().Msg("Created new site configuration")
	} else {
		merged := Merge(existing.Config, patch)
		if err := store.UpdateSiteConfiguration(ctx, accountID, siteID, merged); err != nil {
			return nil, err
		}
		logger.Info().Msg("Updated existing site configuration")
	}

	updated, err := GetSite(ctx, store, accountID, siteID)
	if err != nil {
		return nil, err
	}
	logger.Debug().Interface("config", updated).Msg("Verified updated config")
	return updated, nil
}

// Merge returns base overlaid with patch, one level deep
func Merge(base, patch map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// DefaultSitePatch is the document written when a caller supplies no body
func DefaultSitePatch(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		KeySiteString:  fmt.Sprintf("Build completed at %s", now.UTC().Format(time.RFC3339Nano)),
		KeySiteSecret:  fmt.Sprintf("auto-generated-secret-%d", now.UnixMilli()),
		KeySiteBoolean: true,
		KeySiteNumber:  now.UnixNano() % 1000,
	}
}

// SetHandlerEnabled turns the build event handler on or off for one site
func SetHandlerEnabled(ctx context.Context, store Store, accountID, siteID string, enabled bool) error {
	_, err := UpdateSite(ctx, store, accountID, siteID, map[string]interface{}{
		KeyBuildHandlerEnabled: enabled,
	})
	return err
}

// HandlerEnabled reports the per-site switch. Sites that never set it are
// enabled.
func HandlerEnabled(ctx context.Context, store Store, accountID, siteID string) (bool, error) {
	doc, err := GetSite(ctx, store, accountID, siteID)
	if err != nil {
		return false, err
	}
	site, err := DecodeSite(doc)
	if err != nil {
		return false, err
	}
	return site.HandlerEnabled(), nil
}

// HandlerEnabled is false only when the site explicitly disabled it
func (s SiteConfig) HandlerEnabled() bool {
	return s.BuildEventHandlerEnabled == nil || *s.BuildEventHandlerEnabled
}

// DecodeSite converts a raw document into SiteConfig
func DecodeSite(doc map[string]interface{}) (SiteConfig, error) {
	var out SiteConfig
	if err := decode(doc, &out); err != nil {
		return SiteConfig{}, err
	}
	return out, nil
}

// DecodeTeam converts a raw document into TeamConfig
func DecodeTeam(doc map[string]interface{}) (TeamConfig, error) {
	var out TeamConfig
	if err := decode(doc, &out); err != nil {
		return TeamConfig{}, err
	}
	return out, nil
}

func decode(doc map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot build decoder")
	}
	if err := decoder.Decode(doc); err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "malformed configuration document")
	}
	return nil
}

// TeamStore is the team-level write half of the platform client
type TeamStore interface {
	GetTeamConfiguration(ctx context.Context, accountID string) (*netlify.Configuration, error)
	CreateTeamConfiguration(ctx context.Context, accountID string, config map[string]interface{}) error
	UpdateTeamConfiguration(ctx context.Context, accountID string, config map[string]interface{}) error
}

// UpdateTeam is UpdateSite for the team document
func UpdateTeam(ctx context.Context, store TeamStore, accountID string, patch map[string]interface{}) (map[string]interface{}, error) {
	if accountID == "" {
		return nil, errors.New(errors.ErrConfigMissing, "Missing accountId")
	}

	existing, err := store.GetTeamConfiguration(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		err = store.CreateTeamConfiguration(ctx, accountID, patch)
	} else {
		err = store.UpdateTeamConfiguration(ctx, accountID, Merge(existing.Config, patch))
	}
	if err != nil {
		return nil, err
	}
	logger := logging.GetLogger("siteconfig")
	logger.Info().Str("account_id", accountID).Msg("Saved team configuration")

	updated, err := store.GetTeamConfiguration(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if updated == nil || updated.Config == nil {
		return map[string]interface{}{}, nil
	}
	return updated.Config, nil
}
