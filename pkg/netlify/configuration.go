package netlify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Configuration is a stored extension configuration document
type Configuration struct {
	Config map[string]interface{} `json:"config"`
}

type configurationBody struct {
	Config map[string]interface{} `json:"config"`
}

// ConfigStore reads and writes extension configuration for one extension slug
type ConfigStore struct {
	client *Client
	slug   string
}

// ConfigStore returns the configuration store for an extension slug
func (c *Client) ConfigStore(slug string) *ConfigStore {
	return &ConfigStore{client: c, slug: slug}
}

func (s *ConfigStore) teamPath(accountID string) string {
	return fmt.Sprintf("/team/%s/integrations/%s/configuration",
		url.PathEscape(accountID), url.PathEscape(s.slug))
}

func (s *ConfigStore) sitePath(accountID, siteID string) string {
	return fmt.Sprintf("/team/%s/integrations/%s/sites/%s/configuration",
		url.PathEscape(accountID), url.PathEscape(s.slug), url.PathEscape(siteID))
}

// get returns (nil, nil) when the store has no document
func (s *ConfigStore) get(ctx context.Context, path string) (*Configuration, error) {
	var cfg Configuration
	if err := s.client.do(ctx, http.MethodGet, path, nil, &cfg); err != nil {
		if StatusCode(err) == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	if cfg.Config == nil {
		cfg.Config = map[string]interface{}{}
	}
	return &cfg, nil
}

// GetSiteConfiguration returns the site configuration or nil when none exists
func (s *ConfigStore) GetSiteConfiguration(ctx context.Context, accountID, siteID string) (*Configuration, error) {
	return s.get(ctx, s.sitePath(accountID, siteID))
}

// CreateSiteConfiguration stores a new site configuration
func (s *ConfigStore) CreateSiteConfiguration(ctx context.Context, accountID, siteID string, config map[string]interface{}) error {
	return s.client.do(ctx, http.MethodPost, s.sitePath(accountID, siteID), configurationBody{Config: config}, nil)
}

// UpdateSiteConfiguration replaces the site configuration
func (s *ConfigStore) UpdateSiteConfiguration(ctx context.Context, accountID, siteID string, config map[string]interface{}) error {
	return s.client.do(ctx, http.MethodPut, s.sitePath(accountID, siteID), configurationBody{Config: config}, nil)
}

// GetTeamConfiguration returns the team configuration or nil when none exists
func (s *ConfigStore) GetTeamConfiguration(ctx context.Context, accountID string) (*Configuration, error) {
	return s.get(ctx, s.teamPath(accountID))
}

// CreateTeamConfiguration stores a new team configuration
func (s *ConfigStore) CreateTeamConfiguration(ctx context.Context, accountID string, config map[string]interface{}) error {
	return s.client.do(ctx, http.MethodPost, s.teamPath(accountID), configurationBody{Config: config}, nil)
}

// UpdateTeamConfiguration replaces the team configuration
func (s *ConfigStore) UpdateTeamConfiguration(ctx context.Context, accountID string, config map[string]interface{}) error {
	return s.client.do(ctx, http.MethodPut, s.teamPath(accountID), configurationBody{Config: config}, nil)
}
