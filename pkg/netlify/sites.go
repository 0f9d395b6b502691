package netlify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Site is the subset of site fields the build hooks report
type Site struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	URL             string  `json:"url"`
	AccountID       string  `json:"account_id"`
	PublishedDeploy *Deploy `json:"published_deploy,omitempty"`
}

// Deploy is a published deploy
type Deploy struct {
	ID    string      `json:"id"`
	Links DeployLinks `json:"links"`
}

// DeployLinks are the public URLs of a deploy
type DeployLinks struct {
	Permalink string `json:"permalink"`
	Alias     string `json:"alias"`
}

// Alias returns the published deploy alias link, or ""
func (s *Site) Alias() string {
	if s == nil || s.PublishedDeploy == nil {
		return ""
	}
	return s.PublishedDeploy.Links.Alias
}

// Account is a team account
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// User is the token owner
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// GetSite fetches a site by id
func (c *Client) GetSite(ctx context.Context, siteID string) (*Site, error) {
	var site Site
	if err := c.do(ctx, http.MethodGet, "/sites/"+url.PathEscape(siteID), nil, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// GetAccount fetches an account by id
func (c *Client) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	var account Account
	path := fmt.Sprintf("/accounts/%s", url.PathEscape(accountID))
	if err := c.do(ctx, http.MethodGet, path, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetCurrentUser fetches the owner of the token
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
