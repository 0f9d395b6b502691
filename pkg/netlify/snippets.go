package netlify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Snippet is an HTML fragment the platform injects into every page of a site
type Snippet struct {
	ID       int    `json:"id,omitempty"`
	Title    string `json:"title"`
	General  string `json:"general"`
	Position string `json:"general_position"`
}

func snippetsPath(siteID string) string {
	return fmt.Sprintf("/sites/%s/snippets", url.PathEscape(siteID))
}

// ListSnippets returns every snippet of a site
func (c *Client) ListSnippets(ctx context.Context, siteID string) ([]Snippet, error) {
	var snippets []Snippet
	if err := c.do(ctx, http.MethodGet, snippetsPath(siteID), nil, &snippets); err != nil {
		return nil, err
	}
	return snippets, nil
}

// CreateSnippet adds a snippet; the platform assigns its id
func (c *Client) CreateSnippet(ctx context.Context, siteID string, s Snippet) (*Snippet, error) {
	s.ID = 0
	var created Snippet
	if err := c.do(ctx, http.MethodPost, snippetsPath(siteID), s, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSnippet replaces title, content and position of an existing snippet
func (c *Client) UpdateSnippet(ctx context.Context, siteID string, id int, s Snippet) (*Snippet, error) {
	s.ID = 0
	var updated Snippet
	path := fmt.Sprintf("%s/%d", snippetsPath(siteID), id)
	if err := c.do(ctx, http.MethodPut, path, s, &updated); err != nil {
		return nil, err
	}
	if updated.ID == 0 {
		updated = s
		updated.ID = id
	}
	return &updated, nil
}
