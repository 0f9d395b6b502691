package netlify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superflow-dev/superflow-extension/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-token", 5*time.Second)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", "tok", 0)
	assert.Equal(t, DefaultBaseURL, c.BaseURL)
	assert.Equal(t, 30*time.Second, c.HTTPClient.Timeout)

	c = NewClient("http://example.test/api/", "tok", time.Second)
	assert.Equal(t, "http://example.test/api", c.BaseURL)
}

func TestListSnippets(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sites/site-1/snippets", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 7, "title": "Superflow Toolbar", "general": "<script></script>", "general_position": "head"},
			{"id": 8, "title": "Other", "general": "<b>x</b>", "general_position": "footer"},
		})
	})

	snippets, err := c.ListSnippets(context.Background(), "site-1")
	require.NoError(t, err)
	require.Len(t, snippets, 2)
	assert.Equal(t, Snippet{ID: 7, Title: "Superflow Toolbar", General: "<script></script>", Position: "head"}, snippets[0])
}

func TestCreateSnippet(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sites/site-1/snippets", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Superflow Toolbar", body["title"])
		assert.Equal(t, "<script></script>", body["general"])
		assert.Equal(t, "head", body["general_position"])
		assert.NotContains(t, body, "id")

		w.WriteHeader(http.StatusCreated)
		body["id"] = 12
		_ = json.NewEncoder(w).Encode(body)
	})

	created, err := c.CreateSnippet(context.Background(), "site-1", Snippet{
		Title: "Superflow Toolbar", General: "<script></script>", Position: "head",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, created.ID)
}

func TestUpdateSnippet(t *testing.T) {
	t.Run("echoed body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/sites/site-1/snippets/7", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":7,"title":"T","general":"new","general_position":"footer"}`))
		})

		updated, err := c.UpdateSnippet(context.Background(), "site-1", 7, Snippet{Title: "T", General: "new", Position: "footer"})
		require.NoError(t, err)
		assert.Equal(t, 7, updated.ID)
		assert.Equal(t, "new", updated.General)
	})

	t.Run("empty body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		updated, err := c.UpdateSnippet(context.Background(), "site-1", 7, Snippet{Title: "T", General: "new"})
		require.NoError(t, err)
		assert.Equal(t, 7, updated.ID)
		assert.Equal(t, "new", updated.General)
	})
}

func TestNon2xxIsNetworkFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, err := c.ListSnippets(context.Background(), "site-1")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNetworkFailure))
	assert.Equal(t, http.StatusBadGateway, StatusCode(err))
	assert.Contains(t, err.Error(), "upstream exploded")
	assert.Equal(t, http.StatusBadGateway, errors.GetErrorDetails(err)["status"])
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(url, "tok", time.Second)
	_, err := c.GetSite(context.Background(), "site-1")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNetworkFailure))
	assert.Equal(t, 0, StatusCode(err))
}

func TestMalformedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})

	_, err := c.GetCurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNetworkFailure))
}

func TestGetSiteAccountUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sites/site-1":
			_, _ = w.Write([]byte(`{"id":"site-1","name":"blog","published_deploy":{"links":{"alias":"https://blog.example"}}}`))
		case "/accounts/acct-1":
			_, _ = w.Write([]byte(`{"id":"acct-1","name":"Team","slug":"team"}`))
		case "/user":
			_, _ = w.Write([]byte(`{"id":"u1","email":"dev@example.com"}`))
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	site, err := c.GetSite(ctx, "site-1")
	require.NoError(t, err)
	assert.Equal(t, "blog", site.Name)
	assert.Equal(t, "https://blog.example", site.Alias())

	account, err := c.GetAccount(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, "team", account.Slug)

	user, err := c.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", user.Email)

	var nilSite *Site
	assert.Equal(t, "", nilSite.Alias())
	assert.Equal(t, "", (&Site{}).Alias())
}
