package netlify

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superflow-dev/superflow-extension/pkg/errors"
)

func TestSiteConfiguration(t *testing.T) {
	const sitePath = "/team/acct-1/integrations/superflow/sites/site-1/configuration"
	var stored map[string]interface{}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, sitePath, r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			if stored == nil {
				http.NotFound(w, r)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"config": stored})
		case http.MethodPost, http.MethodPut:
			var body configurationBody
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			stored = body.Config
			w.WriteHeader(http.StatusOK)
		}
	})
	store := c.ConfigStore("superflow")
	ctx := context.Background()

	got, err := store.GetSiteConfiguration(ctx, "acct-1", "site-1")
	require.NoError(t, err)
	assert.Nil(t, got, "404 means no configuration")

	require.NoError(t, store.CreateSiteConfiguration(ctx, "acct-1", "site-1", map[string]interface{}{"a": "1"}))
	got, err = store.GetSiteConfiguration(ctx, "acct-1", "site-1")
	require.NoError(t, err)
	assert.Equal(t, "1", got.Config["a"])

	require.NoError(t, store.UpdateSiteConfiguration(ctx, "acct-1", "site-1", map[string]interface{}{"a": "2"}))
	got, err = store.GetSiteConfiguration(ctx, "acct-1", "site-1")
	require.NoError(t, err)
	assert.Equal(t, "2", got.Config["a"])
}

func TestTeamConfiguration(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/team/acct-1/integrations/superflow/configuration", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"config":null}`))
		default:
			w.WriteHeader(http.StatusForbidden)
		}
	})
	store := c.ConfigStore("superflow")
	ctx := context.Background()

	got, err := store.GetTeamConfiguration(ctx, "acct-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotNil(t, got.Config, "null config decodes to an empty map")

	err = store.UpdateTeamConfiguration(ctx, "acct-1", map[string]interface{}{"x": 1})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNetworkFailure))

	err = store.CreateTeamConfiguration(ctx, "acct-1", map[string]interface{}{"x": 1})
	assert.Equal(t, http.StatusForbidden, StatusCode(err))
}

func TestConfigurationServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.ConfigStore("superflow").GetSiteConfiguration(context.Background(), "acct-1", "site-1")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
}
