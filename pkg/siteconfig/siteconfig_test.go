package siteconfig

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superflow-dev/superflow-extension/pkg/errors"
	"github.com/superflow-dev/superflow-extension/pkg/testutil"
)

func TestUpdateSiteCreatesWhenAbsent(t *testing.T) {
	store := testutil.NewFakeConfigStore()
	patch := map[string]interface{}{KeySiteString: "hello", KeySiteNumber: 7}

	got, err := UpdateSite(context.Background(), store, "acct", "site", patch)
	require.NoError(t, err)
	assert.Equal(t, patch, got)
	assert.Equal(t, []string{
		"GetSiteConfiguration",
		"CreateSiteConfiguration",
		"GetSiteConfiguration",
	}, store.Calls())
}

func TestUpdateSiteMergesPatchOverExisting(t *testing.T) {
	store := testutil.NewFakeConfigStore()
	store.SeedSite("acct", "site", map[string]interface{}{
		KeySiteString:  "old",
		KeySiteBoolean: false,
	})

	got, err := UpdateSite(context.Background(), store, "acct", "site", map[string]interface{}{
		KeySiteString: "new",
		KeySiteNumber: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		KeySiteString:  "new",
		KeySiteBoolean: false,
		KeySiteNumber:  3,
	}, got)
	assert.Contains(t, store.Calls(), "UpdateSiteConfiguration")
}

func TestUpdateSiteMissingIDs(t *testing.T) {
	store := testutil.NewFakeConfigStore()

	_, err := UpdateSite(context.Background(), store, "", "site", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissing))
	_, err = UpdateSite(context.Background(), store, "acct", "", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissing))
	assert.Empty(t, store.Calls())
}

func TestUpdateSiteStoreFailure(t *testing.T) {
	store := testutil.NewFakeConfigStore()
	store.SetError("CreateSiteConfiguration", stderrors.New("boom"))

	_, err := UpdateSite(context.Background(), store, "acct", "site", map[string]interface{}{"k": "v"})
	assert.EqualError(t, err, "boom")
}

func TestHandlerSwitch(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewFakeConfigStore()

	enabled, err := HandlerEnabled(ctx, store, "acct", "site")
	require.NoError(t, err)
	assert.True(t, enabled, "unset switch means enabled")

	require.NoError(t, SetHandlerEnabled(ctx, store, "acct", "site", false))
	enabled, err = HandlerEnabled(ctx, store, "acct", "site")
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, SetHandlerEnabled(ctx, store, "acct", "site", true))
	enabled, err = HandlerEnabled(ctx, store, "acct", "site")
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestDefaultSitePatch(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	patch := DefaultSitePatch(now)

	assert.Equal(t, "Build completed at 2026-01-02T03:04:05Z", patch[KeySiteString])
	assert.Equal(t, "auto-generated-secret-1767323045000", patch[KeySiteSecret])
	assert.Equal(t, true, patch[KeySiteBoolean])
	assert.GreaterOrEqual(t, patch[KeySiteNumber], int64(0))
	assert.Less(t, patch[KeySiteNumber], int64(1000))
}

func TestDecode(t *testing.T) {
	site, err := DecodeSite(map[string]interface{}{
		KeySiteString:          "s",
		KeySiteNumber:          float64(12),
		KeyBuildHandlerEnabled: false,
		"unknown":              "ignored",
	})
	require.NoError(t, err)
	require.NotNil(t, site.SiteSpecificString)
	assert.Equal(t, "s", *site.SiteSpecificString)
	assert.Equal(t, float64(12), *site.SiteSpecificNumber)
	assert.Nil(t, site.SiteSpecificSecret)
	assert.False(t, site.HandlerEnabled())

	team, err := DecodeTeam(map[string]interface{}{"exampleBoolean": true, "exampleNumber": 4})
	require.NoError(t, err)
	assert.True(t, *team.ExampleBoolean)
	assert.Equal(t, float64(4), *team.ExampleNumber)

	_, err = DecodeSite(map[string]interface{}{KeySiteBoolean: map[string]interface{}{"a": 1}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestGetTeam(t *testing.T) {
	store := testutil.NewFakeConfigStore()

	doc, err := GetTeam(context.Background(), store, "acct")
	require.NoError(t, err)
	assert.Empty(t, doc)

	_, err = GetTeam(context.Background(), store, "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissing))
}

func TestUpdateTeam(t *testing.T) {
	logs := testutil.CaptureLogs(t)
	ctx := context.Background()
	store := testutil.NewFakeConfigStore()

	got, err := UpdateTeam(ctx, store, "acct", map[string]interface{}{"exampleString": "a"})
	require.NoError(t, err)
	assert.Equal(t, "a", got["exampleString"])

	got, err = UpdateTeam(ctx, store, "acct", map[string]interface{}{"exampleNumber": 2})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"exampleString": "a", "exampleNumber": 2}, got)
	assert.Equal(t, []string{
		"GetTeamConfiguration", "CreateTeamConfiguration", "GetTeamConfiguration",
		"GetTeamConfiguration", "UpdateTeamConfiguration", "GetTeamConfiguration",
	}, store.Calls())
	assert.Contains(t, logs.String(), "Saved team configuration")
	assert.Contains(t, logs.String(), `"account_id":"acct"`)

	_, err = UpdateTeam(ctx, store, "", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissing))
}
