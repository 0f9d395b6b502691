package testutil

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	"github.com/superflow-dev/superflow-extension/pkg/netlify"
)

func TestSiteBuilder(t *testing.T) {
	site := NewSite(t, "/publish").
		WithFile("index.html", PageWithHead).
		WithFiles(map[string]string{"blog/post.html": PageBodyOnly})

	assert.Equal(t, "/publish/blog/post.html", site.Path("blog/post.html"))
	assert.Equal(t, PageBodyOnly, site.Read("blog/post.html"))

	info, err := site.FS.Stat("/publish/blog")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFakeSnippetStore(t *testing.T) {
	ctx := context.Background()
	store := NewFakeSnippetStore()
	seeded := store.Seed("site", netlify.Snippet{Title: "a", General: "x"})
	assert.Equal(t, 1, seeded.ID)

	created, err := store.CreateSnippet(ctx, "site", netlify.Snippet{Title: "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	_, err = store.UpdateSnippet(ctx, "site", 1, netlify.Snippet{Title: "a", General: "y"})
	require.NoError(t, err)

	list, err := store.ListSnippets(ctx, "site")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "y", list[0].General)
	assert.Equal(t, 2, store.Writes())

	store.SetError("ListSnippets", errors.New("boom"))
	_, err = store.ListSnippets(ctx, "site")
	assert.EqualError(t, err, "boom")
}

func TestFakeConfigStore(t *testing.T) {
	ctx := context.Background()
	store := NewFakeConfigStore()

	cfg, err := store.GetSiteConfiguration(ctx, "acct", "site")
	require.NoError(t, err)
	assert.Nil(t, cfg)

	require.NoError(t, store.CreateSiteConfiguration(ctx, "acct", "site", map[string]interface{}{"k": "v"}))
	assert.Error(t, store.CreateSiteConfiguration(ctx, "acct", "site", nil))

	cfg, err = store.GetSiteConfiguration(ctx, "acct", "site")
	require.NoError(t, err)
	assert.Equal(t, "v", cfg.Config["k"])

	store.SeedTeam("acct", map[string]interface{}{"exampleString": "hello"})
	team, err := store.GetTeamConfiguration(ctx, "acct")
	require.NoError(t, err)
	assert.Equal(t, "hello", team.Config["exampleString"])
}

func TestFaultyFS(t *testing.T) {
	site := NewSite(t, "/publish").WithFiles(map[string]string{
		"a/x.html": PageWithHead,
		"b.html":   PageBodyOnly,
	})
	fsys := NewFaultyFS(site.FS).FailReadDir("/publish/a").FailReadFile("/publish/b.html")

	_, err := fsys.ReadDir("/publish/a")
	assert.ErrorIs(t, err, fs.ErrPermission)
	_, err = fsys.ReadFile("/publish/b.html")
	assert.ErrorIs(t, err, fs.ErrPermission)

	entries, err := fsys.ReadDir("/publish")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	data, err := fsys.ReadFile("/publish/a/x.html")
	require.NoError(t, err)
	assert.Equal(t, PageWithHead, string(data))
}

func TestCaptureLogs(t *testing.T) {
	logs := CaptureLogs(t)
	log.Info().Str("k", "v").Msg("captured")
	assert.Contains(t, logs.String(), `"k":"v"`)
}
