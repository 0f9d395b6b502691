package testutil

import (
	"path"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/superflow-dev/superflow-extension/pkg/filesystem"
	"github.com/superflow-dev/superflow-extension/pkg/types"
)

// Common page bodies
const (
	PageWithHead = "<html><head><title>t</title></head><body><p>hi</p></body></html>"
	PageBodyOnly = "<html><body><p>hi</p></body></html>"
	PageNoAnchor = "<p>fragment</p>"
)

// SiteBuilder lays out a publish directory
type SiteBuilder struct {
	t    *testing.T
	FS   types.FS
	Root string
}

// NewSite returns a builder for a fresh in-memory publish directory at root
func NewSite(t *testing.T, root string) *SiteBuilder {
	t.Helper()

	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll(root, 0755))
	return &SiteBuilder{t: t, FS: fsys, Root: root}
}

// WithFile writes content to rel (slash separated) under the root
func (b *SiteBuilder) WithFile(rel, content string) *SiteBuilder {
	b.t.Helper()

	full := b.Path(rel)
	require.NoError(b.t, b.FS.MkdirAll(path.Dir(full), 0755))
	require.NoError(b.t, b.FS.WriteFile(full, []byte(content), 0644))
	return b
}

// WithFiles writes every rel -> content pair
func (b *SiteBuilder) WithFiles(files map[string]string) *SiteBuilder {
	b.t.Helper()

	for rel, content := range files {
		b.WithFile(rel, content)
	}
	return b
}

// Path returns the full path of rel
func (b *SiteBuilder) Path(rel string) string {
	return path.Join(b.Root, rel)
}

// Read returns the content of rel
func (b *SiteBuilder) Read(rel string) string {
	b.t.Helper()

	data, err := b.FS.ReadFile(b.Path(rel))
	require.NoError(b.t, err)
	return string(data)
}
