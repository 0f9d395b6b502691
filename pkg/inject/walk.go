package inject

import (
	"path/filepath"
	"strings"

	"github.com/superflow-dev/superflow-extension/pkg/errors"
	"github.com/superflow-dev/superflow-extension/pkg/logging"
	"github.com/superflow-dev/superflow-extension/pkg/types"
)

// WalkOptions filters the publish directory scan
type WalkOptions struct {
	// Extension is the case-sensitive file name suffix to match, e.g. ".html"
	Extension string
	// ExcludeDirs are directory names never descended into
	ExcludeDirs []string
}

// DefaultWalkOptions matches .html files outside node_modules
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{Extension: ".html", ExcludeDirs: []string{"node_modules"}}
}

// Enumerate returns every regular file under root whose name ends with
// opts.Extension, in directory listing order. Entries starting with "." and
// excluded directories are neither yielded nor descended into. Directories
// that cannot be listed are logged and returned as warnings; their siblings
// are still scanned.
func Enumerate(fsys types.FS, root string, opts WalkOptions) ([]string, []error) {
	w := &walker{
		fs:       fsys,
		opts:     opts,
		excluded: make(map[string]bool, len(opts.ExcludeDirs)),
	}
	for _, name := range opts.ExcludeDirs {
		w.excluded[name] = true
	}

	w.walk(root)
	return w.files, w.warnings
}

type walker struct {
	fs       types.FS
	opts     WalkOptions
	excluded map[string]bool
	files    []string
	warnings []error
}

func (w *walker) walk(dir string) {
	logger := logging.GetLogger("inject.walk")

	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("Cannot read directory, skipping")
		w.warnings = append(w.warnings,
			errors.Wrap(err, errors.ErrIOFailure, "cannot read directory").WithDetail("path", dir))
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if strings.HasPrefix(name, ".") {
			logger.Trace().Str("path", path).Msg("Skipping hidden entry")
			continue
		}

		if entry.IsDir() {
			if w.excluded[name] {
				logger.Trace().Str("path", path).Msg("Skipping excluded directory")
				continue
			}
			w.walk(path)
			continue
		}

		if !entry.Type().IsRegular() {
			continue
		}
		if strings.HasSuffix(name, w.opts.Extension) {
			w.files = append(w.files, path)
		}
	}
}
