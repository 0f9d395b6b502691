package inject

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/superflow-dev/superflow-extension/pkg/config"
	"github.com/superflow-dev/superflow-extension/pkg/errors"
	"github.com/superflow-dev/superflow-extension/pkg/logging"
	"github.com/superflow-dev/superflow-extension/pkg/types"
)

// FileInjector upserts the payload into every HTML page under Root
type FileInjector struct {
	FS      types.FS
	Root    string
	Payload Payload
	Walk    WalkOptions
	// DryRun computes outcomes without writing
	DryRun bool
}

// Inject processes the pages one at a time in enumeration order. Per-file
// failures end up in the report; the returned error is reserved for a
// missing or unusable publish directory, an invalid payload, or ctx being
// cancelled between files.
func (f *FileInjector) Inject(ctx context.Context) (*Report, error) {
	logger := logging.GetLogger("inject.files")
	start := time.Now()

	if f.Root == "" {
		return nil, errors.New(errors.ErrConfigMissing, "publish directory not set")
	}
	info, err := f.FS.Stat(f.Root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigMissing, "publish directory not accessible").
			WithDetail("path", f.Root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrConfigMissing, "publish directory is not a directory").
			WithDetail("path", f.Root)
	}
	if err := f.Payload.Validate(); err != nil {
		return nil, err
	}

	paths, warnings := Enumerate(f.FS, f.Root, f.Walk)
	logger.Info().
		Str("root", f.Root).
		Int("files", len(paths)).
		Int("warnings", len(warnings)).
		Msg("Enumerated HTML files")

	report := &Report{
		Mode:     config.ModeFiles,
		Target:   f.Root,
		DryRun:   f.DryRun,
		Warnings: warnings,
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(start)
			return report, errors.Wrap(err, errors.ErrInternal, "injection interrupted")
		}
		res := f.injectFile(logger, path)
		report.Add(res)
	}

	report.Duration = time.Since(start)
	s := report.Summary()
	logger.Info().
		Int("injected", s.Injected).
		Int("already_present", s.AlreadyPresent).
		Int("no_insertion_point", s.NoInsertionPoint).
		Int("failed", s.Failed).
		Bool("dry_run", f.DryRun).
		Msg("File injection finished")
	return report, nil
}

func (f *FileInjector) injectFile(logger zerolog.Logger, path string) Result {
	info, err := f.FS.Stat(path)
	if err != nil {
		return f.failed(logger, path, errors.Wrap(err, errors.ErrIOFailure, "cannot stat file"))
	}

	data, err := f.FS.ReadFile(path)
	if err != nil {
		return f.failed(logger, path, errors.Wrap(err, errors.ErrIOFailure, "cannot read file"))
	}
	content := string(data)

	if HasMarker(content, f.Payload.Marker) {
		logger.Debug().Str("path", path).Msg("Marker already present")
		return Result{Target: path, Outcome: OutcomeAlreadyPresent}
	}

	updated, point, err := Insert(content, f.Payload)
	if err != nil {
		logger.Warn().Str("path", path).Msg("No </head> or </body>, skipping")
		return Result{Target: path, Outcome: OutcomeNoInsertionPoint, Err: err}
	}

	if f.DryRun {
		logger.Info().Str("path", path).Str("point", point.String()).Msg("Would inject (dry run)")
		return Result{Target: path, Outcome: OutcomeInjected, Point: point}
	}

	if err := f.FS.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return f.failed(logger, path, errors.Wrap(err, errors.ErrIOFailure, "cannot write file"))
	}

	logger.Debug().Str("path", path).Str("point", point.String()).Msg("Injected payload")
	return Result{Target: path, Outcome: OutcomeInjected, Point: point}
}

func (f *FileInjector) failed(logger zerolog.Logger, path string, err *errors.SuperflowError) Result {
	err.WithDetail("path", path)
	logger.Error().Err(err).Str("path", path).Msg("File injection failed")
	return Result{Target: path, Outcome: OutcomeFailed, Err: err}
}
