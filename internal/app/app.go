// Package app implements the application layer of the shiori CLI.
package app

import (
	"context"
	"errors"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/shiori/internal/adapters/cas" //nolint:depguard // Wired in app layer
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/shiori/internal/engine/decision"
	"go.trai.ch/shiori/internal/engine/fingerprint"
	"go.trai.ch/zerr"
)

// App inspects and maintains the fingerprint cache of a project.
type App struct {
	config   domain.Config
	backend  ports.BlobBackend
	digester ports.Digester
	executor ports.Executor
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	cfg domain.Config,
	backend ports.BlobBackend,
	digester ports.Digester,
	executor ports.Executor,
	log ports.Logger,
) *App {
	return &App{
		config:   cfg,
		backend:  backend,
		digester: digester,
		executor: executor,
		logger:   log,
	}
}

// UnitReport is the cached state of one test unit.
type UnitReport struct {
	Key   domain.TestUnitKey
	Entry *domain.TestUnitCacheEntry
	// Verdict only covers the checks that do not depend on the test binary:
	// the outcome and the dependent files.
	Verdict decision.Verdict
	Changed []string
}

// PackageReport is the cached state of one test package.
type PackageReport struct {
	Namespace string
	Session   string
	UpdatedAt time.Time
	Libraries int
	Files     int
	Units     []UnitReport
}

// StatusOptions configure Status.
type StatusOptions struct {
	// All reports every package instead of the one in the working directory.
	All bool
}

// Status reports the cached units of the selected packages and whether their
// dependencies still match.
func (a *App) Status(ctx context.Context, opts StatusOptions) ([]PackageReport, error) {
	namespaces := []string{a.config.Namespace}
	if opts.All {
		var err error
		namespaces, err = a.backend.Namespaces()
		if err != nil {
			return nil, err
		}
		slices.Sort(namespaces)
	}

	reports := make([]PackageReport, 0, len(namespaces))
	var errs error
	for _, ns := range namespaces {
		report, err := a.packageStatus(ctx, ns)
		if err != nil {
			errs = errors.Join(errs, zerr.With(err, "package", ns))
			continue
		}
		reports = append(reports, report)
	}
	return reports, errs
}

func (a *App) packageStatus(ctx context.Context, namespace string) (PackageReport, error) {
	blobs, err := a.backend.Open(namespace)
	if err != nil {
		return PackageReport{}, err
	}
	store := cas.NewFingerprintStore(blobs)

	cache, err := fingerprint.Load(ctx, store, a.digester, a.logger)
	if err != nil {
		return PackageReport{}, err
	}

	report := PackageReport{
		Namespace: namespace,
		Session:   cache.Session(),
		UpdatedAt: cache.UpdatedAt(),
		Libraries: len(cache.Recorded()),
		Files:     cache.Hashed(),
	}

	testFiles, err := store.TestFiles()
	if err != nil {
		a.logger.Warn("some test file caches could not be read", "package", namespace, "error", err.Error())
	}
	slices.SortFunc(testFiles, func(x, y *domain.TestFileCache) int {
		return strings.Compare(x.Path, y.Path)
	})

	for _, tf := range testFiles {
		for _, id := range slices.Sorted(maps.Keys(tf.Units)) {
			key, ok := domain.ParseTestUnitKey(tf.Path, id)
			if !ok {
				continue
			}
			entry := tf.Units[id]
			report.Units = append(report.Units, UnitReport{
				Key:   key,
				Entry: entry,
				Verdict: decision.Evaluate(decision.Input{
					Unit:      key,
					FileCache: tf,
					Files:     cache.Table(),
					Recorded:  cache.Recorded(),
					Current:   cache.Recorded(),
					Marker:    entry.Marker,
				}),
				Changed: decision.ChangedFiles(entry, cache.Table()),
			})
		}
	}
	return report, nil
}

// CleanOptions configure Clean.
type CleanOptions struct {
	// All removes the cache of every package instead of the one in the working directory.
	All bool
}

// Clean removes cached fingerprints.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	if opts.All {
		a.logger.Info("removing fingerprint cache", "backend", a.config.Backend)
		if err := a.backend.Clear(); err != nil {
			return err
		}
		a.logger.Info("removed fingerprint cache")
		return nil
	}

	blobs, err := a.backend.Open(a.config.Namespace)
	if err != nil {
		return err
	}
	a.logger.Info("removing fingerprint cache", "package", a.config.Namespace)
	if err := cas.NewFingerprintStore(blobs).Clear(); err != nil {
		return err
	}
	a.logger.Info("removed fingerprint cache", "package", a.config.Namespace)
	return nil
}

// Test runs go test in the working directory with fingerprint caching switched on.
// args are passed to go test unchanged.
func (a *App) Test(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := domain.Command{
		Args:   append([]string{"go", "test"}, args...),
		Dir:    filepath.Join(a.config.Root, filepath.FromSlash(a.config.Namespace)),
		Env:    map[string]string{domain.EnableEnvVar: "1"},
		Stdout: stdout,
		Stderr: stderr,
	}
	if err := a.executor.Execute(ctx, cmd); err != nil {
		return errors.Join(domain.ErrCommandFailed, err)
	}
	return nil
}

// Close releases the cache backend.
func (a *App) Close() error {
	return a.backend.Close()
}
