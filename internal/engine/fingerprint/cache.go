// Package fingerprint maintains the dependency fingerprints of a test session.
package fingerprint

import (
	"context"
	"errors"
	"maps"
	"runtime"
	"slices"
	"time"

	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Cache is the in-memory fingerprint model of one session.
// It is not safe for concurrent use once loaded.
type Cache struct {
	store    ports.FingerprintStore
	digester ports.Digester
	logger   ports.Logger

	recorded domain.LibraryVersionSet
	session  string
	updated  time.Time
	table    domain.FileTable
	hashed   int

	testFiles map[string]*domain.TestFileCache
	dirty     map[string]bool
	// fresh holds the unit IDs recorded this session, per test file.
	fresh map[string]map[string]bool
}

// Load reads the global file state and digests every recorded file once.
// A corrupt or unreadable global state is logged and treated as empty.
func Load(ctx context.Context, store ports.FingerprintStore, digester ports.Digester, logger ports.Logger) (*Cache, error) {
	global, err := store.LoadGlobal()
	if err != nil {
		logger.Warn("ignoring unreadable global file state", "error", err.Error())
	}
	if global == nil {
		global = domain.NewGlobalFileState()
	}

	c := &Cache{
		store:     store,
		digester:  digester,
		logger:    logger,
		recorded:  global.Libraries.Clone(),
		session:   global.Session,
		updated:   global.UpdatedAt,
		table:     make(domain.FileTable, len(global.Files)),
		testFiles: make(map[string]*domain.TestFileCache),
		dirty:     make(map[string]bool),
		fresh:     make(map[string]map[string]bool),
	}

	if err := c.prehash(ctx, global.Files); err != nil {
		return nil, err
	}
	return c, nil
}

// prehash compares every persisted digest against the file's current content.
func (c *Cache) prehash(ctx context.Context, persisted map[string]domain.Digest) error {
	paths := slices.Sorted(maps.Keys(persisted))
	records := make([]*domain.FileRecord, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec := &domain.FileRecord{Path: path, State: domain.FileChanged}
			digest, err := c.digester.Digest(path)
			if err == nil {
				rec.Digest = digest
				if digest == persisted[path] {
					rec.State = domain.FileUnchanged
				}
			}
			records[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, rec := range records {
		c.table[rec.Path] = rec
		if rec.State != domain.FileUnchanged {
			c.logger.Debug("dependency changed", "file", rec.Path, "state", rec.State.String())
		}
	}
	c.hashed = len(records)
	return nil
}

// Hashed returns how many files were digested at load.
func (c *Cache) Hashed() int {
	return c.hashed
}

// Recorded returns the library snapshot persisted by the previous session.
func (c *Cache) Recorded() domain.LibraryVersionSet {
	return c.recorded
}

// Session returns the id of the session that last flushed the loaded state.
func (c *Cache) Session() string {
	return c.session
}

// UpdatedAt returns when the loaded state was last flushed.
func (c *Cache) UpdatedAt() time.Time {
	return c.updated
}

// Table returns the global file-state table.
func (c *Cache) Table() domain.FileTable {
	return c.table
}

// TestFile returns the cache of the test file at path, loading it on first use.
// It returns nil when nothing was ever recorded for the file.
func (c *Cache) TestFile(path string) *domain.TestFileCache {
	cache := c.loadTestFile(path)
	if len(cache.Units) == 0 {
		return nil
	}
	return cache
}

func (c *Cache) loadTestFile(path string) *domain.TestFileCache {
	if cache, ok := c.testFiles[path]; ok {
		return cache
	}

	cache, err := c.store.LoadTestFile(path)
	if err != nil {
		c.logger.Warn("ignoring unreadable test file cache", "file", path, "error", err.Error())
	}
	if cache == nil {
		cache = domain.NewTestFileCache(path)
	}
	c.testFiles[path] = cache
	return cache
}

// Record stores the outcome of unit, replacing any previous entry, and adds
// files not yet in the table with their current digest.
func (c *Cache) Record(unit domain.TestUnitKey, marker string, passed bool, files []string) {
	cache := c.loadTestFile(unit.File)
	cache.Put(unit, &domain.TestUnitCacheEntry{
		Marker:     marker,
		Passed:     passed,
		Files:      slices.Clone(files),
		RecordedAt: time.Now().UTC(),
	})
	c.dirty[unit.File] = true
	if c.fresh[unit.File] == nil {
		c.fresh[unit.File] = make(map[string]bool)
	}
	c.fresh[unit.File][unit.ID()] = true

	for _, file := range files {
		c.discover(file)
	}
}

// discover adds a file seen for the first time this session.
func (c *Cache) discover(path string) {
	if _, ok := c.table[path]; ok {
		return
	}
	rec := &domain.FileRecord{Path: path, State: domain.FileFirstSeen}
	digest, err := c.digester.Digest(path)
	if err != nil {
		c.logger.Debug("dependency not readable", "file", path, "error", err.Error())
	} else {
		rec.Digest = digest
	}
	c.table[path] = rec
}

// Flush persists every modified test file cache and the global file state.
// Entries not recorded this session whose dependencies are no longer confirmed
// unchanged are dropped first, so a digest or library snapshot advanced by this
// session cannot validate an entry that never ran against it.
func (c *Cache) Flush(libraries domain.LibraryVersionSet, session string) error {
	var errs error

	_, drifted := c.recorded.Drift(libraries)
	c.dropStale(drifted)

	for _, path := range slices.Sorted(maps.Keys(c.dirty)) {
		if err := c.store.SaveTestFile(c.testFiles[path]); err != nil {
			errs = errors.Join(errs, zerr.With(err, "file", path))
		}
	}

	global := domain.NewGlobalFileState()
	global.Libraries = libraries.Clone()
	global.Session = session
	global.UpdatedAt = time.Now().UTC()
	for path, rec := range c.table {
		if rec.Digest != "" {
			global.Files[path] = rec.Digest
		}
	}
	if err := c.store.SaveGlobal(global); err != nil {
		errs = errors.Join(errs, err)
	}

	if errs != nil {
		return zerr.Wrap(errs, domain.ErrSessionFlushFailed.Error())
	}
	return nil
}

func (c *Cache) dropStale(all bool) {
	if !all && !c.anyUnconfirmed() {
		return
	}

	persisted, err := c.store.TestFiles()
	if err != nil {
		c.logger.Warn("some test file caches could not be read", "error", err.Error())
	}
	for _, cache := range persisted {
		if _, ok := c.testFiles[cache.Path]; !ok {
			c.testFiles[cache.Path] = cache
		}
	}

	for path, cache := range c.testFiles {
		for id, entry := range cache.Units {
			if c.fresh[path][id] {
				continue
			}
			if all || slices.ContainsFunc(entry.Files, func(f string) bool { return !c.table.Unchanged(f) }) {
				delete(cache.Units, id)
				c.dirty[path] = true
				c.logger.Debug("dropping stale fingerprint", "file", path, "unit", id)
			}
		}
	}
}

func (c *Cache) anyUnconfirmed() bool {
	for _, rec := range c.table {
		if rec.State != domain.FileUnchanged {
			return true
		}
	}
	return false
}
