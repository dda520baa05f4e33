package orchestrator_test

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shiori/internal/adapters/buildinfo"
	"go.trai.ch/shiori/internal/adapters/cas"
	"go.trai.ch/shiori/internal/adapters/fs"
	"go.trai.ch/shiori/internal/adapters/logger"
	"go.trai.ch/shiori/internal/adapters/metrics"
	"go.trai.ch/shiori/internal/adapters/pkgdeps"
	"go.trai.ch/shiori/internal/adapters/telemetry/progrock"
	"go.trai.ch/shiori/internal/adapters/tracer"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/shiori/internal/engine/decision"
	"go.trai.ch/shiori/internal/engine/orchestrator"
	"go.trai.ch/shiori/probe"
)

// unit is a test case whose execution reports the files it reads through the probe package.
type unit struct {
	key      domain.TestUnitKey
	noCache  bool
	touches  []string
	declared []string
	fail     bool

	ran    int
	cached string
}

func (u *unit) Key() domain.TestUnitKey { return u.key }
func (u *unit) NoCache() bool           { return u.noCache }
func (u *unit) Declared() []string      { return u.declared }
func (u *unit) MarkCached(reason string) {
	u.cached = reason
}

func (u *unit) Run() error {
	u.ran++
	u.cached = ""
	probe.Touch(u.touches...)
	if u.fail {
		return errors.New("assertion failed")
	}
	return nil
}

type project struct {
	t      *testing.T
	dir    string
	cache  string
	libs   domain.LibraryVersionSet
	marker string
	// tracer overrides the probe-only tracer.
	tracer func(ports.Logger) ports.ExecutionTracer
}

func newProject(t *testing.T) *project {
	t.Helper()
	dir := t.TempDir()
	return &project{
		t:      t,
		dir:    dir,
		cache:  filepath.Join(dir, domain.DefaultCachePath()),
		libs:   domain.LibraryVersionSet{"github.com/x/y": "v1.0.0"},
		marker: "go1.25.3 linux/amd64",
	}
}

func (p *project) write(name, content string) string {
	p.t.Helper()
	path := filepath.Join(p.dir, name)
	require.NoError(p.t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	//nolint:gosec // Test file permissions
	require.NoError(p.t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func (p *project) unit(testFile string, line int, touches ...string) *unit {
	return &unit{key: domain.TestUnitKey{File: testFile, Line: line}, touches: touches}
}

// session runs units in one fresh session, as one `go test` invocation would.
func (p *project) session(units ...*unit) []domain.UnitResult {
	p.t.Helper()
	ctx := context.Background()
	log := logger.New(logger.Options{Output: io.Discard, Level: domain.LogLevelDebug})
	var tr ports.ExecutionTracer = tracer.New(tracer.NewFilter(p.dir, nil), log, tracer.NewProbeHook())
	if p.tracer != nil {
		tr = p.tracer(log)
	}

	s, err := orchestrator.Start(ctx, orchestrator.Deps{
		Store:     cas.NewFingerprintStore(cas.NewFileStore(p.cache, fs.NewWalker())),
		Digester:  fs.NewDigester(),
		Inventory: buildinfo.Static(p.libs, p.marker),
		Tracer:    tr,
		Logger:    log,
		Telemetry: progrock.New(p.t.Name()),
		Metrics:   metrics.New(filepath.Join(p.dir, "metrics.prom")),
	})
	require.NoError(p.t, err)

	results := make([]domain.UnitResult, 0, len(units))
	for _, u := range units {
		results = append(results, s.RunUnit(ctx, u))
	}
	require.NoError(p.t, s.Finish(ctx))
	return results
}

func statuses(results []domain.UnitResult) []domain.UnitStatus {
	out := make([]domain.UnitStatus, 0, len(results))
	for _, r := range results {
		out = append(out, r.Status)
	}
	return out
}

func TestProperty_FirstRunThenIdempotent(t *testing.T) {
	p := newProject(t)
	testFile := p.write("pkg/a_test.go", "package pkg")
	helper := p.write("pkg/helper.go", "package pkg")
	u := p.unit(testFile, 10, helper)

	first := p.session(u)
	require.Equal(t, domain.UnitStatusPassed, first[0].Status)
	assert.Equal(t, string(decision.ReasonNoFileCache), first[0].Reason)
	assert.Equal(t, []string{helper, testFile}, first[0].Files)

	for range 3 {
		again := p.session(u)
		assert.Equal(t, domain.UnitStatusCached, again[0].Status)
	}
	assert.Equal(t, 1, u.ran)
	assert.Equal(t, string(decision.ReasonCached), u.cached)
}

func TestProperty_HelperEditScenario(t *testing.T) {
	p := newProject(t)
	fileA := p.write("fileA_test.go", "package a")
	helper := p.write("helper.go", "package a // d2")
	u := p.unit(fileA, 10, helper)

	p.session(u)
	assert.Equal(t, domain.UnitStatusCached, p.session(u)[0].Status)

	p.write("helper.go", "package a // d3")
	third := p.session(u)
	assert.Equal(t, domain.UnitStatusPassed, third[0].Status)
	assert.Equal(t, string(decision.ReasonDependencyChanged), third[0].Reason)

	assert.Equal(t, domain.UnitStatusCached, p.session(u)[0].Status, "digests were refreshed by the rerun")
	assert.Equal(t, 2, u.ran)
}

func TestProperty_OnlyAffectedUnitsRun(t *testing.T) {
	p := newProject(t)
	testFile := p.write("a_test.go", "package a")
	helper := p.write("helper.go", "v1")
	other := p.write("other.go", "v1")
	uses := p.unit(testFile, 10, helper)
	independent := p.unit(testFile, 20, other)

	p.session(uses, independent)
	p.write("helper.go", "v2")

	results := p.session(uses, independent)
	assert.Equal(t, []domain.UnitStatus{domain.UnitStatusPassed, domain.UnitStatusCached}, statuses(results))
}

func TestProperty_LibrarySensitivity(t *testing.T) {
	p := newProject(t)
	testFile := p.write("a_test.go", "package a")
	u := p.unit(testFile, 10)

	p.session(u)

	p.libs = domain.LibraryVersionSet{"github.com/x/y": "v1.0.0", "github.com/new/lib": "v0.1.0"}
	assert.Equal(t, domain.UnitStatusCached, p.session(u)[0].Status, "added libraries are ignored")

	p.libs = domain.LibraryVersionSet{"github.com/x/y": "v1.1.0", "github.com/new/lib": "v0.1.0"}
	res := p.session(u)
	assert.Equal(t, domain.UnitStatusPassed, res[0].Status)
	assert.Equal(t, string(decision.ReasonLibraryChanged), res[0].Reason)

	p.libs = domain.LibraryVersionSet{"github.com/x/y": "v1.1.0"}
	assert.Equal(t, domain.UnitStatusPassed, p.session(u)[0].Status, "removed libraries invalidate")
}

func TestProperty_EnvironmentMarker(t *testing.T) {
	p := newProject(t)
	testFile := p.write("a_test.go", "package a")
	u := p.unit(testFile, 10)

	p.session(u)
	p.marker = "go1.26.0 linux/amd64"

	res := p.session(u)
	assert.Equal(t, domain.UnitStatusPassed, res[0].Status)
	assert.Equal(t, string(decision.ReasonEnvironmentChanged), res[0].Reason)
}

func TestProperty_FailuresAlwaysRerun(t *testing.T) {
	p := newProject(t)
	testFile := p.write("a_test.go", "package a")
	u := p.unit(testFile, 10)
	u.fail = true

	assert.Equal(t, domain.UnitStatusFailed, p.session(u)[0].Status)

	res := p.session(u)
	assert.Equal(t, domain.UnitStatusFailed, res[0].Status)
	assert.Equal(t, string(decision.ReasonPriorFailure), res[0].Reason)

	u.fail = false
	assert.Equal(t, domain.UnitStatusPassed, p.session(u)[0].Status)
	assert.Equal(t, domain.UnitStatusCached, p.session(u)[0].Status)
}

func TestProperty_DeletionSafety(t *testing.T) {
	p := newProject(t)
	testFile := p.write("a_test.go", "package a")
	helper := p.write("helper.go", "package a")
	u := p.unit(testFile, 10, helper)

	p.session(u)
	require.NoError(t, os.Remove(helper))

	res := p.session(u)
	assert.Equal(t, domain.UnitStatusPassed, res[0].Status)
	assert.Equal(t, string(decision.ReasonDependencyChanged), res[0].Reason)

	assert.Equal(t, domain.UnitStatusPassed, p.session(u)[0].Status, "a missing dependency never validates")
}

func TestProperty_ClearedCacheRunsEverything(t *testing.T) {
	p := newProject(t)
	testFile := p.write("a_test.go", "package a")
	u := p.unit(testFile, 10)

	p.session(u)
	require.NoError(t, os.RemoveAll(p.cache))

	assert.Equal(t, domain.UnitStatusPassed, p.session(u)[0].Status)
	assert.Equal(t, 2, u.ran)
}

func TestProperty_NoCacheOverride(t *testing.T) {
	p := newProject(t)
	testFile := p.write("a_test.go", "package a")
	u := p.unit(testFile, 10)
	u.noCache = true

	for range 3 {
		res := p.session(u)
		assert.Equal(t, domain.UnitStatusPassed, res[0].Status)
	}
	assert.Equal(t, 3, u.ran)
}

func TestProperty_DeclaredFiles(t *testing.T) {
	p := newProject(t)
	testFile := p.write("a_test.go", "package a")
	fixture := p.write("testdata/golden.txt", "v1")
	u := p.unit(testFile, 10)
	u.declared = []string{"testdata/golden.txt"}

	first := p.session(u)
	assert.Contains(t, first[0].Files, fixture)
	assert.Equal(t, domain.UnitStatusCached, p.session(u)[0].Status)

	p.write("testdata/golden.txt", "v2")
	assert.Equal(t, domain.UnitStatusPassed, p.session(u)[0].Status)
}

func TestProperty_PartialRunsStaySound(t *testing.T) {
	p := newProject(t)
	testA := p.write("a_test.go", "package a")
	testB := p.write("b_test.go", "package a")
	helper := p.write("helper.go", "v1")
	a := p.unit(testA, 10, helper)
	b := p.unit(testB, 10, helper)

	p.session(a, b)
	p.write("helper.go", "v2")

	// Only b runs, as under go test -run.
	assert.Equal(t, domain.UnitStatusPassed, p.session(b)[0].Status)

	res := p.session(a, b)
	assert.Equal(t, []domain.UnitStatus{domain.UnitStatusPassed, domain.UnitStatusCached}, statuses(res))
	assert.Equal(t, 2, a.ran)
}

func TestProperty_MetricsWritten(t *testing.T) {
	p := newProject(t)
	testFile := p.write("a_test.go", "package a")
	u := p.unit(testFile, 10)

	p.session(u)

	data, err := os.ReadFile(filepath.Join(p.dir, "metrics.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `shiori_units_total{reason="no_file_cache",status="passed"} 1`)
}

func TestProperty_PartialRunsAfterLibraryChange(t *testing.T) {
	p := newProject(t)
	testA := p.write("a_test.go", "package a")
	testB := p.write("b_test.go", "package a")
	a := p.unit(testA, 10)
	b := p.unit(testB, 10)

	p.session(a, b)
	p.libs = domain.LibraryVersionSet{"github.com/x/y": "v2.0.0"}
	p.session(b)

	res := p.session(a, b)
	assert.Equal(t, []domain.UnitStatus{domain.UnitStatusPassed, domain.UnitStatusCached}, statuses(res))
}

func TestProperty_PackageSourcesInvalidateWithoutInstrumentation(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}
	t.Setenv("GOWORK", "off")
	t.Setenv("GOFLAGS", "-mod=mod")
	t.Setenv("GOTOOLCHAIN", "local")

	p := newProject(t)
	p.write("go.mod", "module example.com/proj\n\ngo 1.21\n")
	testFile := p.write("pkg/pkg_test.go", "package pkg\n")
	p.write("pkg/helper.go", "package pkg\n\nimport \"example.com/proj/lib\"\n\nfunc Add(a, b int) int { return lib.Sum(a, b) }\n")
	p.write("lib/lib.go", "package lib\n\nfunc Sum(a, b int) int { return a + b }\n")
	p.write("other/other.go", "package other\n")
	p.tracer = func(log ports.Logger) ports.ExecutionTracer {
		cfg := domain.DefaultConfig(p.dir)
		cfg.Namespace = "pkg"
		cfg.SampleInterval = 0
		return tracer.NewFromConfig(context.Background(), cfg, log, pkgdeps.NewScanner(p.dir))
	}

	// The unit reports nothing itself, like a test calling Add.
	u := p.unit(testFile, 10)

	first := p.session(u)
	require.Equal(t, domain.UnitStatusPassed, first[0].Status)
	assert.Equal(t, []string{
		filepath.Join(p.dir, "lib", "lib.go"),
		filepath.Join(p.dir, "pkg", "helper.go"),
		testFile,
	}, first[0].Files)
	assert.Equal(t, domain.UnitStatusCached, p.session(u)[0].Status)

	p.write("other/other.go", "package other // edited\n")
	assert.Equal(t, domain.UnitStatusCached, p.session(u)[0].Status, "unrelated packages do not invalidate")

	p.write("pkg/helper.go", "package pkg\n\nimport \"example.com/proj/lib\"\n\nfunc Add(a, b int) int { return lib.Sum(b, a) }\n")
	res := p.session(u)
	assert.Equal(t, domain.UnitStatusPassed, res[0].Status)
	assert.Equal(t, string(decision.ReasonDependencyChanged), res[0].Reason)
	assert.Equal(t, domain.UnitStatusCached, p.session(u)[0].Status)

	p.write("lib/lib.go", "package lib\n\nfunc Sum(a, b int) int { return b + a }\n")
	res = p.session(u)
	assert.Equal(t, domain.UnitStatusPassed, res[0].Status, "transitive imports invalidate")
	assert.Equal(t, 3, u.ran)
}
