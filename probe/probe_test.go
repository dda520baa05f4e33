package probe_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shiori/probe"
)

type collector struct {
	mu     sync.Mutex
	frames []probe.Frame
}

func (c *collector) sink(frames []probe.Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, frames...)
}

func (c *collector) files() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.frames))
	for _, f := range c.frames {
		out = append(out, f.File)
	}
	return out
}

func helper() {
	probe.Mark()
}

func TestMark_WithoutSinkIsNoop(t *testing.T) {
	assert.False(t, probe.Enabled())
	probe.Mark()
	probe.Touch("x")
}

func TestMark_ReportsCallerStack(t *testing.T) {
	c := &collector{}
	uninstall := probe.Install(c.sink)
	defer uninstall()

	require.True(t, probe.Enabled())
	helper()

	self, err := filepath.Abs("probe_test.go")
	require.NoError(t, err)
	assert.Contains(t, c.files(), self)

	var sawHelper bool
	for _, f := range c.frames {
		if f.Function == "go.trai.ch/shiori/probe_test.helper" {
			sawHelper = true
		}
	}
	assert.True(t, sawHelper, "the marking function is the first reported frame")
}

func TestTouch_ResolvesPaths(t *testing.T) {
	c := &collector{}
	uninstall := probe.Install(c.sink)
	defer uninstall()

	probe.Touch(filepath.Join("testdata", "fixture.json"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(wd, "testdata", "fixture.json")}, c.files())
}

func TestInstall_UninstallOnlyRemovesOwnSink(t *testing.T) {
	first := &collector{}
	second := &collector{}

	uninstallFirst := probe.Install(first.sink)
	uninstallSecond := probe.Install(second.sink)

	uninstallFirst()
	assert.True(t, probe.Enabled(), "a stale uninstall must not remove the newer sink")

	helper()
	assert.Empty(t, first.files())
	assert.NotEmpty(t, second.files())

	uninstallSecond()
	assert.False(t, probe.Enabled())
}
