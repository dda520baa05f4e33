package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shiori/internal/adapters/cas"
	"go.trai.ch/shiori/internal/adapters/fs"
	"go.trai.ch/shiori/internal/adapters/logger"
	"go.trai.ch/shiori/internal/adapters/shell"
	"go.trai.ch/shiori/internal/app"
	"go.trai.ch/shiori/internal/core/domain"
)

func provide(t *testing.T, stderr io.Writer) ComponentProvider {
	t.Helper()
	dir := t.TempDir()
	return func(_ context.Context) (*app.Components, func(), error) {
		cfg := domain.DefaultConfig(dir)
		cfg.CacheDir = filepath.Join(dir, domain.DefaultCachePath())
		log := logger.New(logger.Options{Output: stderr})
		backend := cas.NewFileBackend(cfg.CacheDir, fs.NewWalker())
		a := app.New(cfg, backend, fs.NewDigester(), shell.NewExecutor(log), log)
		return app.NewComponents(a, log, cfg), func() { _ = a.Close() }, nil
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedExit int
		expectedOut  string
	}{
		{name: "status of empty cache", args: []string{"status"}, expectedExit: 0, expectedOut: "no cached tests"},
		{name: "clean", args: []string{"clean", "--all"}, expectedExit: 0},
		{name: "version", args: []string{"version"}, expectedExit: 0, expectedOut: "shiori version"},
		{name: "unknown command", args: []string{"frobnicate"}, expectedExit: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := new(bytes.Buffer)
			stderr := new(bytes.Buffer)

			exitCode := run(context.Background(), tt.args, stdout, stderr, provide(t, stderr))

			assert.Equal(t, tt.expectedExit, exitCode)
			assert.Contains(t, stdout.String(), tt.expectedOut)
		})
	}
}

func TestRun_ProviderError(t *testing.T) {
	stderr := new(bytes.Buffer)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	exitCode := run(context.Background(), []string{"status"}, io.Discard, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}
