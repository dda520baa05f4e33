package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shiori/internal/adapters/telemetry/progrock"
	"go.trai.ch/shiori/internal/core/domain"
)

func TestRecorder_Units(t *testing.T) {
	recorder := progrock.New("session-1")
	ctx := context.Background()

	_, passed := recorder.Record(ctx, "a_test.go:12 (TestA)")
	passed.Log(domain.LogLevelDebug, "traced 3 files")
	passed.Complete(nil)

	_, failed := recorder.Record(ctx, "a_test.go:20 (TestB)")
	failed.Complete(errors.New("assertion failed"))

	_, cached := recorder.Record(ctx, "a_test.go:30 (TestC)")
	cached.Cached()

	require.NoError(t, recorder.Close())
}

func TestNew(t *testing.T) {
	assert.NotNil(t, progrock.New("s"))
}
