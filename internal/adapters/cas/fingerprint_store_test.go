package cas_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shiori/internal/adapters/cas"
	"go.trai.ch/shiori/internal/adapters/fs"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newStore(t *testing.T) (*cas.FingerprintStore, *cas.FileStore) {
	t.Helper()
	blobs := cas.NewFileStore(t.TempDir(), fs.NewWalker())
	return cas.NewFingerprintStore(blobs), blobs
}

func TestFingerprintStore_Global(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)

	empty, err := store.LoadGlobal()
	require.NoError(t, err)
	assert.Empty(t, empty.Files)
	assert.Empty(t, empty.Libraries)

	state := domain.NewGlobalFileState()
	state.Libraries["github.com/x/y"] = "v1.0.0"
	state.Files["/proj/helper.go"] = "00000000deadbeef"
	state.Session = "session-1"
	state.UpdatedAt = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveGlobal(state))

	got, err := store.LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestFingerprintStore_TestFile(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	path := "/proj/pkg/a_test.go"

	empty, err := store.LoadTestFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, empty.Path)
	assert.Empty(t, empty.Units)

	cache := domain.NewTestFileCache(path)
	cache.Put(domain.TestUnitKey{File: path, Line: 12}, &domain.TestUnitCacheEntry{
		Marker: "go1.25.3 linux/amd64",
		Passed: true,
		Files:  []string{"/proj/helper.go", path},
	})
	cache.Put(domain.TestUnitKey{File: path, Line: 30, Name: "TestB/case"}, &domain.TestUnitCacheEntry{
		Marker: "go1.25.3 linux/amd64",
		Files:  []string{path},
	})
	require.NoError(t, store.SaveTestFile(cache))

	got, err := store.LoadTestFile(path)
	require.NoError(t, err)
	assert.Equal(t, cache, got)

	other, err := store.LoadTestFile("/proj/pkg/b_test.go")
	require.NoError(t, err)
	assert.Empty(t, other.Units, "caches are keyed by absolute path")
}

func TestFingerprintStore_Corrupt(t *testing.T) {
	t.Parallel()

	store, blobs := newStore(t)
	path := "/proj/a_test.go"

	require.NoError(t, blobs.Write(domain.GlobalStateKey, []byte("{ invalid json")))
	require.NoError(t, blobs.Write(cas.TestFileKey(path), []byte("[]")))

	global, err := store.LoadGlobal()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
	require.NotNil(t, global, "a corrupt blob still yields an empty state")
	assert.Empty(t, global.Files)

	cache, err := store.LoadTestFile(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
	require.NotNil(t, cache)
	assert.Equal(t, path, cache.Path)
	assert.Empty(t, cache.Units)
}

func TestFingerprintStore_TestFiles(t *testing.T) {
	t.Parallel()

	store, blobs := newStore(t)

	require.NoError(t, store.SaveGlobal(domain.NewGlobalFileState()))
	for _, path := range []string{"/proj/a_test.go", "/proj/b_test.go"} {
		require.NoError(t, store.SaveTestFile(domain.NewTestFileCache(path)))
	}
	require.NoError(t, blobs.Write(cas.TestFileKey("/proj/c_test.go"), []byte("nope")))

	caches, err := store.TestFiles()
	require.Error(t, err, "corrupt blobs are reported")
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())

	var paths []string
	for _, c := range caches {
		paths = append(paths, c.Path)
	}
	assert.ElementsMatch(t, []string{"/proj/a_test.go", "/proj/b_test.go"}, paths)
}

func TestFingerprintStore_ReadError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	blobs := mocks.NewMockBlobStore(ctrl)
	store := cas.NewFingerprintStore(blobs)

	blobs.EXPECT().Read(domain.GlobalStateKey).Return(nil, domain.ErrStoreReadFailed)

	state, err := store.LoadGlobal()
	assert.ErrorIs(t, err, domain.ErrStoreReadFailed)
	assert.NotNil(t, state)
}

func TestTestFileKey(t *testing.T) {
	t.Parallel()

	key := cas.TestFileKey("/proj/a_test.go")
	assert.Len(t, key, 64)
	assert.Equal(t, key, cas.TestFileKey("/proj/a_test.go"))
	assert.NotEqual(t, key, cas.TestFileKey("/proj/b_test.go"))
}
