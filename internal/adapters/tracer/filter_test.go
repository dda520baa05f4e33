package tracer_test

import (
	"go/build"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shiori/internal/adapters/tracer"
)

func TestFilter_Keep(t *testing.T) {
	t.Setenv("GOMODCACHE", "/cache/mod")

	root := "/src/app"
	f := tracer.NewFilter(root, []string{"*_gen.go", "internal/mocks/*"})

	tests := []struct {
		name     string
		file     string
		function string
		want     bool
	}{
		{"project file", "/src/app/pkg/helper.go", "example.com/app/pkg.Helper", true},
		{"test file", "/src/app/pkg/helper_test.go", "example.com/app/pkg.TestHelper", true},
		{"file outside root", "/src/lib/util.go", "example.com/lib.Util", true},
		{"empty path", "", "", false},
		{"relative path", "pkg/helper.go", "example.com/app/pkg.Helper", false},
		{"autogenerated", "<autogenerated>", "example.com/app.(*T).M", false},
		{"cgo file", "/src/app/_cgo_gotypes.go", "example.com/app._Cfunc_x", false},
		{"go installation", filepath.Join(build.Default.GOROOT, "src", "testing", "testing.go"), "testing.tRunner", false},
		{"module cache", "/cache/mod/github.com/x/y@v1.0.0/y.go", "github.com/x/y.Do", false},
		{"vendor tree", "/src/app/vendor/github.com/x/y/y.go", "github.com/x/y.Do", false},
		{"framework frame", "/home/u/shiori/internal/adapters/tracer/tracer.go", "go.trai.ch/shiori/internal/adapters/tracer.(*Tracer).Trace", false},
		{"framework facade", "/home/u/shiori/shiori.go", "go.trai.ch/shiori.(*Suite).Run", false},
		{"framework test file", "/home/u/shiori/probe/probe_test.go", "go.trai.ch/shiori/probe_test.helper", true},
		{"excluded by base name", "/src/app/pkg/model_gen.go", "example.com/app/pkg.init", false},
		{"excluded by relative path", "/src/app/internal/mocks/mock_store.go", "example.com/app/internal/mocks.New", false},
		{"touched file without frame", "/src/app/testdata/golden.json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Keep(tt.file, tt.function))
		})
	}
}

func TestFilter_Abs(t *testing.T) {
	f := tracer.NewFilter("/src/app", nil)

	assert.Equal(t, "/src/app/testdata/in.txt", f.Abs("testdata/in.txt"))
	assert.Equal(t, "/etc/hosts", f.Abs("/etc/../etc/hosts"))
}
