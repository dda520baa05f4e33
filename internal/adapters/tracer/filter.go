package tracer

import (
	"go/build"
	"os"
	"path/filepath"
	"strings"
)

// FrameworkModule is the module path of shiori itself. Its frames are never dependencies.
const FrameworkModule = "go.trai.ch/shiori"

// Filter decides which captured source paths are project files.
type Filter struct {
	root     string
	excluded []string
	exclude  []string
}

// NewFilter creates a Filter for the project at root.
// exclude holds glob patterns matched against root-relative paths and base names.
func NewFilter(root string, exclude []string) *Filter {
	return &Filter{
		root:     filepath.Clean(root),
		excluded: externalTrees(),
		exclude:  exclude,
	}
}

// externalTrees lists the directories holding code that belongs to the Go installation
// or to third-party modules.
func externalTrees() []string {
	var trees []string
	add := func(dir string) {
		if dir == "" {
			return
		}
		trees = append(trees, filepath.Clean(dir)+string(filepath.Separator))
	}

	add(build.Default.GOROOT)
	if modCache := os.Getenv("GOMODCACHE"); modCache != "" {
		add(modCache)
	}
	for _, gopath := range filepath.SplitList(build.Default.GOPATH) {
		add(filepath.Join(gopath, "pkg", "mod"))
	}
	return trees
}

// Keep reports whether file, reached through function, is a project file.
// function may be empty for files reported without a frame.
func (f *Filter) Keep(file, function string) bool {
	if file == "" || !filepath.IsAbs(file) {
		return false
	}
	if strings.Contains(file, "<autogenerated>") || strings.HasPrefix(filepath.Base(file), "_cgo_") {
		return false
	}
	for _, tree := range f.excluded {
		if strings.HasPrefix(file, tree) {
			return false
		}
	}
	if strings.Contains(file, string(filepath.Separator)+"vendor"+string(filepath.Separator)) {
		return false
	}
	if isFrameworkFrame(file, function) {
		return false
	}
	return !f.Excluded(file)
}

// Excluded reports whether file matches a user exclude pattern.
func (f *Filter) Excluded(file string) bool {
	if len(f.exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(f.root, file)
	if err != nil {
		rel = file
	}
	base := filepath.Base(file)
	for _, pattern := range f.exclude {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

// Abs resolves path against the project root.
func (f *Filter) Abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(f.root, path)
}

// isFrameworkFrame reports frames of shiori's own packages. Test files of those
// packages are project code of shiori's own suite.
func isFrameworkFrame(file, function string) bool {
	if !strings.HasPrefix(function, FrameworkModule+"/") && !strings.HasPrefix(function, FrameworkModule+".") {
		return false
	}
	return !strings.HasSuffix(file, "_test.go")
}
