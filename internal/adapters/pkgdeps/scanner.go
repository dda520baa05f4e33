// Package pkgdeps lists the project source files a test package is compiled from.
package pkgdeps

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/tools/go/packages"
)

var _ ports.PackageScanner = (*Scanner)(nil)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedEmbedFiles |
	packages.NeedImports |
	packages.NeedDeps

// Scanner implements ports.PackageScanner with the go command's package loader.
type Scanner struct {
	root string
}

// NewScanner creates a Scanner keeping only files below the project root.
func NewScanner(root string) *Scanner {
	return &Scanner{root: filepath.Clean(root)}
}

// Files loads the package in dir with its tests and walks its import graph.
// Test sources are left out: each unit's own file is recorded separately.
func (s *Scanner) Files(ctx context.Context, dir string) ([]string, error) {
	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode:    loadMode,
		Tests:   true,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageScanFailed.Error()), "dir", dir)
	}
	if len(pkgs) == 0 {
		return nil, zerr.With(domain.ErrPackageScanFailed, "dir", dir)
	}

	prefix := s.root + string(filepath.Separator)
	seen := make(map[string]bool)
	var files []string
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		// The generated test main lives in the build cache.
		if strings.HasSuffix(pkg.ID, ".test") {
			return
		}
		for _, list := range [][]string{pkg.GoFiles, pkg.OtherFiles, pkg.EmbedFiles} {
			for _, file := range list {
				if seen[file] || strings.HasSuffix(file, "_test.go") || !strings.HasPrefix(file, prefix) {
					continue
				}
				seen[file] = true
				files = append(files, file)
			}
		}
	})

	slices.Sort(files)
	return files, nil
}
