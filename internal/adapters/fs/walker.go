// Package fs provides file system adapters for walking and digesting files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root whose base name matches pattern.
// An empty pattern matches every file. Paths are yielded with root as prefix.
// VCS directories are never entered.
func (w *Walker) WalkFiles(root, pattern string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if pattern != "" {
				if matched, _ := filepath.Match(pattern, d.Name()); !matched {
					return nil
				}
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

func skipDir(name string) bool {
	return name == ".git" || name == ".jj"
}
