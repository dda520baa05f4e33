// Package buildinfo reports the libraries a test package is built against and the
// runtime that runs it.
package buildinfo

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/mod/modfile"
)

var _ ports.LibraryInventory = (*Inventory)(nil)

// Inventory implements ports.LibraryInventory from the module requirements of the project.
type Inventory struct {
	libraries domain.LibraryVersionSet
	marker    string
}

// New snapshots the requirements of the go.mod governing dir.
// Without a go.mod it falls back to the module build info embedded in the binary.
func New(dir string) (*Inventory, error) {
	info, hasInfo := debug.ReadBuildInfo()
	goVersion := ""
	if hasInfo {
		goVersion = info.GoVersion
	}

	path, found := FindGoMod(dir)
	if !found {
		if !hasInfo {
			return nil, domain.ErrBuildInfoUnavailable
		}
		return FromBuildInfo(info), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // go.mod of the project under test
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrGoModReadFailed.Error()), "path", path)
	}
	libs, err := ParseGoMod(path, data)
	if err != nil {
		return nil, err
	}
	return &Inventory{libraries: libs, marker: Marker(goVersion)}, nil
}

// FindGoMod returns the go.mod of the module containing dir.
func FindGoMod(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		path := filepath.Join(dir, domain.GoModFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ParseGoMod lists every required module at its selected version.
// Replaced modules report the version of their replacement, or its directory when
// the replacement is local.
func ParseGoMod(path string, data []byte) (domain.LibraryVersionSet, error) {
	file, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrGoModParseFailed.Error()), "path", path)
	}

	libs := make(domain.LibraryVersionSet, len(file.Require))
	for _, req := range file.Require {
		libs[req.Mod.Path] = req.Mod.Version
	}
	for _, rep := range file.Replace {
		version, required := libs[rep.Old.Path]
		if !required || (rep.Old.Version != "" && rep.Old.Version != version) {
			continue
		}
		if rep.New.Version != "" {
			libs[rep.Old.Path] = rep.New.Version
		} else {
			libs[rep.Old.Path] = rep.New.Path
		}
	}
	return libs, nil
}

// FromBuildInfo builds an Inventory from already decoded build info.
// Replaced modules report the version of their replacement.
func FromBuildInfo(info *debug.BuildInfo) *Inventory {
	libs := make(domain.LibraryVersionSet, len(info.Deps))
	for _, mod := range info.Deps {
		if mod == nil {
			continue
		}
		version := mod.Version
		if mod.Replace != nil {
			version = mod.Replace.Version
			if version == "" {
				version = mod.Replace.Path
			}
		}
		libs[mod.Path] = version
	}

	return &Inventory{
		libraries: libs,
		marker:    Marker(info.GoVersion),
	}
}

// Marker returns the environment marker of a binary built by goVersion for the running platform.
func Marker(goVersion string) string {
	if goVersion == "" {
		goVersion = runtime.Version()
	}
	return goVersion + " " + runtime.GOOS + "/" + runtime.GOARCH
}

// Libraries returns the snapshot taken when the Inventory was created.
func (i *Inventory) Libraries() domain.LibraryVersionSet {
	return i.libraries.Clone()
}

// EnvironmentMarker identifies the Go toolchain and platform of the binary.
func (i *Inventory) EnvironmentMarker() string {
	return i.marker
}

// Static returns an Inventory with fixed contents, for callers that already hold a snapshot.
func Static(libraries domain.LibraryVersionSet, marker string) *Inventory {
	return &Inventory{libraries: libraries.Clone(), marker: marker}
}
