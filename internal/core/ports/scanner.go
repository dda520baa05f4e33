package ports

import "context"

// PackageScanner lists the source files a test package is built from.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type PackageScanner interface {
	// Files returns the sorted absolute paths of the non-test source files of the
	// package in dir and of every project package it imports, test imports included.
	Files(ctx context.Context, dir string) ([]string, error)
}
