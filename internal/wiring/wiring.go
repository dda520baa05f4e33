// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/shiori/internal/adapters/buildinfo"
	_ "go.trai.ch/shiori/internal/adapters/cas"
	_ "go.trai.ch/shiori/internal/adapters/config"
	_ "go.trai.ch/shiori/internal/adapters/fs"
	_ "go.trai.ch/shiori/internal/adapters/logger"
	_ "go.trai.ch/shiori/internal/adapters/metrics"
	_ "go.trai.ch/shiori/internal/adapters/pkgdeps"
	_ "go.trai.ch/shiori/internal/adapters/shell"
	_ "go.trai.ch/shiori/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/shiori/internal/adapters/tracer"
	// Register app and engine nodes.
	_ "go.trai.ch/shiori/internal/app"
	_ "go.trai.ch/shiori/internal/engine/orchestrator"
)
