package tracer

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/shiori/internal/adapters/config"
	"go.trai.ch/shiori/internal/adapters/logger"
	"go.trai.ch/shiori/internal/adapters/pkgdeps"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
)

// NodeID is the unique identifier for the execution tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.ExecutionTracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, logger.NodeID, pkgdeps.NodeID},
		Run: func(ctx context.Context) (ports.ExecutionTracer, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			scanner, err := graft.Dep[ports.PackageScanner](ctx)
			if err != nil {
				return nil, err
			}
			return NewFromConfig(ctx, cfg, log, scanner), nil
		},
	})
}

// NewFromConfig creates a Tracer for the test package in the configured namespace.
// Every unit depends on the project sources the package is compiled from; the probe
// hook and, unless disabled, the sampler hook add files reached at runtime.
// A failed scan is logged and leaves only the hooks.
func NewFromConfig(ctx context.Context, cfg domain.Config, log ports.Logger, scanner ports.PackageScanner) *Tracer {
	hooks := []ports.CallHook{NewProbeHook()}
	if cfg.SampleInterval > 0 {
		hooks = append(hooks, NewSamplerHook(cfg.SampleInterval))
	}
	t := New(NewFilter(cfg.Root, cfg.Exclude), log, hooks...)

	dir := filepath.Join(cfg.Root, filepath.FromSlash(cfg.Namespace))
	files, err := scanner.Files(ctx, dir)
	if err != nil {
		log.Warn("package scan failed, only traced calls are recorded", "dir", dir, "error", err.Error())
		return t
	}
	t.WithPackageFiles(files)
	log.Debug("package sources scanned", "dir", dir, "files", len(t.static))
	return t
}
