package ports

import (
	"context"

	"go.trai.ch/shiori/internal/core/domain"
)

// Executor runs external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd and waits for it. A non-zero exit is reported as domain.ErrCommandFailed.
	Execute(ctx context.Context, cmd domain.Command) error
}
