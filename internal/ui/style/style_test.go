package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/ui/style"
)

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		status domain.UnitStatus
		icon   string
	}{
		{domain.UnitStatusPassed, style.Check},
		{domain.UnitStatusFailed, style.Cross},
		{domain.UnitStatusCached, style.Tilde},
		{domain.UnitStatusRunning, style.Dot},
		{domain.UnitStatusPending, style.Circle},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			icon, _ := style.StatusIcon(tt.status)
			assert.Equal(t, tt.icon, icon)
			assert.Contains(t, style.RenderStatus(tt.status), tt.icon)
		})
	}
}
