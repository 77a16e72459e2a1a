package wire

import (
	"github.com/mauops/mau-backend/internal/interfaces/rest/handler"
	"github.com/mauops/mau-backend/internal/logic"
)

type HandlerSet struct {
	UpdateHandler      *handler.UpdateHandler
	MetricsHandler     *handler.MetricsHandler
	HealthCheckHandler *handler.HealthCheckHandler

	// ResolverLogic is exposed for the startup warmup task.
	ResolverLogic *logic.ResolverLogic
}
