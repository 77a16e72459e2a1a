package provider

import (
	"github.com/mauops/mau-backend/internal/interfaces/rest/handler"
	"github.com/google/wire"
)

var HandlerSet = wire.NewSet(
	handler.NewUpdateHandler,
	handler.NewMetricsHandler,
	handler.NewHealthCheckHandler,
)
