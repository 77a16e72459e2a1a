package rest

import (
	"github.com/mauops/mau-backend/internal/interfaces/rest/handler"
	"github.com/mauops/mau-backend/internal/middleware"
	"github.com/mauops/mau-backend/internal/wire"
	"github.com/bytedance/sonic"
	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func NewRouter() *fiber.App {

	router := fiber.New(fiber.Config{
		AppName:     "mau-backend",
		ProxyHeader: fiber.HeaderXForwardedFor,

		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,

		ErrorHandler: handler.Error,
	})

	return router
}

func InitRoutes(router *fiber.App, handlerSet *wire.HandlerSet) {

	router.Use(fiberzap.New(fiberzap.Config{
		Logger: zap.L(),
		SkipURIs: []string{
			"/metrics",
			"/health",
		},
	}))

	router.Use(middleware.NewResolutionIDRecorder())

	r := router.Group("/")

	handlerSet.UpdateHandler.Register(r)

	handlerSet.MetricsHandler.Register(r)

	handlerSet.HealthCheckHandler.Register(r)
}
