package main

import (
	"context"

	"github.com/mauops/mau-backend/internal/application"
	"github.com/mauops/mau-backend/internal/cache"
	"github.com/mauops/mau-backend/internal/config"
	"github.com/mauops/mau-backend/internal/db"
	"github.com/mauops/mau-backend/internal/feed"
	"github.com/mauops/mau-backend/internal/interfaces/rest"
	"github.com/mauops/mau-backend/internal/logger"
	"github.com/mauops/mau-backend/internal/pkg/restserver"
	"github.com/mauops/mau-backend/internal/vercomp"
	"github.com/mauops/mau-backend/internal/wire"
	"go.uber.org/zap"

	_ "github.com/mauops/mau-backend/internal/banner"
)

func main() {

	setUpConfigAndLog()

	var (
		conf          = config.GConfig
		rdb           = db.NewRedis(conf)
		group         = cache.NewResolveCacheGroup(conf, rdb)
		verComparator = vercomp.NewComparator()
		retriever     = feed.NewHTTPRetriever(conf)
	)

	handlerSet := wire.NewHandlerSet(zap.L(), conf, retriever, verComparator, group)

	router := rest.NewRouter()

	rest.InitRoutes(router, handlerSet)

	ctx := context.Background()

	if conf.Warmup.Enabled {
		go func() {
			if err := handlerSet.ResolverLogic.Warmup(ctx); err != nil {
				zap.L().Warn("cache warmup did not complete",
					zap.Error(err),
				)
			}
		}()
	}

	app := application.New()
	app.AddAdapter(restserver.NewAdapter(router))
	app.Run(ctx)
}

func setUpConfigAndLog() {
	config.GConfig = config.New()
	zap.ReplaceGlobals(logger.New(config.GConfig))
}
