//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/mauops/mau-backend/internal/cache"
	"github.com/mauops/mau-backend/internal/config"
	"github.com/mauops/mau-backend/internal/feed"
	"github.com/mauops/mau-backend/internal/provider"
	"github.com/mauops/mau-backend/internal/vercomp"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func NewHandlerSet(
	logger *zap.Logger,
	conf *config.Config,
	retriever feed.Retriever,
	verComparator *vercomp.VersionComparator,
	cg *cache.ResolveCacheGroup,
) *HandlerSet {
	panic(wire.Build(
		provider.LogicSet,
		provider.HandlerSet,
		wire.Struct(new(HandlerSet), "*"),
	))
}
