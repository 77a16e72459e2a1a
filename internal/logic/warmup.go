package logic

import (
	"context"

	"github.com/mauops/mau-backend/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Warmup primes the resolution cache for every configured product. Warmup
// failures are logged and skipped; a product whose feed is briefly
// unreachable should not keep the service from starting.
func (l *ResolverLogic) Warmup(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for name := range l.conf.Feed.Products {
		name := name // per-iteration copy; module targets pre-1.22 loop semantics
		g.Go(func() error {
			if _, err := l.ResolveLatest(ctx, name, model.SelectorLatest); err != nil {
				l.logger.Warn("warmup resolution failed",
					zap.String("product", name),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	return g.Wait()
}
