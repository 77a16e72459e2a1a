package logic

import (
	"context"
	"fmt"
	"sort"

	"github.com/mauops/mau-backend/internal/cache"
	"github.com/mauops/mau-backend/internal/config"
	"github.com/mauops/mau-backend/internal/feed"
	"github.com/mauops/mau-backend/internal/metrics"
	"github.com/mauops/mau-backend/internal/model"
	"github.com/mauops/mau-backend/internal/pkg/errs"
	"github.com/mauops/mau-backend/internal/pkg/feedhash"
	"github.com/mauops/mau-backend/internal/vercomp"
	"go.uber.org/zap"
)

type ResolverLogic struct {
	logger        *zap.Logger
	conf          *config.Config
	retriever     feed.Retriever
	verComparator *vercomp.VersionComparator
	cacheGroup    *cache.ResolveCacheGroup
}

func NewResolverLogic(
	logger *zap.Logger,
	conf *config.Config,
	retriever feed.Retriever,
	verComparator *vercomp.VersionComparator,
	cacheGroup *cache.ResolveCacheGroup,
) *ResolverLogic {
	return &ResolverLogic{
		logger:        logger,
		conf:          conf,
		retriever:     retriever,
		verComparator: verComparator,
		cacheGroup:    cacheGroup,
	}
}

// Products lists the supported product names.
func (l *ResolverLogic) Products() []string {
	names := make([]string, 0, len(l.conf.Feed.Products))
	for name := range l.conf.Feed.Products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveLatest resolves the newest published update for a product. The
// product must be in the configured table and only the "latest" selector is
// supported; both are checked before anything is fetched. Any step failing
// aborts the whole resolution, nothing is partially emitted.
func (l *ResolverLogic) ResolveLatest(ctx context.Context, product, selector string) (*model.ResolvedUpdate, error) {
	code, ok := l.conf.Feed.Products[product]
	if !ok {
		metrics.ResolutionsTotal.WithLabelValues(product, "error").Inc()
		return nil, errs.ErrUnknownProduct.WithDetails(product)
	}
	if selector == "" {
		selector = model.SelectorLatest
	}
	if selector != model.SelectorLatest {
		metrics.ResolutionsTotal.WithLabelValues(product, "error").Inc()
		return nil, errs.ErrUnsupportedSelector.WithDetails(selector)
	}

	key := l.cacheGroup.GetCacheKey(product, selector)
	val, err := l.cacheGroup.ResolvedUpdateCache.ComputeIfAbsent(key, func() (*model.ResolvedUpdate, error) {
		return l.resolve(ctx, product, code)
	})
	if err != nil {
		metrics.ResolutionsTotal.WithLabelValues(product, "error").Inc()
		return nil, err
	}

	metrics.ResolutionsTotal.WithLabelValues(product, "ok").Inc()
	return *val, nil
}

func (l *ResolverLogic) resolve(ctx context.Context, product, code string) (*model.ResolvedUpdate, error) {
	url := fmt.Sprintf("%s/%s%s15.xml", l.conf.Feed.BaseURL, l.conf.Feed.CultureCode, code)

	data, err := l.retriever.Retrieve(ctx, url)
	if err != nil {
		return nil, err
	}
	digest := feedhash.Sum(data)

	entries, err := feed.Parse(data)
	if err != nil {
		return nil, err
	}

	entry, err := feed.SelectLatest(entries)
	if err != nil {
		return nil, err
	}

	l.logger.Info("selected update entry",
		zap.String("product", product),
		zap.String("title", entry.Title),
		zap.String("url", entry.Location),
		zap.String("feed_sha256", digest),
	)
	l.warnOnNewerVersion(entries, entry)

	description, err := entry.ShortDescription(feed.LocaleEnUS)
	if err != nil {
		return nil, err
	}

	maxOS, err := entry.MaxOS.Decode()
	if err != nil {
		return nil, err
	}
	minOS, err := entry.MinOS.Decode()
	if err != nil {
		return nil, err
	}

	installs, err := feed.BuildInstalls(entry, product)
	if err != nil {
		return nil, err
	}

	version, err := feed.ExtractTitleVersion(entry.Title)
	if err != nil {
		return nil, err
	}

	pkginfo := model.PkgInfo{
		Description: fmt.Sprintf("<html>%s</html>", description),
		DisplayName: entry.Title,
		Installs:    installs,
	}
	if maxOS != feed.UnboundedOSVersion {
		pkginfo.MaximumOSVersion = maxOS
	}
	if minOS != feed.UnboundedOSVersion {
		pkginfo.MinimumOSVersion = minOS
	}

	return &model.ResolvedUpdate{
		URL:        entry.Location,
		Version:    version,
		PkgInfo:    pkginfo,
		FeedSHA256: digest,
	}, nil
}

// warnOnNewerVersion flags feeds where an entry with a higher version carries
// an older date than the selected one. Selection stays date-based; this is a
// diagnostic for feed anomalies only.
func (l *ResolverLogic) warnOnNewerVersion(entries []feed.Entry, chosen *feed.Entry) {
	chosenVer, err := feed.ExtractTitleVersion(chosen.Title)
	if err != nil {
		return
	}
	for i := range entries {
		if entries[i].Title == chosen.Title {
			continue
		}
		ver, err := feed.ExtractTitleVersion(entries[i].Title)
		if err != nil {
			continue
		}
		ret := l.verComparator.Compare(chosenVer, ver)
		if ret.Comparable && ret.Result == vercomp.Less {
			l.logger.Warn("feed entry with a higher version has an older date",
				zap.String("selected title", chosen.Title),
				zap.String("selected version", chosenVer),
				zap.String("other title", entries[i].Title),
				zap.String("other version", ver),
			)
		}
	}
}
