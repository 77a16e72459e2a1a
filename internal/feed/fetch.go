package feed

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/mauops/mau-backend/internal/config"
	"github.com/mauops/mau-backend/internal/metrics"
	"github.com/mauops/mau-backend/internal/pkg/errs"
	"github.com/pkg/errors"
)

// Retriever fetches the raw feed document for a URL. Resolution treats the
// retrieval as an external collaborator: no retries, no caching at this
// level, one fetch per resolution.
type Retriever interface {
	Retrieve(ctx context.Context, url string) ([]byte, error)
}

type HTTPRetriever struct {
	client    *http.Client
	userAgent string
}

func NewHTTPRetriever(conf *config.Config) *HTTPRetriever {
	return &HTTPRetriever{
		client: &http.Client{
			Timeout: conf.Feed.Timeout,
		},
		userAgent: conf.Feed.UserAgent,
	}
}

func (r *HTTPRetriever) Retrieve(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.ErrRetrieval.Wrap(err).WithDetails(url)
	}
	// The feed server blocks default client identifiers, so every request
	// carries the stock MAU agent string.
	req.Header.Set("User-Agent", r.userAgent)

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errs.ErrRetrieval.Wrap(errors.WithMessage(err, "feed request failed")).WithDetails(url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.ErrRetrieval.Wrap(errors.Errorf("unexpected status %d", resp.StatusCode)).WithDetails(url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.ErrRetrieval.Wrap(errors.WithMessage(err, "failed to read feed body")).WithDetails(url)
	}

	metrics.FeedFetchDuration.Observe(time.Since(start).Seconds())
	return data, nil
}
