package feed

import (
	"sort"

	"github.com/mauops/mau-backend/internal/pkg/errs"
)

// SelectLatest picks the most recently published entry: a stable sort by
// date ascending, ties keeping feed order, then the last element.
func SelectLatest(entries []Entry) (*Entry, error) {
	if len(entries) == 0 {
		return nil, errs.ErrFeedParse.WithDetails("feed contains no entries")
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	latest := sorted[len(sorted)-1]
	return &latest, nil
}
