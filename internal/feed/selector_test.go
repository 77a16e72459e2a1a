package feed

import (
	"testing"
	"time"

	"github.com/mauops/mau-backend/internal/pkg/errs"
	"github.com/stretchr/testify/require"
)

func TestSelectLatest(t *testing.T) {

	date := func(s string) time.Time {
		parsed, err := time.Parse(time.DateOnly, s)
		require.NoError(t, err)
		return parsed
	}

	entries := []Entry{
		{Title: "Microsoft Excel Update 15.8", Date: date("2015-01-01")},
		{Title: "Microsoft Excel Update 15.10", Date: date("2015-06-01")},
		{Title: "Microsoft Excel Update 15.9", Date: date("2015-03-01")},
	}

	latest, err := SelectLatest(entries)
	require.NoError(t, err)
	require.Equal(t, "Microsoft Excel Update 15.10", latest.Title)

	// order in the feed must not matter
	reversed := []Entry{entries[1], entries[2], entries[0]}
	latest, err = SelectLatest(reversed)
	require.NoError(t, err)
	require.Equal(t, "Microsoft Excel Update 15.10", latest.Title)

	// input is left untouched
	require.Equal(t, "Microsoft Excel Update 15.8", entries[0].Title)
}

func TestSelectLatestTiesKeepFeedOrder(t *testing.T) {

	same := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Title: "first", Date: same},
		{Title: "second", Date: same},
	}

	latest, err := SelectLatest(entries)
	require.NoError(t, err)
	require.Equal(t, "second", latest.Title)
}

func TestSelectLatestEmpty(t *testing.T) {

	latest, err := SelectLatest(nil)
	require.ErrorIs(t, err, errs.ErrFeedParse)
	require.Nil(t, latest)
}
