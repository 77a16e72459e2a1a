package feed

import (
	"testing"

	"github.com/mauops/mau-backend/internal/pkg/errs"
	"github.com/stretchr/testify/require"
)

func TestExtractTitleVersion(t *testing.T) {

	testCases := []struct {
		Name      string
		Title     string
		Expected  string
		ExpectErr bool
	}{
		{
			Name:     "TwoComponents",
			Title:    "Microsoft Excel Update 15.10",
			Expected: "15.10",
		},
		{
			Name:     "ThreeComponents",
			Title:    "Microsoft Excel Update 16.10.1",
			Expected: "16.10.1",
		},
		{
			Name:     "FourComponents",
			Title:    "Microsoft Word Update 15.10.1.2",
			Expected: "15.10.1.2",
		},
		{
			Name:      "NoUpdateMarker",
			Title:     "Microsoft Excel 15.10",
			ExpectErr: true,
		},
		{
			Name:      "NoVersionAfterMarker",
			Title:     "Microsoft Excel Update",
			ExpectErr: true,
		},
		{
			Name:      "SingleComponentVersion",
			Title:     "Microsoft Excel Update 15",
			ExpectErr: true,
		},
		{
			Name:      "Empty",
			Title:     "",
			ExpectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := ExtractTitleVersion(tc.Title)
			if tc.ExpectErr {
				require.ErrorIs(t, err, errs.ErrTitleFormat)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.Expected, got)
		})
	}
}
