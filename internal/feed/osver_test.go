package feed

import (
	"regexp"
	"testing"

	"github.com/mauops/mau-backend/internal/pkg/errs"
	"github.com/stretchr/testify/require"
)

func TestDecodePackedOSVersion(t *testing.T) {

	testCases := []struct {
		Name      string
		Value     PackedVersion
		Expected  string
		ExpectErr bool
	}{
		{
			Name:     "NumericTenFiveEight",
			Value:    NumericVersion(4184),
			Expected: "10.5.8",
		},
		{
			Name:     "NumericZero",
			Value:    NumericVersion(0),
			Expected: "0.0.0",
		},
		{
			Name:     "SingleDigit",
			Value:    NumericVersion(9),
			Expected: "9.0.0",
		},
		{
			Name:     "TwoDigits",
			Value:    NumericVersion(0x10),
			Expected: "10.0.0",
		},
		{
			Name:     "DigitsBeyondFourthIgnored",
			Value:    NumericVersion(0x10589),
			Expected: "10.5.8",
		},
		{
			Name:     "HexString",
			Value:    HexStringVersion("0x1058"),
			Expected: "10.5.8",
		},
		{
			Name:     "HexStringZero",
			Value:    HexStringVersion("0x0"),
			Expected: "0.0.0",
		},
		{
			Name:      "HexStringWithoutPrefix",
			Value:     HexStringVersion("1058"),
			ExpectErr: true,
		},
		{
			Name:      "HexStringGarbage",
			Value:     HexStringVersion("0xzz99"),
			ExpectErr: true,
		},
		{
			Name:      "NonDecimalMajor",
			Value:     HexStringVersion("0xab58"),
			ExpectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := tc.Value.Decode()
			if tc.ExpectErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueDecode)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.Expected, got)
		})
	}
}

func TestDecodePackedOSVersionRange(t *testing.T) {

	pattern := regexp.MustCompile(`^\d+\.\d+\.\d+$`)

	for n := 0; n <= 0xFFFF; n++ {
		first, err := NumericVersion(uint64(n)).Decode()
		second, again := NumericVersion(uint64(n)).Decode()

		if err != nil {
			// values whose leading hex digits are not decimal cannot encode
			// a real OS version; they must fail the same way every time
			require.ErrorIs(t, err, errs.ErrValueDecode)
			require.ErrorIs(t, again, errs.ErrValueDecode)
			continue
		}

		require.NoError(t, again)
		require.Equal(t, first, second)
		require.Regexp(t, pattern, first)
	}
}
