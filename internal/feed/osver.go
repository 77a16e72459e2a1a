package feed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mauops/mau-backend/internal/pkg/errs"
)

// UnboundedOSVersion is the decoded sentinel meaning the feed entry places no
// bound on the OS version; callers omit the field instead of emitting it.
const UnboundedOSVersion = "0.0.0"

// PackedVersion is a packed numeric OS version as it appears in the feed:
// either a plain integer or a "0x"-prefixed hex string. OS versions are
// encoded positionally in the hex digits: 4184 = 0x1058 = 10.5.8.
type PackedVersion struct {
	hex     string
	num     uint64
	numeric bool
}

func NumericVersion(n uint64) PackedVersion {
	return PackedVersion{num: n, numeric: true}
}

func HexStringVersion(s string) PackedVersion {
	return PackedVersion{hex: s}
}

// packedVersionValue converts a decoded plist value into a PackedVersion.
// An absent value counts as numeric zero, the unbounded sentinel.
func packedVersionValue(v any) (PackedVersion, error) {
	switch n := v.(type) {
	case nil:
		return NumericVersion(0), nil
	case uint64:
		return NumericVersion(n), nil
	case int64:
		return NumericVersion(uint64(n)), nil
	case int:
		return NumericVersion(uint64(n)), nil
	case string:
		return HexStringVersion(n), nil
	default:
		return PackedVersion{}, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

// Decode expands the packed value into a "major.minor.patch" string. The
// first one or two hex digits are read as a decimal major version, the third
// digit as a hex minor, the fourth as a hex patch; anything beyond is
// ignored and missing positions default to zero.
func (v PackedVersion) Decode() (string, error) {
	var digits string
	if v.numeric {
		digits = strconv.FormatUint(v.num, 16)
	} else {
		if !strings.HasPrefix(v.hex, "0x") {
			return "", errs.ErrValueDecode.WithDetails(v.hex)
		}
		digits = v.hex[2:]
	}

	var major, minor, patch uint64
	var err error

	switch {
	case len(digits) >= 2:
		major, err = strconv.ParseUint(digits[:2], 10, 8)
	case len(digits) == 1:
		major, err = strconv.ParseUint(digits[:1], 10, 8)
	}
	if err != nil {
		return "", errs.ErrValueDecode.WithDetails(v.String())
	}
	if len(digits) > 2 {
		if minor, err = strconv.ParseUint(digits[2:3], 16, 8); err != nil {
			return "", errs.ErrValueDecode.WithDetails(v.String())
		}
	}
	if len(digits) > 3 {
		if patch, err = strconv.ParseUint(digits[3:4], 16, 8); err != nil {
			return "", errs.ErrValueDecode.WithDetails(v.String())
		}
	}

	return fmt.Sprintf("%d.%d.%d", major, minor, patch), nil
}

func (v PackedVersion) String() string {
	if v.numeric {
		return strconv.FormatUint(v.num, 10)
	}
	return v.hex
}
