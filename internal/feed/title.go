package feed

import (
	"regexp"

	"github.com/mauops/mau-backend/internal/pkg/errs"
)

// The version is expected at the end of the Title value, right after the
// literal " Update " marker, e.g. "Microsoft Excel Update 15.10". The match
// is deliberately narrow: a vendor change to the title phrasing must surface
// as a hard failure, not be silently ignored, because downstream packaging
// depends on version correctness.
var titleVersionPattern = regexp.MustCompile(`( Update )(?P<version>\d+\.\d+(\.\d)*)`)

func ExtractTitleVersion(title string) (string, error) {
	match := titleVersionPattern.FindStringSubmatch(title)
	if match == nil {
		return "", errs.ErrTitleFormat.WithDetails(title)
	}
	return match[2], nil
}
