package vercomp

import (
	"github.com/Masterminds/semver/v3"
)

// compare result
const (
	Less    = -1
	Equal   = 0
	Greater = 1
)

type CompareResult struct {
	Comparable bool
	Result     int // -1, 0, 1 (only when comparable)
}

type VersionComparator struct{}

func NewComparator() *VersionComparator {
	return &VersionComparator{}
}

// Compare parses both versions leniently (feed titles carry two to four
// dotted numeric components, not strict semver) and compares them. Versions
// the parser cannot handle come back as not comparable.
func (c *VersionComparator) Compare(v1, v2 string) CompareResult {
	parsed1, err1 := semver.NewVersion(v1)
	parsed2, err2 := semver.NewVersion(v2)
	if err1 != nil || err2 != nil {
		return CompareResult{Comparable: false}
	}
	return CompareResult{
		Comparable: true,
		Result:     parsed1.Compare(parsed2),
	}
}
