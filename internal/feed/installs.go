package feed

import (
	"fmt"

	"github.com/mauops/mau-backend/internal/model"
)

// BuildInstalls derives the install-detection descriptors for an entry from
// manifest data alone, on the assumption that CFBundleVersion and
// CFBundleShortVersionString are equal.
func BuildInstalls(e *Entry, product string) ([]model.InstallDescriptor, error) {
	if err := ValidateTriggers(e); err != nil {
		return nil, err
	}
	version, err := ExtractTitleVersion(e.Title)
	if err != nil {
		return nil, err
	}
	return []model.InstallDescriptor{
		{
			CFBundleShortVersionString: version,
			CFBundleVersion:            version,
			Path:                       fmt.Sprintf("/Applications/Microsoft %s.app", product),
			Type:                       "application",
		},
	}, nil
}
