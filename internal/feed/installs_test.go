package feed

import (
	"testing"

	"github.com/mauops/mau-backend/internal/model"
	"github.com/mauops/mau-backend/internal/pkg/errs"
	"github.com/stretchr/testify/require"
)

func TestBuildInstalls(t *testing.T) {

	entry := Entry{
		Title:            "Microsoft Word Update 15.10",
		TriggerCondition: []string{"and", "Registered File"},
		Triggers:         map[string]any{"Registered File": map[string]any{}},
	}

	installs, err := BuildInstalls(&entry, "Word")
	require.NoError(t, err)
	require.Equal(t, []model.InstallDescriptor{
		{
			CFBundleShortVersionString: "15.10",
			CFBundleVersion:            "15.10",
			Path:                       "/Applications/Microsoft Word.app",
			Type:                       "application",
		},
	}, installs)
}

func TestBuildInstallsRejectsUnexpectedTriggers(t *testing.T) {

	entry := Entry{
		Title:            "Microsoft Word Update 15.10",
		TriggerCondition: []string{"and", "Something Else"},
		Triggers:         map[string]any{"Registered File": map[string]any{}},
	}

	installs, err := BuildInstalls(&entry, "Word")
	require.ErrorIs(t, err, errs.ErrUnexpectedTriggerShape)
	require.Nil(t, installs)
}

func TestBuildInstallsRejectsUnversionedTitle(t *testing.T) {

	entry := Entry{
		Title:            "Microsoft Word 15.10",
		TriggerCondition: []string{"and", "Registered File"},
		Triggers:         map[string]any{"Registered File": map[string]any{}},
	}

	installs, err := BuildInstalls(&entry, "Word")
	require.ErrorIs(t, err, errs.ErrTitleFormat)
	require.Nil(t, installs)
}
