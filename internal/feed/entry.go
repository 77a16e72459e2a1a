package feed

import (
	"fmt"
	"time"

	"github.com/mauops/mau-backend/internal/pkg/errs"
	"howett.net/plist"
)

// Entry is one update record from the vendor feed, decoded strictly from the
// property-list payload. Entries are immutable once parsed and live only for
// the duration of a single resolution.
type Entry struct {
	Title            string
	Location         string
	Date             time.Time
	MaxOS            PackedVersion
	MinOS            PackedVersion
	TriggerCondition []string
	Triggers         map[string]any
	Localized        map[string]any
}

// LocaleEnUS is the only locale the feed is read in; the installers
// themselves are multilingual.
const LocaleEnUS = "1033"

// Parse decodes a property-list payload whose root is an array of update
// dictionaries into an ordered entry list.
func Parse(data []byte) ([]Entry, error) {
	var root []map[string]any
	if _, err := plist.Unmarshal(data, &root); err != nil {
		return nil, errs.ErrFeedParse.Wrap(err)
	}
	if len(root) == 0 {
		return nil, errs.ErrFeedParse.WithDetails("feed contains no entries")
	}

	entries := make([]Entry, 0, len(root))
	for i, dict := range root {
		entry, err := entryFromDict(dict)
		if err != nil {
			return nil, errs.ErrFeedParse.WithDetails(fmt.Sprintf("entry %d: %v", i, err))
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func entryFromDict(dict map[string]any) (Entry, error) {
	var entry Entry

	title, ok := dict["Title"].(string)
	if !ok {
		return entry, fmt.Errorf("missing or non-string 'Title'")
	}
	location, ok := dict["Location"].(string)
	if !ok {
		return entry, fmt.Errorf("missing or non-string 'Location'")
	}
	date, ok := dict["Date"].(time.Time)
	if !ok {
		return entry, fmt.Errorf("missing or non-date 'Date'")
	}

	maxOS, err := packedVersionValue(dict["Max OS"])
	if err != nil {
		return entry, fmt.Errorf("'Max OS': %v", err)
	}
	minOS, err := packedVersionValue(dict["Min OS"])
	if err != nil {
		return entry, fmt.Errorf("'Min OS': %v", err)
	}

	// Trigger and localization fields are left loose here: their absence is
	// diagnosed by the trigger validation and description lookup, which carry
	// the more specific error kinds.
	condition, err := stringSlice(dict["Trigger Condition"])
	if err != nil {
		return entry, fmt.Errorf("'Trigger Condition': %v", err)
	}
	triggers, _ := dict["Triggers"].(map[string]any)
	localized, _ := dict["Localized"].(map[string]any)

	entry = Entry{
		Title:            title,
		Location:         location,
		Date:             date,
		MaxOS:            maxOS,
		MinOS:            minOS,
		TriggerCondition: condition,
		Triggers:         triggers,
		Localized:        localized,
	}
	return entry, nil
}

func stringSlice(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("not an array")
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("non-string element %v", item)
		}
		out = append(out, s)
	}
	return out, nil
}

// ShortDescription returns the entry's short description for the given
// locale code.
func (e *Entry) ShortDescription(locale string) (string, error) {
	loc, ok := e.Localized[locale].(map[string]any)
	if !ok {
		return "", errs.ErrMissingLocalization.WithDetails(fmt.Sprintf("entry %q has no localization %q", e.Title, locale))
	}
	desc, ok := loc["Short Description"].(string)
	if !ok {
		return "", errs.ErrMissingLocalization.WithDetails(fmt.Sprintf("entry %q locale %q has no 'Short Description'", e.Title, locale))
	}
	return desc, nil
}
