package feed

import (
	"fmt"

	"github.com/mauops/mau-backend/internal/pkg/errs"
)

// RegisteredFileTrigger is the placeholder the vendor uses for install-state
// detection; it gets replaced client-side with the bundle of the given
// application ID, i.e. the bundle version of the app itself.
const RegisteredFileTrigger = "Registered File"

// ValidateTriggers checks that an entry's trigger fields match the single
// supported pattern. Any deviation signals an upstream format change that
// must not be misread into an incorrect install descriptor.
func ValidateTriggers(e *Entry) error {
	cond := e.TriggerCondition
	if len(cond) != 2 || cond[0] != "and" || cond[1] != RegisteredFileTrigger {
		return errs.ErrUnexpectedTriggerShape.WithDetails(
			fmt.Sprintf("unexpected trigger condition in entry %q: %v", e.Title, cond))
	}
	if _, ok := e.Triggers[RegisteredFileTrigger]; !ok {
		return errs.ErrUnexpectedTriggerShape.WithDetails(
			fmt.Sprintf("missing expected %q trigger in entry %q", RegisteredFileTrigger, e.Title))
	}
	return nil
}
