package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/segmentio/ksuid"
)

const (
	HeaderResolutionID = "X-Resolution-Id"
	LocalsResolutionID = "resolution_id"
)

// NewResolutionIDRecorder tags every request with a ksuid so a failed
// resolution in the logs can be matched to the pipeline run that hit it.
func NewResolutionIDRecorder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := ksuid.New().String()
		c.Locals(LocalsResolutionID, id)
		c.Set(HeaderResolutionID, id)
		return c.Next()
	}
}
