package middleware

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"planetarium/internal/metrics"
)

// Metrics records a request counter for every completed request, labeled by
// matched route and response status.
func Metrics() fiber.Handler {
	return func(c fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		metrics.RecordHTTPRequest(c.Route().Path, strconv.Itoa(status))
		return err
	}
}
