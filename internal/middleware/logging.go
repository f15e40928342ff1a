package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// Logging writes a concise structured line for each API request. Static asset
// requests are skipped to keep the log focused on the endpoints that matter.
func Logging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			path := c.Request().URL.Path
			if !strings.HasPrefix(path, "/api") && path != "/healthz" {
				return err
			}

			rid, _ := c.Get(ContextKeyRequestID).(string)
			log.Printf("request_id=%s method=%s path=%s status=%d latency=%s", rid, c.Request().Method, path, c.Response().Status, latency)

			return err
		}
	}
}
