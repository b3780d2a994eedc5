// Package middleware holds the server's own Echo middleware.  The stock
// recover, request id and logger middleware come from echo/v4/middleware.
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/basic-server/internal/queue"
)

const publishTimeout = 2 * time.Second

// EventPublisher delivers access events to a broker.  Implementations must
// be safe for concurrent use.
type EventPublisher interface {
	PublishRequestServed(ctx context.Context, ev queue.RequestServedEvent) error
}

// AccessEvents returns middleware that publishes one RequestServedEvent per
// request once the response is written.  Publishing happens off the request
// goroutine and its failures are only logged.  A nil publisher disables the
// middleware.
func AccessEvents(pub EventPublisher) echo.MiddlewareFunc {
	if pub == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return func(c echo.Context) error { return next(c) } }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			// Render the error here so the final status is known; the
			// error is consumed, same as echo's own Logger middleware.
			if err := next(c); err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			route := c.Path()
			if res.Status == http.StatusNotFound {
				// handlers may reject a matched pattern; the client saw no route
				route = ""
			}
			ev := queue.RequestServedEvent{
				RequestID: res.Header().Get(echo.HeaderXRequestID),
				Method:    req.Method,
				Path:      req.URL.Path,
				Route:     route,
				Status:    res.Status,
				LatencyMs: time.Since(start).Milliseconds(),
				RemoteIP:  c.RealIP(),
				ServedAt:  start.UTC().Format(time.RFC3339),
			}
			logger := c.Logger()
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
				defer cancel()
				if err := pub.PublishRequestServed(ctx, ev); err != nil {
					logger.Warnf("[access-events] publish failed for %s %s: %v", ev.Method, ev.Path, err)
				}
			}()
			return nil
		}
	}
}
