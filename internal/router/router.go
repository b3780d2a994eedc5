package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"
	emw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/basic-server/internal/config"
	"github.com/iliyamo/basic-server/internal/handler"    // import the handlers that build the responses
	"github.com/iliyamo/basic-server/internal/middleware" // import the access event middleware
)

// Route describes one registered endpoint.  Routes are values; the table
// returned by Routes is rebuilt on every call and never shared.
type Route struct {
	Method  string
	Path    string
	Handler echo.HandlerFunc
}

// Routes returns the fixed route table in registration order.
func Routes() []Route {
	return []Route{
		{http.MethodGet, "/", handler.Root},
		{http.MethodGet, "/health", handler.Health},
		{http.MethodGet, "/api/hello", handler.Hello},
		{http.MethodGet, "/api/hello/:name", handler.HelloName},
	}
}

// RegisterRoutes registers every route from Routes on the provided Echo
// instance.  None of them require authentication.  GET routes also answer
// HEAD; net/http drops the body.
func RegisterRoutes(e *echo.Echo) {
	for _, r := range Routes() {
		e.Add(r.Method, r.Path, r.Handler)
		if r.Method == http.MethodGet {
			e.Add(http.MethodHead, r.Path, r.Handler)
		}
	}
}

// New builds a fully wired Echo instance for cfg.  pub may be nil, in which
// case no access events are emitted.
func New(cfg config.Config, pub middleware.EventPublisher) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug
	e.Logger.SetLevel(cfg.LogLevel)
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	e.Use(emw.Recover())
	e.Use(emw.RequestID())
	if cfg.AccessLog {
		e.Use(emw.Logger())
	}
	e.Use(middleware.AccessEvents(pub))

	RegisterRoutes(e)
	return e
}
