// Package handler exposes the HTTP handlers of the server.  Every handler is
// a pure function of its route parameters: no handler reads shared state or
// performs I/O, so the same request always produces the same bytes.
package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// WelcomeResponse is the body of GET /.
type WelcomeResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GreetingResponse is the body of both greeting endpoints.
type GreetingResponse struct {
	Message string `json:"message"`
}

// Root returns the welcome message.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, WelcomeResponse{
		Message: "Welcome to the basic Python server!",
		Status:  "running",
	})
}

// Hello returns the static greeting.
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, GreetingResponse{Message: Greeting("World")})
}

// HelloName greets the decoded :name path segment.  An empty segment
// (GET /api/hello/) is treated as an unmatched route, and so is a name
// holding a slash: Echo lets a trailing param swallow the rest of the path,
// and an encoded %2F decodes to a slash too.
func HelloName(c echo.Context) error {
	name, err := PathParam(c, "name")
	if err != nil || name == "" || strings.Contains(name, "/") {
		return echo.ErrNotFound
	}
	return c.JSON(http.StatusOK, GreetingResponse{Message: Greeting(name)})
}

// Greeting builds the greeting text for name.  The caller's JSON encoder is
// responsible for escaping; name is substituted verbatim.
func Greeting(name string) string {
	return "Hello, " + name + "!"
}

// PathParam returns the percent-decoded value of a path parameter.  Echo
// routes on URL.RawPath when the request carried escapes that do not
// round-trip (e.g. %2F), and in that case parameter values are still
// escaped.  Otherwise routing used the already-decoded URL.Path and the
// value must not be unescaped a second time.
func PathParam(c echo.Context, name string) (string, error) {
	v := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}
