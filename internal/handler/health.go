package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// ServiceName identifies this process in health responses.
const ServiceName = "python-basic-server"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.  It always
// reports healthy with a 200 status code; there are no dependencies to probe.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Service: ServiceName})
}
