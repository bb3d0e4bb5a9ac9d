package routes

import (
	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/Ramsey-B/juniper/pkg/middleware"
	"github.com/Ramsey-B/juniper/pkg/routes/components"
	"github.com/Ramsey-B/juniper/pkg/routes/health"
	"github.com/Ramsey-B/juniper/pkg/routes/paymentschedules"
	"github.com/Ramsey-B/juniper/pkg/routes/schedules"
)

// Register attaches middleware and all route groups to the echo instance.
func Register(e *echo.Echo, serviceName string, logger ectologger.Logger, checker *health.Checker) {
	e.Use(otelecho.Middleware(serviceName))
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))
	e.HTTPErrorHandler = middleware.Error(logger)

	checker.Register(e)

	api := e.Group("/api/v1")
	components.Register(api.Group("/components"))
	schedules.Register(api.Group("/schedules"))
	paymentschedules.Register(api.Group("/pricing"))
}
