package schedules

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/juniper/pkg/context"
	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/schedule"
)

// Register registers schedule generation routes
func Register(g *echo.Group) {
	g.POST("/cruises/:id/ports", GenerateCruisePortSchedule)
	g.POST("/tours/:id/days", GenerateTourDaySchedule)
}

// GenerateCruisePortSchedule regenerates a cruise's port-info children
func GenerateCruisePortSchedule(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID := context.GetTenantID(ctx)

	var opts models.GenerateOptions
	if err := c.Bind(&opts); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx, gen, err := ectoinject.GetContext[*schedule.Generator](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	result, err := gen.GenerateCruisePortSchedule(ctx, tenantID, c.Param("id"), opts)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// GenerateTourDaySchedule regenerates a tour's tour-day children
func GenerateTourDaySchedule(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID := context.GetTenantID(ctx)

	var opts models.GenerateOptions
	if err := c.Bind(&opts); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx, gen, err := ectoinject.GetContext[*schedule.Generator](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	result, err := gen.GenerateTourDaySchedule(ctx, tenantID, c.Param("id"), opts)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
