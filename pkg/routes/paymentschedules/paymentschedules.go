package paymentschedules

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/juniper/pkg/context"
	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/payments"
)

// Register registers payment schedule routes
func Register(g *echo.Group) {
	g.POST("/:pricingId/schedule", CreatePaymentSchedule)
	g.GET("/:pricingId/schedule", GetPaymentSchedule)
	g.PUT("/:pricingId/schedule", UpdatePaymentSchedule)
}

// CreatePaymentSchedule attaches a payment schedule to a pricing record
func CreatePaymentSchedule(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID := context.GetTenantID(ctx)

	var input models.PaymentScheduleInput
	if err := c.Bind(&input); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx, svc, err := ectoinject.GetContext[*payments.Service](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	dto, err := svc.Create(ctx, tenantID, c.Param("pricingId"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto)
}

// GetPaymentSchedule retrieves a pricing record's payment schedule
func GetPaymentSchedule(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID := context.GetTenantID(ctx)

	ctx, svc, err := ectoinject.GetContext[*payments.Service](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	dto, err := svc.Get(ctx, tenantID, c.Param("pricingId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto)
}

// UpdatePaymentSchedule re-validates and replaces a payment schedule
func UpdatePaymentSchedule(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID := context.GetTenantID(ctx)

	var input models.PaymentScheduleInput
	if err := c.Bind(&input); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx, svc, err := ectoinject.GetContext[*payments.Service](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	dto, err := svc.Update(ctx, tenantID, c.Param("pricingId"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto)
}
