package components

import (
	gocontext "context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/juniper/pkg/context"
	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/orchestrator"
)

// Register registers component routes. The :type segment selects the typed
// orchestrator surface; unknown types are rejected before any body parsing.
func Register(g *echo.Group) {
	g.POST("/:type", CreateComponent)
	g.GET("/:type/:id", GetComponent)
	g.PATCH("/:type/:id", UpdateComponent)
	g.DELETE("/:type/:id", DeleteComponent)
}

func orchFromContext(c echo.Context) (gocontext.Context, *orchestrator.Orchestrator, error) {
	ctx := c.Request().Context()
	ctx, orch, err := ectoinject.GetContext[*orchestrator.Orchestrator](ctx)
	if err != nil {
		return ctx, nil, httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}
	return ctx, orch, nil
}

func componentType(c echo.Context) (models.ComponentType, error) {
	typ := models.ComponentType(c.Param("type"))
	if !typ.IsValid() {
		return "", httperror.NewHTTPErrorf(http.StatusBadRequest, "unknown component type %q", c.Param("type"))
	}
	return typ, nil
}

// CreateComponent creates a component of the given type
func CreateComponent(c echo.Context) error {
	typ, err := componentType(c)
	if err != nil {
		return err
	}

	ctx, orch, err := orchFromContext(c)
	if err != nil {
		return err
	}

	switch typ {
	case models.ComponentTypeFlight:
		return create(c, ctx, orch.CreateFlight)
	case models.ComponentTypeLodging:
		return create(c, ctx, orch.CreateLodging)
	case models.ComponentTypeTransportation:
		return create(c, ctx, orch.CreateTransportation)
	case models.ComponentTypeDining:
		return create(c, ctx, orch.CreateDining)
	case models.ComponentTypePortInfo:
		return create(c, ctx, orch.CreatePortInfo)
	case models.ComponentTypeOption:
		return create(c, ctx, orch.CreateOption)
	case models.ComponentTypeCruise:
		return create(c, ctx, orch.CreateCruise)
	case models.ComponentTypeTour:
		return create(c, ctx, orch.CreateTour)
	default:
		return create(c, ctx, orch.CreateTourDay)
	}
}

// GetComponent retrieves a component of the given type
func GetComponent(c echo.Context) error {
	typ, err := componentType(c)
	if err != nil {
		return err
	}

	ctx, orch, err := orchFromContext(c)
	if err != nil {
		return err
	}

	tenantID := context.GetTenantID(ctx)
	id := c.Param("id")

	var dto *models.ComponentDTO
	switch typ {
	case models.ComponentTypeFlight:
		dto, err = orch.GetFlight(ctx, tenantID, id)
	case models.ComponentTypeLodging:
		dto, err = orch.GetLodging(ctx, tenantID, id)
	case models.ComponentTypeTransportation:
		dto, err = orch.GetTransportation(ctx, tenantID, id)
	case models.ComponentTypeDining:
		dto, err = orch.GetDining(ctx, tenantID, id)
	case models.ComponentTypePortInfo:
		dto, err = orch.GetPortInfo(ctx, tenantID, id)
	case models.ComponentTypeOption:
		dto, err = orch.GetOption(ctx, tenantID, id)
	case models.ComponentTypeCruise:
		dto, err = orch.GetCruise(ctx, tenantID, id)
	case models.ComponentTypeTour:
		dto, err = orch.GetTour(ctx, tenantID, id)
	default:
		dto, err = orch.GetTourDay(ctx, tenantID, id)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto)
}

// UpdateComponent applies a merge-patch to a component of the given type
func UpdateComponent(c echo.Context) error {
	typ, err := componentType(c)
	if err != nil {
		return err
	}

	ctx, orch, err := orchFromContext(c)
	if err != nil {
		return err
	}

	switch typ {
	case models.ComponentTypeFlight:
		return update(c, ctx, orch.UpdateFlight)
	case models.ComponentTypeLodging:
		return update(c, ctx, orch.UpdateLodging)
	case models.ComponentTypeTransportation:
		return update(c, ctx, orch.UpdateTransportation)
	case models.ComponentTypeDining:
		return update(c, ctx, orch.UpdateDining)
	case models.ComponentTypePortInfo:
		return update(c, ctx, orch.UpdatePortInfo)
	case models.ComponentTypeOption:
		return update(c, ctx, orch.UpdateOption)
	case models.ComponentTypeCruise:
		return update(c, ctx, orch.UpdateCruise)
	case models.ComponentTypeTour:
		return update(c, ctx, orch.UpdateTour)
	default:
		return update(c, ctx, orch.UpdateTourDay)
	}
}

// DeleteComponent deletes a component of the given type
func DeleteComponent(c echo.Context) error {
	typ, err := componentType(c)
	if err != nil {
		return err
	}

	ctx, orch, err := orchFromContext(c)
	if err != nil {
		return err
	}

	tenantID := context.GetTenantID(ctx)
	id := c.Param("id")

	switch typ {
	case models.ComponentTypeFlight:
		err = orch.DeleteFlight(ctx, tenantID, id)
	case models.ComponentTypeLodging:
		err = orch.DeleteLodging(ctx, tenantID, id)
	case models.ComponentTypeTransportation:
		err = orch.DeleteTransportation(ctx, tenantID, id)
	case models.ComponentTypeDining:
		err = orch.DeleteDining(ctx, tenantID, id)
	case models.ComponentTypePortInfo:
		err = orch.DeletePortInfo(ctx, tenantID, id)
	case models.ComponentTypeOption:
		err = orch.DeleteOption(ctx, tenantID, id)
	case models.ComponentTypeCruise:
		err = orch.DeleteCruise(ctx, tenantID, id)
	case models.ComponentTypeTour:
		err = orch.DeleteTour(ctx, tenantID, id)
	default:
		err = orch.DeleteTourDay(ctx, tenantID, id)
	}
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func create[P any](c echo.Context, ctx gocontext.Context, fn func(gocontext.Context, orchestrator.CreateRequest[P]) (*models.ComponentDTO, error)) error {
	var req orchestrator.CreateRequest[P]
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	dto, err := fn(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto)
}

func update[P any](c echo.Context, ctx gocontext.Context, fn func(gocontext.Context, string, string, orchestrator.UpdateRequest[P]) (*models.ComponentDTO, error)) error {
	var req orchestrator.UpdateRequest[P]
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tenantID := context.GetTenantID(ctx)
	dto, err := fn(ctx, tenantID, c.Param("id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto)
}
