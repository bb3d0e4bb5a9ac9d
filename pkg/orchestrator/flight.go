package orchestrator

import (
	"context"

	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

type CreateFlightRequest = CreateRequest[models.FlightDetailsPatch]
type UpdateFlightRequest = UpdateRequest[models.FlightDetailsPatch]

func (o *Orchestrator) CreateFlight(ctx context.Context, req CreateFlightRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.CreateFlight")
	defer span.End()

	return createComponent(ctx, o, models.ComponentTypeFlight, o.flights, req, nil)
}

func (o *Orchestrator) GetFlight(ctx context.Context, tenantID, id string) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.GetFlight")
	defer span.End()

	return getComponent(ctx, o, models.ComponentTypeFlight, o.flights, tenantID, id)
}

func (o *Orchestrator) UpdateFlight(ctx context.Context, tenantID, id string, req UpdateFlightRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.UpdateFlight")
	defer span.End()

	return updateComponent(ctx, o, models.ComponentTypeFlight, o.flights, tenantID, id, req, nil)
}

func (o *Orchestrator) DeleteFlight(ctx context.Context, tenantID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.DeleteFlight")
	defer span.End()

	return deleteComponent(ctx, o, models.ComponentTypeFlight, tenantID, id)
}
