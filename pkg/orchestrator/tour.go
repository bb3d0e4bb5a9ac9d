package orchestrator

import (
	"context"

	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

type CreateTourRequest = CreateRequest[models.TourDetailsPatch]
type UpdateTourRequest = UpdateRequest[models.TourDetailsPatch]

func (o *Orchestrator) CreateTour(ctx context.Context, req CreateTourRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.CreateTour")
	defer span.End()

	return createComponent(ctx, o, models.ComponentTypeTour, o.tours, req, validateTourDetails)
}

func (o *Orchestrator) GetTour(ctx context.Context, tenantID, id string) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.GetTour")
	defer span.End()

	return getComponent(ctx, o, models.ComponentTypeTour, o.tours, tenantID, id)
}

func (o *Orchestrator) UpdateTour(ctx context.Context, tenantID, id string, req UpdateTourRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.UpdateTour")
	defer span.End()

	return updateComponent(ctx, o, models.ComponentTypeTour, o.tours, tenantID, id, req, validateTourDetails)
}

func (o *Orchestrator) DeleteTour(ctx context.Context, tenantID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.DeleteTour")
	defer span.End()

	return deleteComponent(ctx, o, models.ComponentTypeTour, tenantID, id)
}
