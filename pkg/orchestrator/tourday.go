package orchestrator

import (
	"context"

	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

type CreateTourDayRequest = CreateRequest[models.TourDayDetailsPatch]
type UpdateTourDayRequest = UpdateRequest[models.TourDayDetailsPatch]

// Tour day components are normally created by the tour schedule generator
// and come back locked; the direct operations exist for manual corrections.

func (o *Orchestrator) CreateTourDay(ctx context.Context, req CreateTourDayRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.CreateTourDay")
	defer span.End()

	return createComponent(ctx, o, models.ComponentTypeTourDay, o.tourDays, req, validateTourDayDetails)
}

func (o *Orchestrator) GetTourDay(ctx context.Context, tenantID, id string) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.GetTourDay")
	defer span.End()

	return getComponent(ctx, o, models.ComponentTypeTourDay, o.tourDays, tenantID, id)
}

func (o *Orchestrator) UpdateTourDay(ctx context.Context, tenantID, id string, req UpdateTourDayRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.UpdateTourDay")
	defer span.End()

	return updateComponent(ctx, o, models.ComponentTypeTourDay, o.tourDays, tenantID, id, req, validateTourDayDetails)
}

func (o *Orchestrator) DeleteTourDay(ctx context.Context, tenantID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.DeleteTourDay")
	defer span.End()

	return deleteComponent(ctx, o, models.ComponentTypeTourDay, tenantID, id)
}
