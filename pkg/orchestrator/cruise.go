package orchestrator

import (
	"context"

	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

type CreateCruiseRequest = CreateRequest[models.CruiseDetailsPatch]
type UpdateCruiseRequest = UpdateRequest[models.CruiseDetailsPatch]

func (o *Orchestrator) CreateCruise(ctx context.Context, req CreateCruiseRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.CreateCruise")
	defer span.End()

	return createComponent(ctx, o, models.ComponentTypeCruise, o.cruises, req, validateCruiseDetails)
}

func (o *Orchestrator) GetCruise(ctx context.Context, tenantID, id string) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.GetCruise")
	defer span.End()

	return getComponent(ctx, o, models.ComponentTypeCruise, o.cruises, tenantID, id)
}

func (o *Orchestrator) UpdateCruise(ctx context.Context, tenantID, id string, req UpdateCruiseRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.UpdateCruise")
	defer span.End()

	return updateComponent(ctx, o, models.ComponentTypeCruise, o.cruises, tenantID, id, req, validateCruiseDetails)
}

func (o *Orchestrator) DeleteCruise(ctx context.Context, tenantID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.DeleteCruise")
	defer span.End()

	return deleteComponent(ctx, o, models.ComponentTypeCruise, tenantID, id)
}
