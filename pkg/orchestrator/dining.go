package orchestrator

import (
	"context"

	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

type CreateDiningRequest = CreateRequest[models.DiningDetailsPatch]
type UpdateDiningRequest = UpdateRequest[models.DiningDetailsPatch]

func (o *Orchestrator) CreateDining(ctx context.Context, req CreateDiningRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.CreateDining")
	defer span.End()

	return createComponent(ctx, o, models.ComponentTypeDining, o.dinings, req, validateDiningDetails)
}

func (o *Orchestrator) GetDining(ctx context.Context, tenantID, id string) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.GetDining")
	defer span.End()

	return getComponent(ctx, o, models.ComponentTypeDining, o.dinings, tenantID, id)
}

func (o *Orchestrator) UpdateDining(ctx context.Context, tenantID, id string, req UpdateDiningRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.UpdateDining")
	defer span.End()

	return updateComponent(ctx, o, models.ComponentTypeDining, o.dinings, tenantID, id, req, validateDiningDetails)
}

func (o *Orchestrator) DeleteDining(ctx context.Context, tenantID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.DeleteDining")
	defer span.End()

	return deleteComponent(ctx, o, models.ComponentTypeDining, tenantID, id)
}
