package orchestrator

import (
	"context"

	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

type CreateLodgingRequest = CreateRequest[models.LodgingDetailsPatch]
type UpdateLodgingRequest = UpdateRequest[models.LodgingDetailsPatch]

func (o *Orchestrator) CreateLodging(ctx context.Context, req CreateLodgingRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.CreateLodging")
	defer span.End()

	return createComponent(ctx, o, models.ComponentTypeLodging, o.lodgings, req, nil)
}

func (o *Orchestrator) GetLodging(ctx context.Context, tenantID, id string) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.GetLodging")
	defer span.End()

	return getComponent(ctx, o, models.ComponentTypeLodging, o.lodgings, tenantID, id)
}

func (o *Orchestrator) UpdateLodging(ctx context.Context, tenantID, id string, req UpdateLodgingRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.UpdateLodging")
	defer span.End()

	return updateComponent(ctx, o, models.ComponentTypeLodging, o.lodgings, tenantID, id, req, nil)
}

func (o *Orchestrator) DeleteLodging(ctx context.Context, tenantID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.DeleteLodging")
	defer span.End()

	return deleteComponent(ctx, o, models.ComponentTypeLodging, tenantID, id)
}
