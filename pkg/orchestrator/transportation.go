package orchestrator

import (
	"context"

	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

type CreateTransportationRequest = CreateRequest[models.TransportationDetailsPatch]
type UpdateTransportationRequest = UpdateRequest[models.TransportationDetailsPatch]

func (o *Orchestrator) CreateTransportation(ctx context.Context, req CreateTransportationRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.CreateTransportation")
	defer span.End()

	return createComponent(ctx, o, models.ComponentTypeTransportation, o.transportations, req, validateTransportationDetails)
}

func (o *Orchestrator) GetTransportation(ctx context.Context, tenantID, id string) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.GetTransportation")
	defer span.End()

	return getComponent(ctx, o, models.ComponentTypeTransportation, o.transportations, tenantID, id)
}

func (o *Orchestrator) UpdateTransportation(ctx context.Context, tenantID, id string, req UpdateTransportationRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.UpdateTransportation")
	defer span.End()

	return updateComponent(ctx, o, models.ComponentTypeTransportation, o.transportations, tenantID, id, req, validateTransportationDetails)
}

func (o *Orchestrator) DeleteTransportation(ctx context.Context, tenantID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.DeleteTransportation")
	defer span.End()

	return deleteComponent(ctx, o, models.ComponentTypeTransportation, tenantID, id)
}
