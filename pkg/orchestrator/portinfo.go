package orchestrator

import (
	"context"

	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

type CreatePortInfoRequest = CreateRequest[models.PortInfoDetailsPatch]
type UpdatePortInfoRequest = UpdateRequest[models.PortInfoDetailsPatch]

func (o *Orchestrator) CreatePortInfo(ctx context.Context, req CreatePortInfoRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.CreatePortInfo")
	defer span.End()

	return createComponent(ctx, o, models.ComponentTypePortInfo, o.portInfos, req, validatePortInfoDetails)
}

func (o *Orchestrator) GetPortInfo(ctx context.Context, tenantID, id string) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.GetPortInfo")
	defer span.End()

	return getComponent(ctx, o, models.ComponentTypePortInfo, o.portInfos, tenantID, id)
}

func (o *Orchestrator) UpdatePortInfo(ctx context.Context, tenantID, id string, req UpdatePortInfoRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.UpdatePortInfo")
	defer span.End()

	return updateComponent(ctx, o, models.ComponentTypePortInfo, o.portInfos, tenantID, id, req, validatePortInfoDetails)
}

func (o *Orchestrator) DeletePortInfo(ctx context.Context, tenantID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.DeletePortInfo")
	defer span.End()

	return deleteComponent(ctx, o, models.ComponentTypePortInfo, tenantID, id)
}
