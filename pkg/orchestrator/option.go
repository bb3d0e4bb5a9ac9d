package orchestrator

import (
	"context"

	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

type CreateOptionRequest = CreateRequest[models.OptionDetailsPatch]
type UpdateOptionRequest = UpdateRequest[models.OptionDetailsPatch]

func (o *Orchestrator) CreateOption(ctx context.Context, req CreateOptionRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.CreateOption")
	defer span.End()

	return createComponent(ctx, o, models.ComponentTypeOption, o.options, req, nil)
}

func (o *Orchestrator) GetOption(ctx context.Context, tenantID, id string) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.GetOption")
	defer span.End()

	return getComponent(ctx, o, models.ComponentTypeOption, o.options, tenantID, id)
}

func (o *Orchestrator) UpdateOption(ctx context.Context, tenantID, id string, req UpdateOptionRequest) (*models.ComponentDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.UpdateOption")
	defer span.End()

	return updateComponent(ctx, o, models.ComponentTypeOption, o.options, tenantID, id, req, nil)
}

func (o *Orchestrator) DeleteOption(ctx context.Context, tenantID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "orchestrator.Orchestrator.DeleteOption")
	defer span.End()

	return deleteComponent(ctx, o, models.ComponentTypeOption, tenantID, id)
}
