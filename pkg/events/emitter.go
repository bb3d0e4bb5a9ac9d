package events

import (
	"context"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/juniper/pkg/kafka"
	"github.com/Ramsey-B/juniper/pkg/models"
)

// Emitter publishes component lifecycle events. Emission is best-effort on
// every path: a broker failure is logged and never fails the operation that
// triggered it.
type Emitter interface {
	ComponentCreated(ctx context.Context, comp *models.Component)
	ComponentUpdated(ctx context.Context, comp *models.Component)
	ComponentDeleted(ctx context.Context, comp *models.Component)
	ScheduleGenerated(ctx context.Context, parent *models.Component, childCount int)
}

type kafkaEmitter struct {
	producer *kafka.Producer
	logger   ectologger.Logger
}

// NewKafkaEmitter creates an Emitter backed by a Kafka producer.
func NewKafkaEmitter(producer *kafka.Producer, logger ectologger.Logger) Emitter {
	return &kafkaEmitter{
		producer: producer,
		logger:   logger,
	}
}

func (e *kafkaEmitter) publish(ctx context.Context, eventType string, comp *models.Component, childCount int) {
	event := &kafka.ComponentEvent{
		EventType:     eventType,
		TenantID:      comp.TenantID,
		ComponentID:   comp.ID,
		ComponentType: string(comp.Type),
		ItineraryID:   comp.ItineraryID,
		ChildCount:    childCount,
	}

	if err := e.producer.PublishComponentEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"event_type":   eventType,
			"component_id": comp.ID,
		}).Warn("Failed to emit component event")
	}
}

func (e *kafkaEmitter) ComponentCreated(ctx context.Context, comp *models.Component) {
	e.publish(ctx, "component.created", comp, 0)
}

func (e *kafkaEmitter) ComponentUpdated(ctx context.Context, comp *models.Component) {
	e.publish(ctx, "component.updated", comp, 0)
}

func (e *kafkaEmitter) ComponentDeleted(ctx context.Context, comp *models.Component) {
	e.publish(ctx, "component.deleted", comp, 0)
}

func (e *kafkaEmitter) ScheduleGenerated(ctx context.Context, parent *models.Component, childCount int) {
	e.publish(ctx, "schedule.generated", parent, childCount)
}

// NopEmitter discards all events. Used when no broker is configured and in
// tests.
type NopEmitter struct{}

func (NopEmitter) ComponentCreated(context.Context, *models.Component) {}
func (NopEmitter) ComponentUpdated(context.Context, *models.Component) {}
func (NopEmitter) ComponentDeleted(context.Context, *models.Component) {}
func (NopEmitter) ScheduleGenerated(context.Context, *models.Component, int) {}
