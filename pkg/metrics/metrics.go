// Package metrics provides Prometheus metrics for the Juniper service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ComponentOperationsTotal tracks component CRUD operations by type and status
	ComponentOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "juniper",
			Subsystem: "components",
			Name:      "operations_total",
			Help:      "Total number of component operations by type, operation, and status",
		},
		[]string{"component_type", "operation", "status"},
	)

	// ScheduleGenerationsTotal tracks schedule generation passes by parent type and status
	ScheduleGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "juniper",
			Subsystem: "schedule",
			Name:      "generations_total",
			Help:      "Total number of schedule generation passes by parent type and status",
		},
		[]string{"parent_type", "status"},
	)

	// ScheduleGenerationDuration tracks schedule generation duration in seconds
	ScheduleGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "juniper",
			Subsystem: "schedule",
			Name:      "generation_duration_seconds",
			Help:      "Duration of schedule generation passes in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"parent_type"},
	)

	// ScheduleChildrenGenerated tracks how many children a generation pass produces
	ScheduleChildrenGenerated = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "juniper",
			Subsystem: "schedule",
			Name:      "children_generated",
			Help:      "Number of child components produced per generation pass",
			Buckets:   []float64{1, 3, 7, 14, 30, 60, 120},
		},
		[]string{"parent_type"},
	)

	// PaymentScheduleValidationsTotal tracks schedule validations by type and outcome
	PaymentScheduleValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "juniper",
			Subsystem: "payments",
			Name:      "schedule_validations_total",
			Help:      "Total number of payment schedule validations by schedule type and outcome",
		},
		[]string{"schedule_type", "outcome"},
	)

	// AttachmentCleanupFailures tracks best-effort attachment cleanup failures
	AttachmentCleanupFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "juniper",
			Subsystem: "attachments",
			Name:      "cleanup_failures_total",
			Help:      "Total number of failed attachment cleanup attempts",
		},
	)
)
