package payments

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/juniper/internal/repositories/paymentschedule"
	"github.com/Ramsey-B/juniper/internal/repositories/pricing"
	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

// Service validates and persists payment schedules against their pricing
// records.
type Service struct {
	pricingRepo  *pricing.Repository
	scheduleRepo *paymentschedule.Repository
	logger       ectologger.Logger
}

func NewService(pricingRepo *pricing.Repository, scheduleRepo *paymentschedule.Repository, logger ectologger.Logger) *Service {
	return &Service{
		pricingRepo:  pricingRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Create validates the schedule against the pricing record's total and
// persists it. A second schedule for the same pricing record is a conflict.
func (s *Service) Create(ctx context.Context, tenantID string, pricingID string, input models.PaymentScheduleInput) (*models.PaymentScheduleDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "payments.Service.Create")
	defer span.End()

	p, err := s.pricingRepo.GetByID(ctx, tenantID, pricingID)
	if err != nil {
		return nil, err
	}

	cfg, items, guarantee, err := ValidateSchedule(p, input)
	if err != nil {
		return nil, err
	}

	dto, err := s.scheduleRepo.Create(ctx, tenantID, cfg, items, guarantee)
	if err != nil {
		return nil, err
	}

	dto.WorstStatus = WorstStatus(dto.Items)
	return dto, nil
}

// Update re-validates the schedule for the (possibly changed) schedule type
// and replaces it. Validation failures leave the stored schedule untouched.
func (s *Service) Update(ctx context.Context, tenantID string, pricingID string, input models.PaymentScheduleInput) (*models.PaymentScheduleDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "payments.Service.Update")
	defer span.End()

	p, err := s.pricingRepo.GetByID(ctx, tenantID, pricingID)
	if err != nil {
		return nil, err
	}

	existing, err := s.scheduleRepo.FindByPricingID(ctx, tenantID, pricingID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("payment schedule for pricing %s not found", pricingID))
	}

	cfg, items, guarantee, err := ValidateSchedule(p, input)
	if err != nil {
		return nil, err
	}
	cfg.ID = existing.ID
	cfg.CreatedAt = existing.CreatedAt

	dto, err := s.scheduleRepo.Replace(ctx, tenantID, cfg, items, guarantee)
	if err != nil {
		return nil, err
	}

	dto.WorstStatus = WorstStatus(dto.Items)
	return dto, nil
}

// Get returns the assembled schedule with its derived worst payment status.
func (s *Service) Get(ctx context.Context, tenantID string, pricingID string) (*models.PaymentScheduleDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "payments.Service.Get")
	defer span.End()

	dto, err := s.scheduleRepo.GetByPricingID(ctx, tenantID, pricingID)
	if err != nil {
		return nil, err
	}

	dto.WorstStatus = WorstStatus(dto.Items)
	return dto, nil
}
