package payments

import (
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"

	"github.com/Ramsey-B/juniper/pkg/models"
)

const dateLayout = "2006-01-02"

// statusPriority orders payment statuses from best to worst. WorstStatus
// reduces over this ordering.
var statusPriority = map[models.PaymentStatus]int{
	models.PaymentStatusPaid:    0,
	models.PaymentStatusPending: 1,
	models.PaymentStatusPartial: 2,
	models.PaymentStatusOverdue: 3,
}

// WorstStatus returns the highest-priority status across the items
// (overdue > partial > pending > paid). An empty item list reads as paid.
func WorstStatus(items []models.ExpectedPaymentItem) models.PaymentStatus {
	worst := models.PaymentStatusPaid
	for _, item := range items {
		if statusPriority[item.Status] > statusPriority[worst] {
			worst = item.Status
		}
	}
	return worst
}

// ValidateSchedule checks a schedule request against the pricing record's
// total and materializes the rows to persist. All violations surface as
// invalid-input errors naming the offending field; nothing is truncated or
// defaulted to force a fit.
func ValidateSchedule(pricing *models.ComponentPricing, input models.PaymentScheduleInput) (*models.PaymentScheduleConfig, []models.ExpectedPaymentItem, *models.CreditCardGuarantee, error) {
	if !input.ScheduleType.IsValid() {
		return nil, nil, nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid schedule_type %q", input.ScheduleType)
	}

	if input.DepositDueDate != nil && !validDate(*input.DepositDueDate) {
		return nil, nil, nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "deposit_due_date %q is not a valid date", *input.DepositDueDate)
	}
	if input.BalanceDueDate != nil && !validDate(*input.BalanceDueDate) {
		return nil, nil, nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "balance_due_date %q is not a valid date", *input.BalanceDueDate)
	}

	cfg := &models.PaymentScheduleConfig{
		PricingID:      pricing.ID,
		ScheduleType:   input.ScheduleType,
		DepositDueDate: input.DepositDueDate,
		BalanceDueDate: input.BalanceDueDate,
	}

	switch input.ScheduleType {
	case models.PaymentScheduleTypeFull:
		// nothing beyond the type itself

	case models.PaymentScheduleTypeDeposit:
		if input.DepositType == nil {
			return nil, nil, nil, httperror.NewHTTPError(http.StatusBadRequest, "deposit_type is required for deposit schedules")
		}
		if !input.DepositType.IsValid() {
			return nil, nil, nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid deposit_type %q", *input.DepositType)
		}
		cfg.DepositType = input.DepositType

		switch *input.DepositType {
		case models.DepositTypePercentage:
			if input.DepositPercentage == nil {
				return nil, nil, nil, httperror.NewHTTPError(http.StatusBadRequest, "deposit_percentage is required for percentage deposits")
			}
			if *input.DepositPercentage <= 0 || *input.DepositPercentage > 100 {
				return nil, nil, nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "deposit_percentage %.2f must be in (0, 100]", *input.DepositPercentage)
			}
			cfg.DepositPercentage = input.DepositPercentage
		case models.DepositTypeFixedAmount:
			if input.DepositAmountCents == nil {
				return nil, nil, nil, httperror.NewHTTPError(http.StatusBadRequest, "deposit_amount_cents is required for fixed amount deposits")
			}
			if *input.DepositAmountCents <= 0 {
				return nil, nil, nil, httperror.NewHTTPError(http.StatusBadRequest, "deposit_amount_cents must be positive")
			}
			if *input.DepositAmountCents > pricing.TotalPriceCents {
				return nil, nil, nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "deposit_amount_cents %d exceeds total price %d", *input.DepositAmountCents, pricing.TotalPriceCents)
			}
			cfg.DepositAmountCents = input.DepositAmountCents
		}

	case models.PaymentScheduleTypeInstallments:
		if len(input.Items) == 0 {
			return nil, nil, nil, httperror.NewHTTPError(http.StatusBadRequest, "items are required for installment schedules")
		}
		var sum int64
		for _, item := range input.Items {
			if item.ExpectedAmountCents <= 0 {
				return nil, nil, nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "expected_amount_cents must be positive (item %d)", item.Sequence)
			}
			if item.DueDate == "" {
				return nil, nil, nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "due_date is required (item %d)", item.Sequence)
			}
			if !validDate(item.DueDate) {
				return nil, nil, nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "due_date %q is not a valid date (item %d)", item.DueDate, item.Sequence)
			}
			if item.Status != nil && !item.Status.IsValid() {
				return nil, nil, nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid status %q (item %d)", *item.Status, item.Sequence)
			}
			sum += item.ExpectedAmountCents
		}
		if sum != pricing.TotalPriceCents {
			return nil, nil, nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "expected payment items sum to %d, total price is %d", sum, pricing.TotalPriceCents)
		}

	case models.PaymentScheduleTypeGuarantee:
		g := input.Guarantee
		if g == nil {
			return nil, nil, nil, httperror.NewHTTPError(http.StatusBadRequest, "guarantee is required for guarantee schedules")
		}
		if g.CardholderName == "" {
			return nil, nil, nil, httperror.NewHTTPError(http.StatusBadRequest, "guarantee.cardholder_name is required")
		}
		if len(g.CardLastFour) != 4 {
			return nil, nil, nil, httperror.NewHTTPError(http.StatusBadRequest, "guarantee.card_last_four must be exactly 4 digits")
		}
		if g.AuthorizationCode == "" {
			return nil, nil, nil, httperror.NewHTTPError(http.StatusBadRequest, "guarantee.authorization_code is required")
		}
		if g.AuthorizationDate == "" {
			return nil, nil, nil, httperror.NewHTTPError(http.StatusBadRequest, "guarantee.authorization_date is required")
		}
		if !validDate(g.AuthorizationDate) {
			return nil, nil, nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "guarantee.authorization_date %q is not a valid date", g.AuthorizationDate)
		}
		if g.AuthorizedAmountCents <= 0 {
			return nil, nil, nil, httperror.NewHTTPError(http.StatusBadRequest, "guarantee.authorized_amount_cents must be positive")
		}
	}

	items := buildItems(input)
	guarantee := buildGuarantee(input)

	return cfg, items, guarantee, nil
}

func validDate(d models.Date) bool {
	_, err := time.Parse(dateLayout, string(d))
	return err == nil
}

func buildItems(input models.PaymentScheduleInput) []models.ExpectedPaymentItem {
	if input.ScheduleType != models.PaymentScheduleTypeInstallments {
		return nil
	}

	items := make([]models.ExpectedPaymentItem, 0, len(input.Items))
	for _, in := range input.Items {
		status := models.PaymentStatusPending
		if in.Status != nil {
			status = *in.Status
		}
		items = append(items, models.ExpectedPaymentItem{
			Sequence:            in.Sequence,
			ExpectedAmountCents: in.ExpectedAmountCents,
			DueDate:             in.DueDate,
			Status:              status,
		})
	}
	return items
}

func buildGuarantee(input models.PaymentScheduleInput) *models.CreditCardGuarantee {
	if input.ScheduleType != models.PaymentScheduleTypeGuarantee || input.Guarantee == nil {
		return nil
	}

	g := input.Guarantee
	return &models.CreditCardGuarantee{
		CardholderName:        g.CardholderName,
		CardLastFour:          g.CardLastFour,
		AuthorizationCode:     g.AuthorizationCode,
		AuthorizationDate:     g.AuthorizationDate,
		AuthorizedAmountCents: g.AuthorizedAmountCents,
	}
}
