package payments

import (
	"net/http"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/juniper/pkg/models"
)

func depositType(t models.DepositType) *models.DepositType { return &t }

func float64Ptr(f float64) *float64 { return &f }

func int64Ptr(i int64) *int64 { return &i }

func statusPtr(s models.PaymentStatus) *models.PaymentStatus { return &s }

func TestWorstStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []models.PaymentStatus
		expected models.PaymentStatus
	}{
		{
			name:     "empty list is paid",
			statuses: nil,
			expected: models.PaymentStatusPaid,
		},
		{
			name:     "all paid",
			statuses: []models.PaymentStatus{models.PaymentStatusPaid, models.PaymentStatusPaid},
			expected: models.PaymentStatusPaid,
		},
		{
			name:     "pending beats paid",
			statuses: []models.PaymentStatus{models.PaymentStatusPaid, models.PaymentStatusPending},
			expected: models.PaymentStatusPending,
		},
		{
			name:     "partial beats pending",
			statuses: []models.PaymentStatus{models.PaymentStatusPending, models.PaymentStatusPartial, models.PaymentStatusPaid},
			expected: models.PaymentStatusPartial,
		},
		{
			name:     "overdue beats everything",
			statuses: []models.PaymentStatus{models.PaymentStatusPaid, models.PaymentStatusOverdue, models.PaymentStatusPartial},
			expected: models.PaymentStatusOverdue,
		},
		{
			name: "overdue sticks even when later items improve",
			statuses: []models.PaymentStatus{
				models.PaymentStatusOverdue,
				models.PaymentStatusOverdue,
				models.PaymentStatusPending,
			},
			expected: models.PaymentStatusOverdue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]models.ExpectedPaymentItem, 0, len(tt.statuses))
			for _, s := range tt.statuses {
				items = append(items, models.ExpectedPaymentItem{Status: s})
			}
			assert.Equal(t, tt.expected, WorstStatus(items))
		})
	}
}

func TestValidateSchedule_Full(t *testing.T) {
	pricing := &models.ComponentPricing{ID: "pricing-1", TotalPriceCents: 100000}

	cfg, items, guarantee, err := ValidateSchedule(pricing, models.PaymentScheduleInput{
		ScheduleType: models.PaymentScheduleTypeFull,
	})

	require.NoError(t, err)
	assert.Equal(t, "pricing-1", cfg.PricingID)
	assert.Equal(t, models.PaymentScheduleTypeFull, cfg.ScheduleType)
	assert.Empty(t, items)
	assert.Nil(t, guarantee)
}

func TestValidateSchedule_MalformedDepositDueDate(t *testing.T) {
	pricing := &models.ComponentPricing{ID: "pricing-1", TotalPriceCents: 100000}
	due := models.Date("next friday")

	_, _, _, err := ValidateSchedule(pricing, models.PaymentScheduleInput{
		ScheduleType:      models.PaymentScheduleTypeDeposit,
		DepositType:       depositType(models.DepositTypePercentage),
		DepositPercentage: float64Ptr(25),
		DepositDueDate:    &due,
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
	assert.Contains(t, err.Error(), "is not a valid date")
}

func TestValidateSchedule_InvalidType(t *testing.T) {
	pricing := &models.ComponentPricing{TotalPriceCents: 100000}

	_, _, _, err := ValidateSchedule(pricing, models.PaymentScheduleInput{
		ScheduleType: "weekly",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
}

func TestValidateSchedule_Deposit(t *testing.T) {
	pricing := &models.ComponentPricing{ID: "pricing-1", TotalPriceCents: 100000}

	tests := []struct {
		name    string
		input   models.PaymentScheduleInput
		wantErr string
	}{
		{
			name: "missing deposit type",
			input: models.PaymentScheduleInput{
				ScheduleType: models.PaymentScheduleTypeDeposit,
			},
			wantErr: "deposit_type is required",
		},
		{
			name: "percentage without value",
			input: models.PaymentScheduleInput{
				ScheduleType: models.PaymentScheduleTypeDeposit,
				DepositType:  depositType(models.DepositTypePercentage),
			},
			wantErr: "deposit_percentage is required",
		},
		{
			name: "percentage out of range",
			input: models.PaymentScheduleInput{
				ScheduleType:      models.PaymentScheduleTypeDeposit,
				DepositType:       depositType(models.DepositTypePercentage),
				DepositPercentage: float64Ptr(120),
			},
			wantErr: "must be in (0, 100]",
		},
		{
			name: "percentage zero",
			input: models.PaymentScheduleInput{
				ScheduleType:      models.PaymentScheduleTypeDeposit,
				DepositType:       depositType(models.DepositTypePercentage),
				DepositPercentage: float64Ptr(0),
			},
			wantErr: "must be in (0, 100]",
		},
		{
			name: "valid percentage",
			input: models.PaymentScheduleInput{
				ScheduleType:      models.PaymentScheduleTypeDeposit,
				DepositType:       depositType(models.DepositTypePercentage),
				DepositPercentage: float64Ptr(25),
			},
		},
		{
			name: "fixed amount without value",
			input: models.PaymentScheduleInput{
				ScheduleType: models.PaymentScheduleTypeDeposit,
				DepositType:  depositType(models.DepositTypeFixedAmount),
			},
			wantErr: "deposit_amount_cents is required",
		},
		{
			name: "fixed amount exceeds total",
			input: models.PaymentScheduleInput{
				ScheduleType:       models.PaymentScheduleTypeDeposit,
				DepositType:        depositType(models.DepositTypeFixedAmount),
				DepositAmountCents: int64Ptr(150000),
			},
			wantErr: "exceeds total price",
		},
		{
			name: "valid fixed amount",
			input: models.PaymentScheduleInput{
				ScheduleType:       models.PaymentScheduleTypeDeposit,
				DepositType:        depositType(models.DepositTypeFixedAmount),
				DepositAmountCents: int64Ptr(25000),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, _, err := ValidateSchedule(pricing, tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input.DepositType, cfg.DepositType)
		})
	}
}

func TestValidateSchedule_Installments(t *testing.T) {
	pricing := &models.ComponentPricing{ID: "pricing-1", TotalPriceCents: 100000}

	t.Run("empty items rejected", func(t *testing.T) {
		_, _, _, err := ValidateSchedule(pricing, models.PaymentScheduleInput{
			ScheduleType: models.PaymentScheduleTypeInstallments,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "items are required")
	})

	t.Run("sum mismatch rejected", func(t *testing.T) {
		_, _, _, err := ValidateSchedule(pricing, models.PaymentScheduleInput{
			ScheduleType: models.PaymentScheduleTypeInstallments,
			Items: []models.ExpectedPaymentItemInput{
				{Sequence: 1, ExpectedAmountCents: 30000, DueDate: "2026-09-01"},
				{Sequence: 2, ExpectedAmountCents: 30000, DueDate: "2026-10-01"},
			},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sum to 60000")
	})

	t.Run("non positive amount rejected", func(t *testing.T) {
		_, _, _, err := ValidateSchedule(pricing, models.PaymentScheduleInput{
			ScheduleType: models.PaymentScheduleTypeInstallments,
			Items: []models.ExpectedPaymentItemInput{
				{Sequence: 1, ExpectedAmountCents: 0, DueDate: "2026-09-01"},
			},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("missing due date rejected", func(t *testing.T) {
		_, _, _, err := ValidateSchedule(pricing, models.PaymentScheduleInput{
			ScheduleType: models.PaymentScheduleTypeInstallments,
			Items: []models.ExpectedPaymentItemInput{
				{Sequence: 1, ExpectedAmountCents: 100000},
			},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "due_date is required")
	})

	t.Run("malformed due date rejected", func(t *testing.T) {
		_, _, _, err := ValidateSchedule(pricing, models.PaymentScheduleInput{
			ScheduleType: models.PaymentScheduleTypeInstallments,
			Items: []models.ExpectedPaymentItemInput{
				{Sequence: 1, ExpectedAmountCents: 100000, DueDate: "soon"},
			},
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
		assert.Contains(t, err.Error(), "is not a valid date")
	})

	t.Run("exact sum accepted with default status", func(t *testing.T) {
		_, items, guarantee, err := ValidateSchedule(pricing, models.PaymentScheduleInput{
			ScheduleType: models.PaymentScheduleTypeInstallments,
			Items: []models.ExpectedPaymentItemInput{
				{Sequence: 1, ExpectedAmountCents: 40000, DueDate: "2026-09-01"},
				{Sequence: 2, ExpectedAmountCents: 60000, DueDate: "2026-10-01", Status: statusPtr(models.PaymentStatusPaid)},
			},
		})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, models.PaymentStatusPending, items[0].Status)
		assert.Equal(t, models.PaymentStatusPaid, items[1].Status)
		assert.Nil(t, guarantee)
	})
}

func TestValidateSchedule_Guarantee(t *testing.T) {
	pricing := &models.ComponentPricing{ID: "pricing-1", TotalPriceCents: 100000}

	valid := models.CreditCardGuaranteeInput{
		CardholderName:        "Jordan Smith",
		CardLastFour:          "4242",
		AuthorizationCode:     "AUTH-123",
		AuthorizationDate:     "2026-08-01",
		AuthorizedAmountCents: 100000,
	}

	tests := []struct {
		name    string
		mutate  func(*models.CreditCardGuaranteeInput)
		wantErr string
	}{
		{name: "valid guarantee", mutate: func(g *models.CreditCardGuaranteeInput) {}},
		{
			name:    "missing cardholder",
			mutate:  func(g *models.CreditCardGuaranteeInput) { g.CardholderName = "" },
			wantErr: "cardholder_name is required",
		},
		{
			name:    "short last four",
			mutate:  func(g *models.CreditCardGuaranteeInput) { g.CardLastFour = "42" },
			wantErr: "card_last_four must be exactly 4 digits",
		},
		{
			name:    "missing authorization code",
			mutate:  func(g *models.CreditCardGuaranteeInput) { g.AuthorizationCode = "" },
			wantErr: "authorization_code is required",
		},
		{
			name:    "missing authorization date",
			mutate:  func(g *models.CreditCardGuaranteeInput) { g.AuthorizationDate = "" },
			wantErr: "authorization_date is required",
		},
		{
			name:    "malformed authorization date",
			mutate:  func(g *models.CreditCardGuaranteeInput) { g.AuthorizationDate = "08/01/2026" },
			wantErr: "is not a valid date",
		},
		{
			name:    "zero authorized amount",
			mutate:  func(g *models.CreditCardGuaranteeInput) { g.AuthorizedAmountCents = 0 },
			wantErr: "authorized_amount_cents must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := valid
			tt.mutate(&g)
			_, _, guarantee, err := ValidateSchedule(pricing, models.PaymentScheduleInput{
				ScheduleType: models.PaymentScheduleTypeGuarantee,
				Guarantee:    &g,
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, guarantee)
			assert.Equal(t, "4242", guarantee.CardLastFour)
		})
	}

	t.Run("missing guarantee block rejected", func(t *testing.T) {
		_, _, _, err := ValidateSchedule(pricing, models.PaymentScheduleInput{
			ScheduleType: models.PaymentScheduleTypeGuarantee,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "guarantee is required")
	})
}
