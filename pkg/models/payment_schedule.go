package models

import "time"

// PaymentScheduleType selects how a component's price is expected to be paid.
type PaymentScheduleType string

const (
	PaymentScheduleTypeFull         PaymentScheduleType = "full"
	PaymentScheduleTypeDeposit      PaymentScheduleType = "deposit"
	PaymentScheduleTypeInstallments PaymentScheduleType = "installments"
	PaymentScheduleTypeGuarantee    PaymentScheduleType = "guarantee"
)

func (t PaymentScheduleType) IsValid() bool {
	switch t {
	case PaymentScheduleTypeFull, PaymentScheduleTypeDeposit,
		PaymentScheduleTypeInstallments, PaymentScheduleTypeGuarantee:
		return true
	}
	return false
}

// DepositType selects how a deposit schedule expresses the up-front amount.
type DepositType string

const (
	DepositTypePercentage  DepositType = "percentage"
	DepositTypeFixedAmount DepositType = "fixed_amount"
)

func (t DepositType) IsValid() bool {
	return t == DepositTypePercentage || t == DepositTypeFixedAmount
}

// PaymentStatus is the collection state of a single expected payment.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusPartial, PaymentStatusOverdue:
		return true
	}
	return false
}

// PaymentScheduleConfig is the one-per-pricing payment plan. Deposit fields
// are populated only for the deposit type; items and guarantee live in their
// own tables.
type PaymentScheduleConfig struct {
	ID                string              `json:"id" db:"id"`
	TenantID          string              `json:"-" db:"tenant_id"`
	PricingID         string              `json:"pricing_id" db:"pricing_id"`
	ScheduleType      PaymentScheduleType `json:"schedule_type" db:"schedule_type"`
	DepositType       *DepositType        `json:"deposit_type,omitempty" db:"deposit_type"`
	DepositPercentage *float64            `json:"deposit_percentage,omitempty" db:"deposit_percentage"`
	DepositAmountCents *int64             `json:"deposit_amount_cents,omitempty" db:"deposit_amount_cents"`
	DepositDueDate    *Date               `json:"deposit_due_date,omitempty" db:"deposit_due_date"`
	BalanceDueDate    *Date               `json:"balance_due_date,omitempty" db:"balance_due_date"`
	CreatedAt         time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at" db:"updated_at"`
}

// ExpectedPaymentItem is one installment of an installments schedule.
type ExpectedPaymentItem struct {
	ID                  string        `json:"id" db:"id"`
	TenantID            string        `json:"-" db:"tenant_id"`
	ScheduleConfigID    string        `json:"schedule_config_id" db:"schedule_config_id"`
	Sequence            int           `json:"sequence" db:"sequence"`
	ExpectedAmountCents int64         `json:"expected_amount_cents" db:"expected_amount_cents"`
	DueDate             Date          `json:"due_date" db:"due_date"`
	Status              PaymentStatus `json:"status" db:"status"`
	PaidAmountCents     int64         `json:"paid_amount_cents" db:"paid_amount_cents"`
	CreatedAt           time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at" db:"updated_at"`
}

// CreditCardGuarantee is the card-hold sub-record of a guarantee schedule.
type CreditCardGuarantee struct {
	ID                    string    `json:"id" db:"id"`
	TenantID              string    `json:"-" db:"tenant_id"`
	ScheduleConfigID      string    `json:"schedule_config_id" db:"schedule_config_id"`
	CardholderName        string    `json:"cardholder_name" db:"cardholder_name"`
	CardLastFour          string    `json:"card_last_four" db:"card_last_four"`
	AuthorizationCode     string    `json:"authorization_code" db:"authorization_code"`
	AuthorizationDate     Date      `json:"authorization_date" db:"authorization_date"`
	AuthorizedAmountCents int64     `json:"authorized_amount_cents" db:"authorized_amount_cents"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}

// ExpectedPaymentItemInput is one installment of a schedule request.
type ExpectedPaymentItemInput struct {
	Sequence            int            `json:"sequence" validate:"gte=1"`
	ExpectedAmountCents int64          `json:"expected_amount_cents" validate:"gt=0"`
	DueDate             Date           `json:"due_date" validate:"required"`
	Status              *PaymentStatus `json:"status"`
}

// CreditCardGuaranteeInput carries the guarantee sub-record of a schedule
// request. All fields are required for the guarantee schedule type.
type CreditCardGuaranteeInput struct {
	CardholderName        string `json:"cardholder_name"`
	CardLastFour          string `json:"card_last_four"`
	AuthorizationCode     string `json:"authorization_code"`
	AuthorizationDate     Date   `json:"authorization_date"`
	AuthorizedAmountCents int64  `json:"authorized_amount_cents"`
}

// PaymentScheduleInput is the full create/replace payload for a pricing
// record's payment schedule.
type PaymentScheduleInput struct {
	ScheduleType       PaymentScheduleType        `json:"schedule_type" validate:"required"`
	DepositType        *DepositType               `json:"deposit_type"`
	DepositPercentage  *float64                   `json:"deposit_percentage"`
	DepositAmountCents *int64                     `json:"deposit_amount_cents"`
	DepositDueDate     *Date                      `json:"deposit_due_date"`
	BalanceDueDate     *Date                      `json:"balance_due_date"`
	Items              []ExpectedPaymentItemInput `json:"items"`
	Guarantee          *CreditCardGuaranteeInput  `json:"guarantee"`
}

// PaymentScheduleDTO is the assembled schedule returned to callers,
// including the derived worst payment status across its items.
type PaymentScheduleDTO struct {
	PaymentScheduleConfig
	Items       []ExpectedPaymentItem `json:"items,omitempty"`
	Guarantee   *CreditCardGuarantee  `json:"guarantee,omitempty"`
	WorstStatus PaymentStatus         `json:"worst_status"`
}
