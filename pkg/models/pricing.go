package models

import "time"

// ComponentPricing is the per-component pricing row. Every component gets
// exactly one, auto-created with the component; monetary values are integer
// cents to avoid float drift.
type ComponentPricing struct {
	ID                    string    `json:"id" db:"id"`
	TenantID              string    `json:"-" db:"tenant_id"`
	ComponentID           string    `json:"component_id" db:"component_id"`
	TotalPriceCents       int64     `json:"total_price_cents" db:"total_price_cents"`
	TaxesAndFeesCents     int64     `json:"taxes_and_fees_cents" db:"taxes_and_fees_cents"`
	Currency              string    `json:"currency" db:"currency"`
	CommissionRate        *float64  `json:"commission_rate,omitempty" db:"commission_rate"`
	CommissionAmountCents *int64    `json:"commission_amount_cents,omitempty" db:"commission_amount_cents"`
	SupplierName          *string   `json:"supplier_name,omitempty" db:"supplier_name"`
	BookingReference      *string   `json:"booking_reference,omitempty" db:"booking_reference"`
	Notes                 *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}

// PricingInput is the optional pricing payload nested in component creation
// requests. When omitted, an empty pricing row is still created.
type PricingInput struct {
	TotalPriceCents       int64    `json:"total_price_cents" validate:"gte=0"`
	TaxesAndFeesCents     int64    `json:"taxes_and_fees_cents" validate:"gte=0"`
	Currency              string   `json:"currency" validate:"omitempty,len=3"`
	CommissionRate        *float64 `json:"commission_rate"`
	CommissionAmountCents *int64   `json:"commission_amount_cents"`
	SupplierName          *string  `json:"supplier_name"`
	BookingReference      *string  `json:"booking_reference"`
	Notes                 *string  `json:"notes"`
}

// PricingPatch is the merge-patch for a component's pricing row. An absent
// field leaves the stored value untouched; an explicit null clears nullable
// fields.
type PricingPatch struct {
	TotalPriceCents       Optional[int64]   `json:"total_price_cents"`
	TaxesAndFeesCents     Optional[int64]   `json:"taxes_and_fees_cents"`
	Currency              Optional[string]  `json:"currency"`
	CommissionRate        Optional[float64] `json:"commission_rate"`
	CommissionAmountCents Optional[int64]   `json:"commission_amount_cents"`
	SupplierName          Optional[string]  `json:"supplier_name"`
	BookingReference      Optional[string]  `json:"booking_reference"`
	Notes                 Optional[string]  `json:"notes"`
}

func (p PricingPatch) HasChanges() bool {
	return p.TotalPriceCents.Set || p.TaxesAndFeesCents.Set || p.Currency.Set ||
		p.CommissionRate.Set || p.CommissionAmountCents.Set ||
		p.SupplierName.Set || p.BookingReference.Set || p.Notes.Set
}

func (p PricingPatch) Apply(c *ComponentPricing) {
	p.TotalPriceCents.Apply(&c.TotalPriceCents)
	p.TaxesAndFeesCents.Apply(&c.TaxesAndFeesCents)
	p.Currency.Apply(&c.Currency)
	p.CommissionRate.ApplyPtr(&c.CommissionRate)
	p.CommissionAmountCents.ApplyPtr(&c.CommissionAmountCents)
	p.SupplierName.ApplyPtr(&c.SupplierName)
	p.BookingReference.ApplyPtr(&c.BookingReference)
	p.Notes.ApplyPtr(&c.Notes)
}
