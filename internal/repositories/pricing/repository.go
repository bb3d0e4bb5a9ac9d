package pricing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/Ramsey-B/juniper/pkg/database"
	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

const pricingColumns = "id, tenant_id, component_id, total_price_cents, taxes_and_fees_cents, currency, commission_rate, commission_amount_cents, supplier_name, booking_reference, notes, created_at, updated_at"

// Repository handles component pricing persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new pricing repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// GetByComponentID retrieves the pricing row for a component
func (r *Repository) GetByComponentID(ctx context.Context, tenantID string, componentID string) (*models.ComponentPricing, error) {
	ctx, span := tracing.StartSpan(ctx, "pricing.Repository.GetByComponentID")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(pricingColumns)
	sb.From("component_pricing")
	sb.Where(
		sb.Equal("component_id", componentID),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	var p models.ComponentPricing
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("pricing for component %s not found", componentID))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get component pricing")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get component pricing")
	}

	return &p, nil
}

// GetByID retrieves a pricing row by its own ID
func (r *Repository) GetByID(ctx context.Context, tenantID string, id string) (*models.ComponentPricing, error) {
	ctx, span := tracing.StartSpan(ctx, "pricing.Repository.GetByID")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(pricingColumns)
	sb.From("component_pricing")
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	var p models.ComponentPricing
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("pricing %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get pricing")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get pricing")
	}

	return &p, nil
}

// Create inserts a pricing row for a component. Used when a patch supplies a
// price for a component whose pricing row was removed out of band; normal
// creation happens alongside the base row.
func (r *Repository) Create(ctx context.Context, tenantID string, p *models.ComponentPricing) (*models.ComponentPricing, error) {
	ctx, span := tracing.StartSpan(ctx, "pricing.Repository.Create")
	defer span.End()

	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.TenantID = tenantID
	p.CreatedAt = now
	p.UpdatedAt = now

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("component_pricing")
	sb.Cols("id", "tenant_id", "component_id", "total_price_cents", "taxes_and_fees_cents", "currency", "commission_rate", "commission_amount_cents", "supplier_name", "booking_reference", "notes", "created_at", "updated_at")
	sb.Values(p.ID, p.TenantID, p.ComponentID, p.TotalPriceCents, p.TaxesAndFeesCents, p.Currency, p.CommissionRate, p.CommissionAmountCents, p.SupplierName, p.BookingReference, p.Notes, p.CreatedAt, p.UpdatedAt)

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"component_id": p.ComponentID,
		}).Error("Failed to create component pricing")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create component pricing")
	}

	return p, nil
}

// Update applies a pricing patch to a component's pricing row and returns
// the updated row.
func (r *Repository) Update(ctx context.Context, tenantID string, componentID string, patch models.PricingPatch) (*models.ComponentPricing, error) {
	ctx, span := tracing.StartSpan(ctx, "pricing.Repository.Update")
	defer span.End()

	existing, err := r.GetByComponentID(ctx, tenantID, componentID)
	if err != nil {
		return nil, err
	}

	patch.Apply(existing)
	existing.UpdatedAt = time.Now().UTC()

	sb := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	sb.Update("component_pricing")
	sb.Set(
		sb.Assign("total_price_cents", existing.TotalPriceCents),
		sb.Assign("taxes_and_fees_cents", existing.TaxesAndFeesCents),
		sb.Assign("currency", existing.Currency),
		sb.Assign("commission_rate", existing.CommissionRate),
		sb.Assign("commission_amount_cents", existing.CommissionAmountCents),
		sb.Assign("supplier_name", existing.SupplierName),
		sb.Assign("booking_reference", existing.BookingReference),
		sb.Assign("notes", existing.Notes),
		sb.Assign("updated_at", existing.UpdatedAt),
	)
	sb.Where(
		sb.Equal("component_id", componentID),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to update component pricing")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update component pricing")
	}

	return existing, nil
}
