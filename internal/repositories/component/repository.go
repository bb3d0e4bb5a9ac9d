package component

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/huandu/go-sqlbuilder"

	"github.com/Ramsey-B/juniper/pkg/database"
	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

const componentColumns = "id, tenant_id, itinerary_id, day_id, parent_component_id, component_type, name, sequence_order, start_datetime, end_datetime, status, locked, created_at, updated_at"

// Repository handles base component persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new component repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create inserts the base component row together with its pricing row in one
// transaction, returning both so callers never need a follow-up fetch.
func (r *Repository) Create(ctx context.Context, tenantID string, comp *models.Component, pricing *models.ComponentPricing) (*models.Component, *models.ComponentPricing, error) {
	ctx, span := tracing.StartSpan(ctx, "component.Repository.Create")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method":         "Create",
		"tenant_id":      tenantID,
		"component_type": comp.Type,
		"day_id":         comp.DayID,
	})

	now := time.Now().UTC()
	comp.TenantID = tenantID
	comp.CreatedAt = now
	comp.UpdatedAt = now

	pricing.TenantID = tenantID
	pricing.ComponentID = comp.ID
	pricing.CreatedAt = now
	pricing.UpdatedAt = now

	ctx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		log.WithError(err).Error("Failed to start transaction")
		return nil, nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("components")
	sb.Cols("id", "tenant_id", "itinerary_id", "day_id", "parent_component_id", "component_type", "name", "sequence_order", "start_datetime", "end_datetime", "status", "locked", "created_at", "updated_at")
	sb.Values(comp.ID, comp.TenantID, comp.ItineraryID, comp.DayID, comp.ParentComponentID, comp.Type, comp.Name, comp.SequenceOrder, comp.StartDatetime, comp.EndDatetime, comp.Status, comp.Locked, comp.CreatedAt, comp.UpdatedAt)

	query, args := sb.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.WithError(err).Error("Failed to create component")
		return nil, nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create component")
	}

	pb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	pb.InsertInto("component_pricing")
	pb.Cols("id", "tenant_id", "component_id", "total_price_cents", "taxes_and_fees_cents", "currency", "commission_rate", "commission_amount_cents", "supplier_name", "booking_reference", "notes", "created_at", "updated_at")
	pb.Values(pricing.ID, pricing.TenantID, pricing.ComponentID, pricing.TotalPriceCents, pricing.TaxesAndFeesCents, pricing.Currency, pricing.CommissionRate, pricing.CommissionAmountCents, pricing.SupplierName, pricing.BookingReference, pricing.Notes, pricing.CreatedAt, pricing.UpdatedAt)

	query, args = pb.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.WithError(err).Error("Failed to create component pricing")
		return nil, nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create component pricing")
	}

	if err := tx.Commit(ctx); err != nil {
		log.WithError(err).Error("Failed to commit transaction")
		return nil, nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to commit")
	}

	log.WithFields(map[string]any{"id": comp.ID}).Info("Created component")
	return comp, pricing, nil
}

// BulkCreate inserts component rows in batches. Callers populate IDs and
// timestamps on the rows beforehand; child sets are small enough that one
// batch is the common case.
func (r *Repository) BulkCreate(ctx context.Context, tenantID string, comps []models.Component) error {
	ctx, span := tracing.StartSpan(ctx, "component.Repository.BulkCreate")
	defer span.End()

	if len(comps) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := range comps {
		comps[i].TenantID = tenantID
		comps[i].CreatedAt = now
		comps[i].UpdatedAt = now
	}

	const batchSize = 500
	for i := 0; i < len(comps); i += batchSize {
		end := i + batchSize
		if end > len(comps) {
			end = len(comps)
		}

		sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
		sb.InsertInto("components")
		sb.Cols("id", "tenant_id", "itinerary_id", "day_id", "parent_component_id", "component_type", "name", "sequence_order", "start_datetime", "end_datetime", "status", "locked", "created_at", "updated_at")
		for _, c := range comps[i:end] {
			sb.Values(c.ID, c.TenantID, c.ItineraryID, c.DayID, c.ParentComponentID, c.Type, c.Name, c.SequenceOrder, c.StartDatetime, c.EndDatetime, c.Status, c.Locked, c.CreatedAt, c.UpdatedAt)
		}
		query, args := sb.Build()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
				"tenant_id": tenantID,
				"count":     len(comps),
			}).Error("Failed to bulk create components")
			return httperror.NewHTTPError(http.StatusInternalServerError, "failed to bulk create components")
		}
	}

	return nil
}

// GetByID retrieves a component by ID
func (r *Repository) GetByID(ctx context.Context, tenantID string, id string) (*models.Component, error) {
	ctx, span := tracing.StartSpan(ctx, "component.Repository.GetByID")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(componentColumns)
	sb.From("components")
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	var comp models.Component
	if err := r.db.GetContext(ctx, &comp, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("component %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get component")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get component")
	}

	return &comp, nil
}

// Update applies a base-field patch to the component and returns the updated
// row. Absent patch fields are left untouched.
func (r *Repository) Update(ctx context.Context, tenantID string, id string, patch models.ComponentBasePatch) (*models.Component, error) {
	ctx, span := tracing.StartSpan(ctx, "component.Repository.Update")
	defer span.End()

	existing, err := r.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	patch.DayID.Apply(&existing.DayID)
	patch.Name.Apply(&existing.Name)
	patch.SequenceOrder.Apply(&existing.SequenceOrder)
	patch.StartDatetime.ApplyPtr(&existing.StartDatetime)
	patch.EndDatetime.ApplyPtr(&existing.EndDatetime)
	patch.Status.Apply(&existing.Status)
	patch.Locked.Apply(&existing.Locked)
	existing.UpdatedAt = time.Now().UTC()

	sb := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	sb.Update("components")
	sb.Set(
		sb.Assign("day_id", existing.DayID),
		sb.Assign("name", existing.Name),
		sb.Assign("sequence_order", existing.SequenceOrder),
		sb.Assign("start_datetime", existing.StartDatetime),
		sb.Assign("end_datetime", existing.EndDatetime),
		sb.Assign("status", existing.Status),
		sb.Assign("locked", existing.Locked),
		sb.Assign("updated_at", existing.UpdatedAt),
	)
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to update component")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update component")
	}

	return existing, nil
}

// Delete removes the base row. Detail rows, pricing, and child components go
// with it via ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, tenantID string, id string) error {
	ctx, span := tracing.StartSpan(ctx, "component.Repository.Delete")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewDeleteBuilder()
	sb.DeleteFrom("components")
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to delete component")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete component")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("component %s not found", id))
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{"id": id}).Info("Deleted component")
	return nil
}

// ListChildren retrieves a parent's child components ordered by sequence.
func (r *Repository) ListChildren(ctx context.Context, tenantID string, parentID string) ([]models.Component, error) {
	ctx, span := tracing.StartSpan(ctx, "component.Repository.ListChildren")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(componentColumns)
	sb.From("components")
	sb.Where(
		sb.Equal("parent_component_id", parentID),
		sb.Equal("tenant_id", tenantID),
	)
	sb.OrderBy("sequence_order ASC", "created_at ASC")

	query, args := sb.Build()
	var comps []models.Component
	if err := r.db.SelectContext(ctx, &comps, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list child components")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list child components")
	}

	return comps, nil
}

// CountChildren returns how many children a parent component has.
func (r *Repository) CountChildren(ctx context.Context, tenantID string, parentID string) (int, error) {
	ctx, span := tracing.StartSpan(ctx, "component.Repository.CountChildren")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("COUNT(*)")
	sb.From("components")
	sb.Where(
		sb.Equal("parent_component_id", parentID),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to count child components")
		return 0, httperror.NewHTTPError(http.StatusInternalServerError, "failed to count child components")
	}

	return count, nil
}

// DeleteChildren removes all children of a parent component and returns how
// many were deleted. Cascades clean up their detail and pricing rows.
func (r *Repository) DeleteChildren(ctx context.Context, tenantID string, parentID string) (int, error) {
	ctx, span := tracing.StartSpan(ctx, "component.Repository.DeleteChildren")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewDeleteBuilder()
	sb.DeleteFrom("components")
	sb.Where(
		sb.Equal("parent_component_id", parentID),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"parent_component_id": parentID,
		}).Error("Failed to delete child components")
		return 0, httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete child components")
	}

	rows, _ := result.RowsAffected()
	return int(rows), nil
}
