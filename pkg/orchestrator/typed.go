package orchestrator

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/google/uuid"

	"github.com/Ramsey-B/juniper/internal/repositories/detail"
	"github.com/Ramsey-B/juniper/pkg/metrics"
	"github.com/Ramsey-B/juniper/pkg/models"
)

const defaultCurrency = "USD"

// createComponent is the shared create path. It resolves the owning tenant
// from the target day, then writes the base row, the auto-created pricing
// row, and (when supplied) the detail row in one transaction.
func createComponent[T any, P detail.Patch[T]](ctx context.Context, o *Orchestrator, typ models.ComponentType, store *detail.Store[T, P], req CreateRequest[P], validateDetails func(P) error) (*models.ComponentDTO, error) {
	if err := o.validate.Struct(req.ComponentBaseInput); err != nil {
		return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid component input: %v", err)
	}
	if err := validateBase(req.StartDatetime, req.EndDatetime, req.Status); err != nil {
		return nil, err
	}
	if req.Details != nil && validateDetails != nil {
		if err := validateDetails(*req.Details); err != nil {
			return nil, err
		}
	}

	day, err := o.resolveDay(ctx, req.DayID)
	if err != nil {
		return nil, err
	}

	status := models.ComponentStatusProposed
	if req.Status != nil {
		status = *req.Status
	}

	comp := &models.Component{
		ID:            uuid.New().String(),
		ItineraryID:   day.ItineraryID,
		DayID:         day.ID,
		Type:          typ,
		Name:          req.Name,
		SequenceOrder: req.SequenceOrder,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		Status:        status,
	}

	pr := &models.ComponentPricing{
		ID:       uuid.New().String(),
		Currency: defaultCurrency,
	}
	if req.Pricing != nil {
		applyPricingInput(pr, *req.Pricing)
	}

	ctx, tx, err := o.db.GetTx(ctx, nil)
	if err != nil {
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	comp, pr, err = o.components.Create(ctx, day.TenantID, comp, pr)
	if err != nil {
		recordOperation(typ, "create", err)
		return nil, err
	}

	dto := &models.ComponentDTO{Component: *comp, Pricing: pr}

	if req.Details != nil {
		row, err := store.Upsert(ctx, day.TenantID, comp.ID, *req.Details)
		if err != nil {
			recordOperation(typ, "create", err)
			return nil, err
		}
		dto.Details = row
	}

	if err := tx.Commit(ctx); err != nil {
		recordOperation(typ, "create", err)
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to commit")
	}

	o.emitter.ComponentCreated(ctx, comp)
	recordOperation(typ, "create", nil)
	return dto, nil
}

// getComponent loads the base row, its detail row when one exists, and its
// pricing. A component of a different type reads as not found so callers
// cannot probe across type namespaces.
func getComponent[T any, P detail.Patch[T]](ctx context.Context, o *Orchestrator, typ models.ComponentType, store *detail.Store[T, P], tenantID, id string) (*models.ComponentDTO, error) {
	comp, err := o.components.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if comp.Type != typ {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("component %s not found", id))
	}

	dto := &models.ComponentDTO{Component: *comp}

	row, err := store.Get(ctx, tenantID, id)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
	} else {
		dto.Details = row
	}

	pr, err := o.pricing.GetByComponentID(ctx, tenantID, id)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
	} else {
		dto.Pricing = pr
	}

	return dto, nil
}

// updateComponent is the shared merge-patch path: base fields, detail
// upsert, and pricing patch land in a single transaction. A pricing patch
// never creates a missing pricing row unless it actually carries an amount.
func updateComponent[T any, P detail.Patch[T]](ctx context.Context, o *Orchestrator, typ models.ComponentType, store *detail.Store[T, P], tenantID, id string, req UpdateRequest[P], validateDetails func(P) error) (*models.ComponentDTO, error) {
	comp, err := o.components.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if comp.Type != typ {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("component %s not found", id))
	}
	if comp.Locked && !req.Locked.Set {
		return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "component %s is locked", id)
	}

	if req.Status.Set && req.Status.Valid && !req.Status.Value.IsValid() {
		return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid status %q", req.Status.Value)
	}
	if req.Details != nil && validateDetails != nil {
		if err := validateDetails(*req.Details); err != nil {
			return nil, err
		}
	}
	if req.DayID.Set {
		if !req.DayID.Valid {
			return nil, httperror.NewHTTPError(http.StatusBadRequest, "day_id cannot be null")
		}
		day, err := o.resolveDay(ctx, req.DayID.Value)
		if err != nil {
			return nil, err
		}
		// A cross-itinerary move is reported as a mismatch, not a
		// permission problem.
		if day.TenantID != tenantID || day.ItineraryID != comp.ItineraryID {
			return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "day %s does not match component %s", req.DayID.Value, id)
		}
	}

	ctx, tx, err := o.db.GetTx(ctx, nil)
	if err != nil {
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	if req.ComponentBasePatch.HasChanges() {
		comp, err = o.components.Update(ctx, tenantID, id, req.ComponentBasePatch)
		if err != nil {
			recordOperation(typ, "update", err)
			return nil, err
		}
	}

	dto := &models.ComponentDTO{Component: *comp}

	if req.Details != nil {
		row, err := store.Upsert(ctx, tenantID, id, *req.Details)
		if err != nil {
			recordOperation(typ, "update", err)
			return nil, err
		}
		dto.Details = row
	}

	if req.Pricing != nil && req.Pricing.HasChanges() {
		pr, err := o.patchPricing(ctx, tenantID, id, *req.Pricing)
		if err != nil {
			recordOperation(typ, "update", err)
			return nil, err
		}
		dto.Pricing = pr
	}

	if err := tx.Commit(ctx); err != nil {
		recordOperation(typ, "update", err)
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to commit")
	}

	o.emitter.ComponentUpdated(ctx, comp)
	recordOperation(typ, "update", nil)
	return dto, nil
}

// deleteComponent removes the component after a best-effort attachment
// cleanup. Cleanup failures are logged and counted, never surfaced.
func deleteComponent(ctx context.Context, o *Orchestrator, typ models.ComponentType, tenantID, id string) error {
	comp, err := o.components.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if comp.Type != typ {
		return httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("component %s not found", id))
	}

	if err := o.cleaner.DeleteComponentFiles(ctx, tenantID, id); err != nil {
		metrics.AttachmentCleanupFailures.Inc()
		o.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"component_id": id,
		}).Warn("Attachment cleanup failed, continuing with delete")
	}

	if err := o.components.Delete(ctx, tenantID, id); err != nil {
		recordOperation(typ, "delete", err)
		return err
	}

	o.emitter.ComponentDeleted(ctx, comp)
	recordOperation(typ, "delete", nil)
	return nil
}

// patchPricing applies a pricing patch, creating the pricing row only when
// the patch carries an explicit amount. A patch without an amount against a
// missing row is dropped rather than materializing a zero-priced record.
func (o *Orchestrator) patchPricing(ctx context.Context, tenantID, componentID string, patch models.PricingPatch) (*models.ComponentPricing, error) {
	pr, err := o.pricing.Update(ctx, tenantID, componentID, patch)
	if err == nil {
		return pr, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	if !patch.TotalPriceCents.Set || !patch.TotalPriceCents.Valid {
		return nil, nil
	}

	fresh := &models.ComponentPricing{
		ComponentID: componentID,
		Currency:    defaultCurrency,
	}
	patch.Apply(fresh)
	return o.pricing.Create(ctx, tenantID, fresh)
}

func applyPricingInput(pr *models.ComponentPricing, in models.PricingInput) {
	pr.TotalPriceCents = in.TotalPriceCents
	pr.TaxesAndFeesCents = in.TaxesAndFeesCents
	if in.Currency != "" {
		pr.Currency = in.Currency
	}
	pr.CommissionRate = in.CommissionRate
	pr.CommissionAmountCents = in.CommissionAmountCents
	pr.SupplierName = in.SupplierName
	pr.BookingReference = in.BookingReference
	pr.Notes = in.Notes
}

func validateBase(start, end *time.Time, status *models.ComponentStatus) error {
	if status != nil && !status.IsValid() {
		return httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid status %q", *status)
	}
	if start != nil && end != nil && end.Before(*start) {
		return httperror.NewHTTPError(http.StatusBadRequest, "end_datetime must not be before start_datetime")
	}
	return nil
}

func isNotFound(err error) bool {
	return httperror.IsHTTPError(err) && httperror.GetStatusCode(err) == http.StatusNotFound
}
