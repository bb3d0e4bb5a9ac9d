package paymentschedule

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

const configColumns = "id, tenant_id, pricing_id, schedule_type, deposit_type, deposit_percentage, deposit_amount_cents, deposit_due_date, balance_due_date, created_at, updated_at"

const itemColumns = "id, tenant_id, schedule_config_id, sequence, expected_amount_cents, due_date, status, paid_amount_cents, created_at, updated_at"

const guaranteeColumns = "id, tenant_id, schedule_config_id, cardholder_name, card_last_four, authorization_code, authorization_date, authorized_amount_cents, created_at, updated_at"

// Repository handles payment schedule persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new payment schedule repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// FindByPricingID retrieves the schedule config for a pricing record, or nil
// when none exists.
func (r *Repository) FindByPricingID(ctx context.Context, tenantID string, pricingID string) (*models.PaymentScheduleConfig, error) {
	ctx, span := tracing.StartSpan(ctx, "paymentschedule.Repository.FindByPricingID")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(configColumns)
	sb.From("payment_schedule_configs")
	sb.Where(
		sb.Equal("pricing_id", pricingID),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	var cfg models.PaymentScheduleConfig
	if err := r.db.GetContext(ctx, &cfg, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, nil
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get payment schedule config")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get payment schedule config")
	}

	return &cfg, nil
}

// GetByPricingID assembles the full schedule (config, items ordered by
// sequence, guarantee) for a pricing record.
func (r *Repository) GetByPricingID(ctx context.Context, tenantID string, pricingID string) (*models.PaymentScheduleDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "paymentschedule.Repository.GetByPricingID")
	defer span.End()

	cfg, err := r.FindByPricingID(ctx, tenantID, pricingID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("payment schedule for pricing %s not found", pricingID))
	}

	dto := &models.PaymentScheduleDTO{PaymentScheduleConfig: *cfg}

	ib := sqlbuilder.PostgreSQL.NewSelectBuilder()
	ib.Select(itemColumns)
	ib.From("expected_payment_items")
	ib.Where(
		ib.Equal("schedule_config_id", cfg.ID),
		ib.Equal("tenant_id", tenantID),
	)
	ib.OrderBy("sequence ASC")

	query, args := ib.Build()
	if err := r.db.SelectContext(ctx, &dto.Items, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list expected payment items")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list expected payment items")
	}

	gb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	gb.Select(guaranteeColumns)
	gb.From("credit_card_guarantees")
	gb.Where(
		gb.Equal("schedule_config_id", cfg.ID),
		gb.Equal("tenant_id", tenantID),
	)

	query, args = gb.Build()
	var guarantee models.CreditCardGuarantee
	if err := r.db.GetContext(ctx, &guarantee, query, args...); err != nil {
		if err.Error() != "sql: no rows in result set" {
			r.logger.WithContext(ctx).WithError(err).Error("Failed to get credit card guarantee")
			return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get credit card guarantee")
		}
	} else {
		dto.Guarantee = &guarantee
	}

	return dto, nil
}

// Create persists a validated schedule (config, items, guarantee) in one
// transaction. A schedule already attached to the pricing record is a
// conflict, never silently replaced.
func (r *Repository) Create(ctx context.Context, tenantID string, cfg *models.PaymentScheduleConfig, items []models.ExpectedPaymentItem, guarantee *models.CreditCardGuarantee) (*models.PaymentScheduleDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "paymentschedule.Repository.Create")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method":        "Create",
		"tenant_id":     tenantID,
		"pricing_id":    cfg.PricingID,
		"schedule_type": cfg.ScheduleType,
	})

	existing, err := r.FindByPricingID(ctx, tenantID, cfg.PricingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperror.NewHTTPError(http.StatusConflict, fmt.Sprintf("payment schedule already exists for pricing %s", cfg.PricingID))
	}

	now := time.Now().UTC()
	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}
	cfg.TenantID = tenantID
	cfg.CreatedAt = now
	cfg.UpdatedAt = now

	ctx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		log.WithError(err).Error("Failed to start transaction")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("payment_schedule_configs")
	sb.Cols("id", "tenant_id", "pricing_id", "schedule_type", "deposit_type", "deposit_percentage", "deposit_amount_cents", "deposit_due_date", "balance_due_date", "created_at", "updated_at")
	sb.Values(cfg.ID, cfg.TenantID, cfg.PricingID, cfg.ScheduleType, cfg.DepositType, cfg.DepositPercentage, cfg.DepositAmountCents, cfg.DepositDueDate, cfg.BalanceDueDate, cfg.CreatedAt, cfg.UpdatedAt)

	query, args := sb.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.WithError(err).Error("Failed to create payment schedule config")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create payment schedule config")
	}

	if err := r.insertItems(ctx, tx, tenantID, cfg.ID, items, now); err != nil {
		return nil, err
	}

	if guarantee != nil {
		if err := r.insertGuarantee(ctx, tx, tenantID, cfg.ID, guarantee, now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.WithError(err).Error("Failed to commit transaction")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to commit")
	}

	log.WithFields(map[string]any{"id": cfg.ID}).Info("Created payment schedule")
	return &models.PaymentScheduleDTO{PaymentScheduleConfig: *cfg, Items: items, Guarantee: guarantee}, nil
}

// Replace overwrites an existing schedule with a re-validated one. Items and
// guarantee are fully replaced; the config row keeps its identity. The old
// schedule stays intact if anything fails mid-replace.
func (r *Repository) Replace(ctx context.Context, tenantID string, cfg *models.PaymentScheduleConfig, items []models.ExpectedPaymentItem, guarantee *models.CreditCardGuarantee) (*models.PaymentScheduleDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "paymentschedule.Repository.Replace")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method":        "Replace",
		"tenant_id":     tenantID,
		"pricing_id":    cfg.PricingID,
		"schedule_type": cfg.ScheduleType,
	})

	now := time.Now().UTC()
	cfg.TenantID = tenantID
	cfg.UpdatedAt = now

	ctx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		log.WithError(err).Error("Failed to start transaction")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	ub.Update("payment_schedule_configs")
	ub.Set(
		ub.Assign("schedule_type", cfg.ScheduleType),
		ub.Assign("deposit_type", cfg.DepositType),
		ub.Assign("deposit_percentage", cfg.DepositPercentage),
		ub.Assign("deposit_amount_cents", cfg.DepositAmountCents),
		ub.Assign("deposit_due_date", cfg.DepositDueDate),
		ub.Assign("balance_due_date", cfg.BalanceDueDate),
		ub.Assign("updated_at", cfg.UpdatedAt),
	)
	ub.Where(
		ub.Equal("id", cfg.ID),
		ub.Equal("tenant_id", tenantID),
	)

	query, args := ub.Build()
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to update payment schedule config")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update payment schedule config")
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("payment schedule %s not found", cfg.ID))
	}

	for _, table := range []string{"expected_payment_items", "credit_card_guarantees"} {
		db := sqlbuilder.PostgreSQL.NewDeleteBuilder()
		db.DeleteFrom(table)
		db.Where(
			db.Equal("schedule_config_id", cfg.ID),
			db.Equal("tenant_id", tenantID),
		)
		query, args := db.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.WithError(err).WithFields(map[string]any{"table": table}).Error("Failed to clear schedule sub-records")
			return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to replace payment schedule")
		}
	}

	if err := r.insertItems(ctx, tx, tenantID, cfg.ID, items, now); err != nil {
		return nil, err
	}

	if guarantee != nil {
		if err := r.insertGuarantee(ctx, tx, tenantID, cfg.ID, guarantee, now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.WithError(err).Error("Failed to commit transaction")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to commit")
	}

	log.WithFields(map[string]any{"id": cfg.ID}).Info("Replaced payment schedule")
	return &models.PaymentScheduleDTO{PaymentScheduleConfig: *cfg, Items: items, Guarantee: guarantee}, nil
}

func (r *Repository) insertItems(ctx context.Context, tx database.Tx, tenantID, configID string, items []models.ExpectedPaymentItem, now time.Time) error {
	if len(items) == 0 {
		return nil
	}

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("expected_payment_items")
	sb.Cols("id", "tenant_id", "schedule_config_id", "sequence", "expected_amount_cents", "due_date", "status", "paid_amount_cents", "created_at", "updated_at")
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		items[i].TenantID = tenantID
		items[i].ScheduleConfigID = configID
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
		sb.Values(items[i].ID, items[i].TenantID, items[i].ScheduleConfigID, items[i].Sequence, items[i].ExpectedAmountCents, items[i].DueDate, items[i].Status, items[i].PaidAmountCents, items[i].CreatedAt, items[i].UpdatedAt)
	}

	query, args := sb.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to insert expected payment items")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to insert expected payment items")
	}

	return nil
}

func (r *Repository) insertGuarantee(ctx context.Context, tx database.Tx, tenantID, configID string, g *models.CreditCardGuarantee, now time.Time) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	g.TenantID = tenantID
	g.ScheduleConfigID = configID
	g.CreatedAt = now
	g.UpdatedAt = now

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("credit_card_guarantees")
	sb.Cols("id", "tenant_id", "schedule_config_id", "cardholder_name", "card_last_four", "authorization_code", "authorization_date", "authorized_amount_cents", "created_at", "updated_at")
	sb.Values(g.ID, g.TenantID, g.ScheduleConfigID, g.CardholderName, g.CardLastFour, g.AuthorizationCode, g.AuthorizationDate, g.AuthorizedAmountCents, g.CreatedAt, g.UpdatedAt)

	query, args := sb.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to insert credit card guarantee")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to insert credit card guarantee")
	}

	return nil
}
