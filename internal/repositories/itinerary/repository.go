package itinerary

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

const dateLayout = "2006-01-02"

const dayColumns = "id, tenant_id, itinerary_id, date, day_number, title, created_at, updated_at"

// Repository handles itinerary and itinerary day persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new itinerary repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves an itinerary by ID
func (r *Repository) GetByID(ctx context.Context, tenantID string, id string) (*models.Itinerary, error) {
	ctx, span := tracing.StartSpan(ctx, "itinerary.Repository.GetByID")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("id", "tenant_id", "name", "start_date", "end_date", "timezone", "created_at", "updated_at")
	sb.From("itineraries")
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	var itin models.Itinerary
	if err := r.db.GetContext(ctx, &itin, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("itinerary %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get itinerary")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get itinerary")
	}

	return &itin, nil
}

// GetDay retrieves an itinerary day by ID without a tenant filter. It is the
// owner-resolution entry point: component creation derives the tenant and
// itinerary from the target day before any tenant-scoped query can run.
func (r *Repository) GetDay(ctx context.Context, dayID string) (*models.ItineraryDay, error) {
	ctx, span := tracing.StartSpan(ctx, "itinerary.Repository.GetDay")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(dayColumns)
	sb.From("itinerary_days")
	sb.Where(sb.Equal("id", dayID))

	query, args := sb.Build()
	var day models.ItineraryDay
	if err := r.db.GetContext(ctx, &day, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("itinerary day %s not found", dayID))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get itinerary day")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get itinerary day")
	}

	return &day, nil
}

// FindOrCreateDays resolves itinerary day rows for every requested date,
// creating the missing ones in one bulk upsert. Dates use the "2006-01-02"
// layout and must fall within the itinerary's (possibly just extended)
// bounds. Returns the rows keyed by date.
func (r *Repository) FindOrCreateDays(ctx context.Context, itin *models.Itinerary, dates []string) (map[string]models.ItineraryDay, error) {
	ctx, span := tracing.StartSpan(ctx, "itinerary.Repository.FindOrCreateDays")
	defer span.End()

	if len(dates) == 0 {
		return map[string]models.ItineraryDay{}, nil
	}

	start, err := time.Parse(dateLayout, string(itin.StartDate))
	if err != nil {
		return nil, httperror.NewHTTPErrorf(http.StatusInternalServerError, "itinerary %s has invalid start date", itin.ID)
	}

	now := time.Now().UTC()
	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("itinerary_days")
	sb.Cols("id", "tenant_id", "itinerary_id", "date", "day_number", "created_at", "updated_at")
	for _, date := range dates {
		d, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid date %q", date)
		}
		dayNumber := int(d.Sub(start).Hours()/24) + 1
		sb.Values(uuid.New().String(), itin.TenantID, itin.ID, date, dayNumber, now, now)
	}
	sb.SQL("ON CONFLICT (itinerary_id, date) DO NOTHING")

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"itinerary_id": itin.ID,
			"count":        len(dates),
		}).Error("Failed to upsert itinerary days")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to upsert itinerary days")
	}

	dateArgs := make([]any, 0, len(dates))
	for _, d := range dates {
		dateArgs = append(dateArgs, d)
	}

	qb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	qb.Select(dayColumns)
	qb.From("itinerary_days")
	qb.Where(
		qb.Equal("itinerary_id", itin.ID),
		qb.Equal("tenant_id", itin.TenantID),
		qb.In("date", dateArgs...),
	)

	query, args = qb.Build()
	var rows []models.ItineraryDay
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to load itinerary days")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to load itinerary days")
	}

	byDate := make(map[string]models.ItineraryDay, len(rows))
	for _, row := range rows {
		byDate[string(row.Date)] = row
	}

	for _, d := range dates {
		if _, ok := byDate[d]; !ok {
			return nil, httperror.NewHTTPErrorf(http.StatusInternalServerError, "itinerary day for %s missing after upsert", d)
		}
	}

	return byDate, nil
}

// ExtendBounds widens the itinerary's start and/or end date to cover the
// given range. Only the out-of-range side moves; the other keeps its value.
func (r *Repository) ExtendBounds(ctx context.Context, tenantID string, id string, startDate, endDate string) (*models.Itinerary, error) {
	ctx, span := tracing.StartSpan(ctx, "itinerary.Repository.ExtendBounds")
	defer span.End()

	itin, err := r.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if startDate < string(itin.StartDate) {
		itin.StartDate = models.Date(startDate)
		changed = true
	}
	if endDate > string(itin.EndDate) {
		itin.EndDate = models.Date(endDate)
		changed = true
	}
	if !changed {
		return itin, nil
	}
	itin.UpdatedAt = time.Now().UTC()

	sb := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	sb.Update("itineraries")
	sb.Set(
		sb.Assign("start_date", itin.StartDate),
		sb.Assign("end_date", itin.EndDate),
		sb.Assign("updated_at", itin.UpdatedAt),
	)
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to extend itinerary bounds")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to extend itinerary bounds")
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"itinerary_id": id,
		"start_date":   itin.StartDate,
		"end_date":     itin.EndDate,
	}).Info("Extended itinerary bounds")

	return itin, nil
}
