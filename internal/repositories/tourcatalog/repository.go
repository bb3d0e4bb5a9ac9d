package tourcatalog

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/huandu/go-sqlbuilder"

	"github.com/Ramsey-B/juniper/pkg/database"
	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

// Repository reads the tour catalog: the reusable day-by-day templates that
// tours can link to instead of embedding their own itinerary snapshot.
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new tour catalog repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// GetDays retrieves the catalog days for a tour ordered by day number.
// Returns an empty slice when the tour has no catalog entry.
func (r *Repository) GetDays(ctx context.Context, tenantID string, tourID string) ([]models.TourItineraryDay, error) {
	ctx, span := tracing.StartSpan(ctx, "tourcatalog.Repository.GetDays")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("day_number", "title", "description", "overnight_city")
	sb.From("tour_catalog_days")
	sb.Where(
		sb.Equal("tour_id", tourID),
		sb.Equal("tenant_id", tenantID),
	)
	sb.OrderBy("day_number ASC")

	query, args := sb.Build()
	var days []models.TourItineraryDay
	if err := r.db.SelectContext(ctx, &days, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"tour_id": tourID,
		}).Error("Failed to load tour catalog days")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to load tour catalog days")
	}

	return days, nil
}
