package schedule

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Ramsey-B/juniper/pkg/metrics"
	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

// GenerateTourDaySchedule derives one locked tour-day child per day of the
// tour. Day content comes from the tour's embedded itinerary snapshot when
// present, then from the catalog via the linked tour id, and finally from
// synthetic "Day N" placeholders for the declared length.
func (g *Generator) GenerateTourDaySchedule(ctx context.Context, tenantID string, tourID string, opts models.GenerateOptions) (*models.GenerateResult, error) {
	ctx, span := tracing.StartSpan(ctx, "schedule.Generator.GenerateTourDaySchedule")
	defer span.End()

	timer := prometheus.NewTimer(metrics.ScheduleGenerationDuration.WithLabelValues("tour"))
	defer timer.ObserveDuration()

	log := g.logger.WithContext(ctx).WithFields(map[string]any{
		"method":       "GenerateTourDaySchedule",
		"tenant_id":    tenantID,
		"component_id": tourID,
	})

	release, err := g.lockParent(ctx, tourID)
	if err != nil {
		return nil, err
	}
	defer release()

	result, err := g.generateTour(ctx, tenantID, tourID, opts)
	if err != nil {
		metrics.ScheduleGenerationsTotal.WithLabelValues("tour", "error").Inc()
		return nil, err
	}

	metrics.ScheduleGenerationsTotal.WithLabelValues("tour", "success").Inc()
	metrics.ScheduleChildrenGenerated.WithLabelValues("tour").Observe(float64(len(result.Created)))
	log.WithFields(map[string]any{
		"created": len(result.Created),
		"deleted": result.Deleted,
	}).Info("Generated tour day schedule")

	return result, nil
}

func (g *Generator) generateTour(ctx context.Context, tenantID string, tourID string, opts models.GenerateOptions) (*models.GenerateResult, error) {
	parent, err := g.comps.GetByID(ctx, tenantID, tourID)
	if err != nil {
		return nil, err
	}
	if parent.Type != models.ComponentTypeTour {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("component %s not found", tourID))
	}

	details := opts.TourDetails
	if details != nil {
		if err := checkOwnership(parent, opts.ItineraryID); err != nil {
			return nil, err
		}
	} else {
		details, err = g.tours.Get(ctx, tenantID, tourID)
		if err != nil {
			return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "tour %s has no details to generate from", tourID)
		}
	}

	itin, err := g.itins.GetByID(ctx, tenantID, parent.ItineraryID)
	if err != nil {
		return nil, err
	}
	loc := location(itin)

	days, err := g.resolveTourDays(ctx, tenantID, details)
	if err != nil {
		return nil, err
	}

	start, err := g.tourStart(ctx, parent, details, loc)
	if err != nil {
		return nil, err
	}
	end := start.AddDate(0, 0, len(days)-1)

	skip, err := g.resolveSkipDelete(ctx, tenantID, parent, opts.SkipDelete)
	if err != nil {
		return nil, err
	}

	// The bounds check shares the transaction so a failed pass never leaves
	// the itinerary widened without its schedule.
	ctx, tx, err := g.db.GetTx(ctx, nil)
	if err != nil {
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	itin, err = g.checkBounds(ctx, itin, start.Format(dateLayout), end.Format(dateLayout), opts.AutoExtendItinerary)
	if err != nil {
		return nil, err
	}

	deleted := 0
	if !skip {
		deleted, err = g.comps.DeleteChildren(ctx, tenantID, parent.ID)
		if err != nil {
			return nil, err
		}
	}

	dates := dayDates(start, end, loc)
	daysByDate, err := g.itins.FindOrCreateDays(ctx, itin, dates)
	if err != nil {
		return nil, err
	}

	comps := make([]models.Component, 0, len(days))
	rows := make([]models.TourDayDetails, 0, len(days))
	for i, day := range days {
		comp := models.Component{
			ID:                uuid.New().String(),
			ItineraryID:       parent.ItineraryID,
			DayID:             daysByDate[dates[i]].ID,
			ParentComponentID: &parent.ID,
			Type:              models.ComponentTypeTourDay,
			Name:              day.Title,
			SequenceOrder:     i,
			Status:            models.ComponentStatusProposed,
			Locked:            true,
		}
		comps = append(comps, comp)

		rows = append(rows, models.TourDayDetails{
			ComponentID:   comp.ID,
			TenantID:      tenantID,
			DayNumber:     day.DayNumber,
			OvernightCity: strPtr(day.OvernightCity),
			Description:   strPtr(day.Description),
		})
	}

	if err := g.comps.BulkCreate(ctx, tenantID, comps); err != nil {
		return nil, err
	}
	if err := g.tourDays.BulkInsert(ctx, rows); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to commit")
	}

	created := make([]models.ComponentDTO, 0, len(comps))
	for i := range comps {
		created = append(created, models.ComponentDTO{Component: comps[i], Details: &rows[i]})
	}

	g.emitter.ScheduleGenerated(ctx, parent, len(created))

	return &models.GenerateResult{Created: created, Deleted: deleted}, nil
}

// resolveTourDays picks the day-content source: embedded snapshot, catalog
// lookup, then synthetic placeholders for the declared length.
func (g *Generator) resolveTourDays(ctx context.Context, tenantID string, details *models.TourDetails) ([]models.TourItineraryDay, error) {
	if len(details.ItineraryJSON.Data) > 0 {
		return normalizeTourDays(details.ItineraryJSON.Data), nil
	}

	if details.LinkedTourID != nil && *details.LinkedTourID != "" {
		days, err := g.catalog.GetDays(ctx, tenantID, *details.LinkedTourID)
		if err != nil {
			return nil, err
		}
		if len(days) > 0 {
			return normalizeTourDays(days), nil
		}
	}

	if details.Days < 1 {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "tour has no itinerary snapshot, no catalog days, and no declared length")
	}

	days := make([]models.TourItineraryDay, 0, details.Days)
	for i := 1; i <= details.Days; i++ {
		days = append(days, models.TourItineraryDay{
			DayNumber: i,
			Title:     fmt.Sprintf("Day %d", i),
		})
	}
	return days, nil
}

// normalizeTourDays fills in missing day numbers and titles so downstream
// rows always carry both.
func normalizeTourDays(days []models.TourItineraryDay) []models.TourItineraryDay {
	out := make([]models.TourItineraryDay, len(days))
	copy(out, days)
	for i := range out {
		if out[i].DayNumber == 0 {
			out[i].DayNumber = i + 1
		}
		if out[i].Title == "" {
			out[i].Title = fmt.Sprintf("Day %d", out[i].DayNumber)
		}
	}
	return out
}

// tourStart anchors the tour's first day: the detail record's start date
// when present, otherwise the date of the itinerary day the tour sits on.
func (g *Generator) tourStart(ctx context.Context, parent *models.Component, details *models.TourDetails, loc *time.Location) (time.Time, error) {
	if details.StartDate != nil && *details.StartDate != "" {
		return parseDate("start_date", details.StartDate, loc)
	}

	day, err := g.itins.GetDay(ctx, parent.DayID)
	if err != nil {
		return time.Time{}, err
	}
	return parseDate("day date", &day.Date, loc)
}
