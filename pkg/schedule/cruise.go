package schedule

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Ramsey-B/juniper/pkg/metrics"
	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/tracing"
)

// GenerateCruisePortSchedule derives one port-info child per cruise day. The
// old children are deleted and the new set bulk-inserted inside a single
// transaction, so repeated invocations with the same inputs converge on the
// same generated set.
func (g *Generator) GenerateCruisePortSchedule(ctx context.Context, tenantID string, cruiseID string, opts models.GenerateOptions) (*models.GenerateResult, error) {
	ctx, span := tracing.StartSpan(ctx, "schedule.Generator.GenerateCruisePortSchedule")
	defer span.End()

	timer := prometheus.NewTimer(metrics.ScheduleGenerationDuration.WithLabelValues("cruise"))
	defer timer.ObserveDuration()

	log := g.logger.WithContext(ctx).WithFields(map[string]any{
		"method":       "GenerateCruisePortSchedule",
		"tenant_id":    tenantID,
		"component_id": cruiseID,
	})

	release, err := g.lockParent(ctx, cruiseID)
	if err != nil {
		return nil, err
	}
	defer release()

	result, err := g.generateCruise(ctx, tenantID, cruiseID, opts)
	if err != nil {
		metrics.ScheduleGenerationsTotal.WithLabelValues("cruise", "error").Inc()
		return nil, err
	}

	metrics.ScheduleGenerationsTotal.WithLabelValues("cruise", "success").Inc()
	metrics.ScheduleChildrenGenerated.WithLabelValues("cruise").Observe(float64(len(result.Created)))
	log.WithFields(map[string]any{
		"created": len(result.Created),
		"deleted": result.Deleted,
	}).Info("Generated cruise port schedule")

	return result, nil
}

func (g *Generator) generateCruise(ctx context.Context, tenantID string, cruiseID string, opts models.GenerateOptions) (*models.GenerateResult, error) {
	parent, err := g.comps.GetByID(ctx, tenantID, cruiseID)
	if err != nil {
		return nil, err
	}
	if parent.Type != models.ComponentTypeCruise {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("component %s not found", cruiseID))
	}

	details := opts.CruiseDetails
	if details != nil {
		if err := checkOwnership(parent, opts.ItineraryID); err != nil {
			return nil, err
		}
	} else {
		details, err = g.cruises.Get(ctx, tenantID, cruiseID)
		if err != nil {
			return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "cruise %s has no details to generate from", cruiseID)
		}
	}

	itin, err := g.itins.GetByID(ctx, tenantID, parent.ItineraryID)
	if err != nil {
		return nil, err
	}
	loc := location(itin)

	departure, err := parseDate("departure_date", details.DepartureDate, loc)
	if err != nil {
		return nil, err
	}
	arrival, err := parseDate("arrival_date", details.ArrivalDate, loc)
	if err != nil {
		return nil, err
	}
	if arrival.Before(departure) {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "arrival_date must not be before departure_date")
	}

	skip, err := g.resolveSkipDelete(ctx, tenantID, parent, opts.SkipDelete)
	if err != nil {
		return nil, err
	}

	calls := make(map[int]models.PortCall, len(details.PortCalls.Data))
	for _, call := range details.PortCalls.Data {
		calls[call.Day] = call
	}

	// The bounds check shares the transaction so a failed pass never leaves
	// the itinerary widened without its schedule.
	ctx, tx, err := g.db.GetTx(ctx, nil)
	if err != nil {
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	itin, err = g.checkBounds(ctx, itin, departure.Format(dateLayout), arrival.Format(dateLayout), opts.AutoExtendItinerary)
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

	dates := dayDates(departure, arrival, loc)
	daysByDate, err := g.itins.FindOrCreateDays(ctx, itin, dates)
	if err != nil {
		return nil, err
	}

	comps := make([]models.Component, 0, len(dates))
	rows := make([]models.PortInfoDetails, 0, len(dates))
	for i, dateStr := range dates {
		date := departure.AddDate(0, 0, i)
		entry := classifyCruiseDay(i, len(dates), calls[i+1], details)

		comp := models.Component{
			ID:                uuid.New().String(),
			ItineraryID:       parent.ItineraryID,
			DayID:             daysByDate[dateStr].ID,
			ParentComponentID: &parent.ID,
			Type:              models.ComponentTypePortInfo,
			Name:              entry.name,
			SequenceOrder:     i,
			Status:            models.ComponentStatusProposed,
		}
		comps = append(comps, comp)

		rows = append(rows, models.PortInfoDetails{
			ComponentID:    comp.ID,
			TenantID:       tenantID,
			PortName:       entry.portName,
			EntryType:      entry.entryType,
			ArrivalTime:    clockTime(date, entry.arrivalTime, loc),
			DepartureTime:  clockTime(date, entry.departureTime, loc),
			TenderRequired: entry.tender,
		})
	}

	if err := g.comps.BulkCreate(ctx, tenantID, comps); err != nil {
		return nil, err
	}
	if err := g.portInfos.BulkInsert(ctx, rows); err != nil {
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

type cruiseDayEntry struct {
	entryType     models.PortEntryType
	name          string
	portName      string
	arrivalTime   string
	departureTime string
	tender        bool
}

// classifyCruiseDay maps one cruise day to a port entry. Port calls are
// keyed by 1-indexed cruise day; the first and last days default to the
// cruise's departure and arrival ports when the call list does not cover
// them, and every other uncovered day reads as a sea day.
func classifyCruiseDay(index, total int, call models.PortCall, details *models.CruiseDetails) cruiseDayEntry {
	matched := call.Day == index+1 && (call.PortName != "" || call.SeaDay)

	if matched && call.SeaDay {
		return cruiseDayEntry{
			entryType: models.PortEntryTypeSeaDay,
			name:      "At Sea",
			portName:  "At Sea",
		}
	}

	entry := cruiseDayEntry{}
	if matched {
		entry.portName = call.PortName
		entry.arrivalTime = call.ArrivalTime
		entry.departureTime = call.DepartureTime
		entry.tender = call.TenderRequired
	}

	switch {
	case index == 0:
		entry.entryType = models.PortEntryTypeDeparture
		if entry.portName == "" && details.DeparturePort != nil {
			entry.portName = *details.DeparturePort
		}
		entry.name = fallback(entry.portName, "Departure")
	case index == total-1:
		entry.entryType = models.PortEntryTypeArrival
		if entry.portName == "" && details.ArrivalPort != nil {
			entry.portName = *details.ArrivalPort
		}
		entry.name = fallback(entry.portName, "Arrival")
	case matched:
		entry.entryType = models.PortEntryTypePortCall
		entry.name = entry.portName
	default:
		entry.entryType = models.PortEntryTypeSeaDay
		entry.name = "At Sea"
		entry.portName = "At Sea"
	}

	return entry
}
