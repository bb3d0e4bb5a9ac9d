package schedule

import (
	"context"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/juniper/internal/repositories/tourcatalog"
	"github.com/Ramsey-B/juniper/pkg/database"
	"github.com/Ramsey-B/juniper/pkg/events"
	"github.com/Ramsey-B/juniper/pkg/models"
	"github.com/Ramsey-B/juniper/pkg/orchestrator"
	"github.com/Ramsey-B/juniper/pkg/redis"
)

const dateLayout = "2006-01-02"

const (
	lockTTL     = 30 * time.Second
	lockTimeout = 2 * time.Second
)

// componentStore is the slice of the component repository the generator
// depends on.
type componentStore interface {
	GetByID(ctx context.Context, tenantID string, id string) (*models.Component, error)
	CountChildren(ctx context.Context, tenantID string, parentID string) (int, error)
	DeleteChildren(ctx context.Context, tenantID string, parentID string) (int, error)
	BulkCreate(ctx context.Context, tenantID string, comps []models.Component) error
}

// itineraryStore is the slice of the itinerary repository the generator
// depends on.
type itineraryStore interface {
	GetByID(ctx context.Context, tenantID string, id string) (*models.Itinerary, error)
	GetDay(ctx context.Context, dayID string) (*models.ItineraryDay, error)
	FindOrCreateDays(ctx context.Context, itin *models.Itinerary, dates []string) (map[string]models.ItineraryDay, error)
	ExtendBounds(ctx context.Context, tenantID string, id string, startDate, endDate string) (*models.Itinerary, error)
}

type cruiseDetailStore interface {
	Get(ctx context.Context, tenantID, componentID string) (*models.CruiseDetails, error)
}

type tourDetailStore interface {
	Get(ctx context.Context, tenantID, componentID string) (*models.TourDetails, error)
}

type portInfoWriter interface {
	BulkInsert(ctx context.Context, rows []models.PortInfoDetails) error
}

type tourDayWriter interface {
	BulkInsert(ctx context.Context, rows []models.TourDayDetails) error
}

type catalogStore interface {
	GetDays(ctx context.Context, tenantID string, tourID string) ([]models.TourItineraryDay, error)
}

// Generator produces derived child schedules for cruise and tour components.
// Each generation pass replaces the parent's children atomically: the delete
// of the old set and the bulk insert of the new set share one transaction.
// Concurrent passes for the same parent are serialized through a distributed
// lock when a locker is configured.
type Generator struct {
	db        database.DB
	comps     componentStore
	itins     itineraryStore
	cruises   cruiseDetailStore
	tours     tourDetailStore
	portInfos portInfoWriter
	tourDays  tourDayWriter
	catalog   catalogStore
	locker    *redis.Locker
	emitter   events.Emitter
	logger    ectologger.Logger
}

// NewGenerator wires a schedule generator over the orchestrator's stores.
// locker may be nil, in which case callers get no cross-process
// serialization.
func NewGenerator(db database.DB, orch *orchestrator.Orchestrator, catalog *tourcatalog.Repository, locker *redis.Locker, emitter events.Emitter, logger ectologger.Logger) *Generator {
	return &Generator{
		db:        db,
		comps:     orch.Components(),
		itins:     orch.Itineraries(),
		cruises:   orch.CruiseStore(),
		tours:     orch.TourStore(),
		portInfos: orch.PortInfoStore(),
		tourDays:  orch.TourDayStore(),
		catalog:   catalog,
		locker:    locker,
		emitter:   emitter,
		logger:    logger,
	}
}

// lockParent serializes regeneration per parent component. A held lock means
// another regeneration is mid-pass; surfacing that as a conflict beats
// letting two passes race to delete and recreate the same children.
func (g *Generator) lockParent(ctx context.Context, parentID string) (func(), error) {
	if g.locker == nil {
		return func() {}, nil
	}

	lock, err := g.locker.TryAcquire(ctx, "schedule:"+parentID, lockTTL, lockTimeout)
	if err != nil {
		if err == redis.ErrLockNotAcquired {
			return nil, httperror.NewHTTPErrorf(http.StatusConflict, "schedule generation already in progress for component %s", parentID)
		}
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to acquire schedule lock")
	}

	return func() {
		if err := lock.Release(ctx); err != nil {
			g.logger.WithContext(ctx).WithError(err).Warn("Failed to release schedule lock")
		}
	}, nil
}

// checkOwnership validates a caller-supplied snapshot against the parent's
// true itinerary. Mismatches read as invalid input rather than a permission
// error so callers learn nothing about resources outside their reach.
func checkOwnership(parent *models.Component, itineraryID string) error {
	if itineraryID != "" && itineraryID != parent.ItineraryID {
		return httperror.NewHTTPErrorf(http.StatusBadRequest, "itinerary %s does not match component %s", itineraryID, parent.ID)
	}
	return nil
}

// resolveSkipDelete honors a skip-delete request only on a parent with no
// existing children; otherwise the skip is silently overridden and the pass
// deletes as usual.
func (g *Generator) resolveSkipDelete(ctx context.Context, tenantID string, parent *models.Component, skipRequested bool) (bool, error) {
	if !skipRequested {
		return false, nil
	}

	count, err := g.comps.CountChildren(ctx, tenantID, parent.ID)
	if err != nil {
		return false, err
	}
	if count > 0 {
		g.logger.WithContext(ctx).WithFields(map[string]any{
			"component_id": parent.ID,
			"children":     count,
		}).Info("skip_delete requested but children exist, deleting anyway")
		return false, nil
	}

	return true, nil
}

// checkBounds verifies the date range fits inside the itinerary, extending
// the itinerary when permitted. Returns the (possibly updated) itinerary.
func (g *Generator) checkBounds(ctx context.Context, itin *models.Itinerary, startDate, endDate string, autoExtend bool) (*models.Itinerary, error) {
	if startDate >= string(itin.StartDate) && endDate <= string(itin.EndDate) {
		return itin, nil
	}

	if !autoExtend {
		if startDate < string(itin.StartDate) {
			return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "start date %s is before the itinerary start %s", startDate, itin.StartDate)
		}
		return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "end date %s is after the itinerary end %s", endDate, itin.EndDate)
	}

	return g.itins.ExtendBounds(ctx, itin.TenantID, itin.ID, startDate, endDate)
}

// location resolves the itinerary's timezone for local-time day math. Day
// boundaries computed in UTC shift by one for itineraries west of it, so the
// itinerary's zone wins and the process-local zone is the fallback.
func location(itin *models.Itinerary) *time.Location {
	if itin.Timezone != nil && *itin.Timezone != "" {
		if loc, err := time.LoadLocation(*itin.Timezone); err == nil {
			return loc
		}
	}
	return time.Local
}

// dayDates lists every calendar date of the inclusive range in loc.
func dayDates(start, end time.Time, loc *time.Location) []string {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc)

	var dates []string
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}

func parseDate(field string, value *models.Date, loc *time.Location) (time.Time, error) {
	if value == nil || *value == "" {
		return time.Time{}, httperror.NewHTTPErrorf(http.StatusBadRequest, "%s is required for schedule generation", field)
	}
	d, err := time.ParseInLocation(dateLayout, string(*value), loc)
	if err != nil {
		return time.Time{}, httperror.NewHTTPErrorf(http.StatusBadRequest, "%s %q is not a valid date", field, *value)
	}
	return d, nil
}

func clockTime(date time.Time, hhmm string, loc *time.Location) *time.Time {
	if hhmm == "" {
		return nil
	}
	t, err := time.ParseInLocation("15:04", hhmm, loc)
	if err != nil {
		return nil
	}
	// Midnight means the time was never specified upstream.
	if t.Hour() == 0 && t.Minute() == 0 {
		return nil
	}
	at := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc)
	return &at
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fallback(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
