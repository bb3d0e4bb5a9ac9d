package orchestrator

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/go-playground/validator/v10"

	"github.com/Ramsey-B/juniper/internal/repositories/component"
	"github.com/Ramsey-B/juniper/internal/repositories/detail"
	"github.com/Ramsey-B/juniper/internal/repositories/itinerary"
	"github.com/Ramsey-B/juniper/internal/repositories/pricing"
	"github.com/Ramsey-B/juniper/pkg/attachments"
	"github.com/Ramsey-B/juniper/pkg/database"
	"github.com/Ramsey-B/juniper/pkg/events"
	"github.com/Ramsey-B/juniper/pkg/metrics"
	"github.com/Ramsey-B/juniper/pkg/models"
)

// Orchestrator coordinates base, detail, and pricing writes for every
// component type. Each typed operation keeps its base, detail, and pricing
// rows consistent within one transaction; side effects (attachment cleanup,
// event emission) stay outside it and are best-effort.
type Orchestrator struct {
	db          database.DB
	components  *component.Repository
	pricing     *pricing.Repository
	itineraries *itinerary.Repository

	flights         *detail.Store[models.FlightDetails, models.FlightDetailsPatch]
	lodgings        *detail.Store[models.LodgingDetails, models.LodgingDetailsPatch]
	transportations *detail.Store[models.TransportationDetails, models.TransportationDetailsPatch]
	dinings         *detail.Store[models.DiningDetails, models.DiningDetailsPatch]
	portInfos       *detail.Store[models.PortInfoDetails, models.PortInfoDetailsPatch]
	options         *detail.Store[models.OptionDetails, models.OptionDetailsPatch]
	cruises         *detail.Store[models.CruiseDetails, models.CruiseDetailsPatch]
	tours           *detail.Store[models.TourDetails, models.TourDetailsPatch]
	tourDays        *detail.Store[models.TourDayDetails, models.TourDayDetailsPatch]

	cleaner  attachments.Cleaner
	emitter  events.Emitter
	validate *validator.Validate
	logger   ectologger.Logger
}

// New wires an orchestrator over the given database.
func New(db database.DB, cleaner attachments.Cleaner, emitter events.Emitter, logger ectologger.Logger) *Orchestrator {
	return &Orchestrator{
		db:          db,
		components:  component.NewRepository(db, logger),
		pricing:     pricing.NewRepository(db, logger),
		itineraries: itinerary.NewRepository(db, logger),

		flights:         detail.NewFlightStore(db, logger),
		lodgings:        detail.NewLodgingStore(db, logger),
		transportations: detail.NewTransportationStore(db, logger),
		dinings:         detail.NewDiningStore(db, logger),
		portInfos:       detail.NewPortInfoStore(db, logger),
		options:         detail.NewOptionStore(db, logger),
		cruises:         detail.NewCruiseStore(db, logger),
		tours:           detail.NewTourStore(db, logger),
		tourDays:        detail.NewTourDayStore(db, logger),

		cleaner:  cleaner,
		emitter:  emitter,
		validate: validator.New(),
		logger:   logger,
	}
}

// Components exposes the base component repository to the schedule
// generators, which share the orchestrator's wiring.
func (o *Orchestrator) Components() *component.Repository {
	return o.components
}

// Itineraries exposes the itinerary repository to the schedule generators.
func (o *Orchestrator) Itineraries() *itinerary.Repository {
	return o.itineraries
}

// PortInfoStore exposes the port info detail store to the cruise generator.
func (o *Orchestrator) PortInfoStore() *detail.Store[models.PortInfoDetails, models.PortInfoDetailsPatch] {
	return o.portInfos
}

// TourDayStore exposes the tour day detail store to the tour generator.
func (o *Orchestrator) TourDayStore() *detail.Store[models.TourDayDetails, models.TourDayDetailsPatch] {
	return o.tourDays
}

// CruiseStore exposes the cruise detail store to the cruise generator.
func (o *Orchestrator) CruiseStore() *detail.Store[models.CruiseDetails, models.CruiseDetailsPatch] {
	return o.cruises
}

// TourStore exposes the tour detail store to the tour generator.
func (o *Orchestrator) TourStore() *detail.Store[models.TourDetails, models.TourDetailsPatch] {
	return o.tours
}

// resolveDay loads the target itinerary day and derives the owning tenant.
// Row-level isolation hangs off this: every subsequent write is scoped to the
// tenant resolved here, and a day with no identifiable owner is rejected
// before anything is inserted.
func (o *Orchestrator) resolveDay(ctx context.Context, dayID string) (*models.ItineraryDay, error) {
	day, err := o.itineraries.GetDay(ctx, dayID)
	if err != nil {
		return nil, err
	}
	if day.TenantID == "" {
		return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "day %s has no identifiable owner", dayID)
	}
	return day, nil
}

func recordOperation(typ models.ComponentType, operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.ComponentOperationsTotal.WithLabelValues(string(typ), operation, status).Inc()
}
