package detail

import (
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/juniper/pkg/database"
	"github.com/Ramsey-B/juniper/pkg/models"
)

// One table per component type. The base row lives in components; these hold
// the type-specific columns keyed by component_id.
const (
	flightTable         = "flight_details"
	lodgingTable        = "lodging_details"
	transportationTable = "transportation_details"
	diningTable         = "dining_details"
	portInfoTable       = "port_info_details"
	optionTable         = "option_details"
	cruiseTable         = "cruise_details"
	tourTable           = "tour_details"
	tourDayTable        = "tour_day_details"
)

func NewFlightStore(db database.DB, logger ectologger.Logger) *Store[models.FlightDetails, models.FlightDetailsPatch] {
	return NewStore[models.FlightDetails, models.FlightDetailsPatch](db, logger, flightTable, "flight",
		func(tenantID, componentID string) *models.FlightDetails {
			return &models.FlightDetails{ComponentID: componentID, TenantID: tenantID}
		})
}

func NewLodgingStore(db database.DB, logger ectologger.Logger) *Store[models.LodgingDetails, models.LodgingDetailsPatch] {
	return NewStore[models.LodgingDetails, models.LodgingDetailsPatch](db, logger, lodgingTable, "lodging",
		func(tenantID, componentID string) *models.LodgingDetails {
			return &models.LodgingDetails{ComponentID: componentID, TenantID: tenantID}
		})
}

func NewTransportationStore(db database.DB, logger ectologger.Logger) *Store[models.TransportationDetails, models.TransportationDetailsPatch] {
	return NewStore[models.TransportationDetails, models.TransportationDetailsPatch](db, logger, transportationTable, "transportation",
		func(tenantID, componentID string) *models.TransportationDetails {
			return &models.TransportationDetails{ComponentID: componentID, TenantID: tenantID}
		})
}

func NewDiningStore(db database.DB, logger ectologger.Logger) *Store[models.DiningDetails, models.DiningDetailsPatch] {
	return NewStore[models.DiningDetails, models.DiningDetailsPatch](db, logger, diningTable, "dining",
		func(tenantID, componentID string) *models.DiningDetails {
			return &models.DiningDetails{ComponentID: componentID, TenantID: tenantID}
		})
}

func NewPortInfoStore(db database.DB, logger ectologger.Logger) *Store[models.PortInfoDetails, models.PortInfoDetailsPatch] {
	return NewStore[models.PortInfoDetails, models.PortInfoDetailsPatch](db, logger, portInfoTable, "port info",
		func(tenantID, componentID string) *models.PortInfoDetails {
			return &models.PortInfoDetails{ComponentID: componentID, TenantID: tenantID}
		})
}

func NewOptionStore(db database.DB, logger ectologger.Logger) *Store[models.OptionDetails, models.OptionDetailsPatch] {
	return NewStore[models.OptionDetails, models.OptionDetailsPatch](db, logger, optionTable, "option",
		func(tenantID, componentID string) *models.OptionDetails {
			return &models.OptionDetails{ComponentID: componentID, TenantID: tenantID}
		})
}

func NewCruiseStore(db database.DB, logger ectologger.Logger) *Store[models.CruiseDetails, models.CruiseDetailsPatch] {
	return NewStore[models.CruiseDetails, models.CruiseDetailsPatch](db, logger, cruiseTable, "cruise",
		func(tenantID, componentID string) *models.CruiseDetails {
			return &models.CruiseDetails{ComponentID: componentID, TenantID: tenantID}
		})
}

func NewTourStore(db database.DB, logger ectologger.Logger) *Store[models.TourDetails, models.TourDetailsPatch] {
	return NewStore[models.TourDetails, models.TourDetailsPatch](db, logger, tourTable, "tour",
		func(tenantID, componentID string) *models.TourDetails {
			return &models.TourDetails{ComponentID: componentID, TenantID: tenantID}
		})
}

func NewTourDayStore(db database.DB, logger ectologger.Logger) *Store[models.TourDayDetails, models.TourDayDetailsPatch] {
	return NewStore[models.TourDayDetails, models.TourDayDetailsPatch](db, logger, tourDayTable, "tour day",
		func(tenantID, componentID string) *models.TourDayDetails {
			return &models.TourDayDetails{ComponentID: componentID, TenantID: tenantID}
		})
}
