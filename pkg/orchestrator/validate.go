package orchestrator

import (
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"

	"github.com/Ramsey-B/juniper/pkg/models"
)

const dateLayout = "2006-01-02"

func validateTransportationDetails(p models.TransportationDetailsPatch) error {
	if p.Subtype.Set {
		if !p.Subtype.Valid {
			return httperror.NewHTTPError(http.StatusBadRequest, "subtype cannot be null")
		}
		if !p.Subtype.Value.IsValid() {
			return httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid transportation subtype %q", p.Subtype.Value)
		}
	}
	if err := validateTimezone("pickup_timezone", p.PickupTimezone); err != nil {
		return err
	}
	if err := validateTimezone("dropoff_timezone", p.DropoffTimezone); err != nil {
		return err
	}
	return nil
}

func validateTimezone(field string, tz models.Optional[string]) error {
	if !tz.Set || !tz.Valid {
		return nil
	}
	if _, err := time.LoadLocation(tz.Value); err != nil {
		return httperror.NewHTTPErrorf(http.StatusBadRequest, "%s %q is not a valid IANA timezone", field, tz.Value)
	}
	return nil
}

func validateDiningDetails(p models.DiningDetailsPatch) error {
	if p.PartySize.Set && p.PartySize.Valid {
		if p.PartySize.Value < 1 || p.PartySize.Value > 100 {
			return httperror.NewHTTPErrorf(http.StatusBadRequest, "party_size %d must be between 1 and 100", p.PartySize.Value)
		}
	}
	return nil
}

func validateCruiseDetails(p models.CruiseDetailsPatch) error {
	var departure, arrival *time.Time
	if p.DepartureDate.Set && p.DepartureDate.Valid {
		d, err := time.Parse(dateLayout, string(p.DepartureDate.Value))
		if err != nil {
			return httperror.NewHTTPErrorf(http.StatusBadRequest, "departure_date %q is not a valid date", p.DepartureDate.Value)
		}
		departure = &d
	}
	if p.ArrivalDate.Set && p.ArrivalDate.Valid {
		a, err := time.Parse(dateLayout, string(p.ArrivalDate.Value))
		if err != nil {
			return httperror.NewHTTPErrorf(http.StatusBadRequest, "arrival_date %q is not a valid date", p.ArrivalDate.Value)
		}
		arrival = &a
	}
	if departure != nil && arrival != nil && arrival.Before(*departure) {
		return httperror.NewHTTPError(http.StatusBadRequest, "arrival_date must not be before departure_date")
	}

	if p.PortCalls.Set && p.PortCalls.Valid {
		for i, call := range p.PortCalls.Value {
			if call.Day < 1 {
				return httperror.NewHTTPErrorf(http.StatusBadRequest, "port_calls[%d].day must be 1 or greater", i)
			}
			if !call.SeaDay && call.PortName == "" {
				return httperror.NewHTTPErrorf(http.StatusBadRequest, "port_calls[%d].port_name is required", i)
			}
		}
	}
	return nil
}

func validateTourDetails(p models.TourDetailsPatch) error {
	if p.Days.Set {
		if !p.Days.Valid {
			return httperror.NewHTTPError(http.StatusBadRequest, "days cannot be null")
		}
		if p.Days.Value < 1 {
			return httperror.NewHTTPErrorf(http.StatusBadRequest, "days %d must be 1 or greater", p.Days.Value)
		}
	}
	if p.StartDate.Set && p.StartDate.Valid {
		if _, err := time.Parse(dateLayout, string(p.StartDate.Value)); err != nil {
			return httperror.NewHTTPErrorf(http.StatusBadRequest, "start_date %q is not a valid date", p.StartDate.Value)
		}
	}
	if p.ItineraryJSON.Set && p.ItineraryJSON.Valid {
		for i, day := range p.ItineraryJSON.Value {
			if day.DayNumber < 1 {
				return httperror.NewHTTPErrorf(http.StatusBadRequest, "itinerary_json[%d].day_number must be 1 or greater", i)
			}
		}
	}
	return nil
}

func validatePortInfoDetails(p models.PortInfoDetailsPatch) error {
	if p.EntryType.Set && p.EntryType.Valid {
		switch p.EntryType.Value {
		case models.PortEntryTypeDeparture, models.PortEntryTypeArrival,
			models.PortEntryTypePortCall, models.PortEntryTypeSeaDay:
		default:
			return httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid port entry type %q", p.EntryType.Value)
		}
	}
	return nil
}

func validateTourDayDetails(p models.TourDayDetailsPatch) error {
	if p.DayNumber.Set && p.DayNumber.Valid && p.DayNumber.Value < 1 {
		return httperror.NewHTTPErrorf(http.StatusBadRequest, "day_number %d must be 1 or greater", p.DayNumber.Value)
	}
	return nil
}
