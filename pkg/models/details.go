package models

import (
	"time"

	"github.com/Ramsey-B/juniper/pkg/database"
)

// TransportationSubtype enumerates the accepted transportation variants.
type TransportationSubtype string

const (
	TransportationSubtypeCarRental       TransportationSubtype = "car_rental"
	TransportationSubtypePrivateTransfer TransportationSubtype = "private_transfer"
	TransportationSubtypeShuttle         TransportationSubtype = "shuttle"
	TransportationSubtypeTaxi            TransportationSubtype = "taxi"
	TransportationSubtypeRail            TransportationSubtype = "rail"
	TransportationSubtypeFerry           TransportationSubtype = "ferry"
	TransportationSubtypeOther           TransportationSubtype = "other"
)

func (s TransportationSubtype) IsValid() bool {
	switch s {
	case TransportationSubtypeCarRental, TransportationSubtypePrivateTransfer,
		TransportationSubtypeShuttle, TransportationSubtypeTaxi,
		TransportationSubtypeRail, TransportationSubtypeFerry, TransportationSubtypeOther:
		return true
	}
	return false
}

// PortEntryType classifies a generated port-info child.
type PortEntryType string

const (
	PortEntryTypeDeparture PortEntryType = "departure"
	PortEntryTypeArrival   PortEntryType = "arrival"
	PortEntryTypePortCall  PortEntryType = "port_call"
	PortEntryTypeSeaDay    PortEntryType = "sea_day"
)

// PortCall is one entry of a cruise's port-call snapshot. Day is the
// 1-indexed cruise day the call falls on; times are local "15:04" strings and
// midnight means "not specified".
type PortCall struct {
	Day            int    `json:"day"`
	PortName       string `json:"port_name"`
	ArrivalTime    string `json:"arrival_time,omitempty"`
	DepartureTime  string `json:"departure_time,omitempty"`
	SeaDay         bool   `json:"sea_day,omitempty"`
	TenderRequired bool   `json:"tender_required,omitempty"`
}

// TourItineraryDay is one entry of a tour's embedded itinerary snapshot. The
// same shape backs the tour catalog rows a linked tour resolves against.
type TourItineraryDay struct {
	DayNumber     int    `json:"day_number" db:"day_number"`
	Title         string `json:"title" db:"title"`
	Description   string `json:"description,omitempty" db:"description"`
	OvernightCity string `json:"overnight_city,omitempty" db:"overnight_city"`
}

type FlightDetails struct {
	ComponentID        string     `json:"component_id" db:"component_id"`
	TenantID           string     `json:"-" db:"tenant_id"`
	Airline            *string    `json:"airline,omitempty" db:"airline"`
	FlightNumber       *string    `json:"flight_number,omitempty" db:"flight_number"`
	DepartureAirport   *string    `json:"departure_airport,omitempty" db:"departure_airport"`
	ArrivalAirport     *string    `json:"arrival_airport,omitempty" db:"arrival_airport"`
	DepartureTime      *time.Time `json:"departure_time,omitempty" db:"departure_time"`
	ArrivalTime        *time.Time `json:"arrival_time,omitempty" db:"arrival_time"`
	CabinClass         *string    `json:"cabin_class,omitempty" db:"cabin_class"`
	ConfirmationNumber *string    `json:"confirmation_number,omitempty" db:"confirmation_number"`
}

type FlightDetailsPatch struct {
	Airline            Optional[string]    `json:"airline"`
	FlightNumber       Optional[string]    `json:"flight_number"`
	DepartureAirport   Optional[string]    `json:"departure_airport"`
	ArrivalAirport     Optional[string]    `json:"arrival_airport"`
	DepartureTime      Optional[time.Time] `json:"departure_time"`
	ArrivalTime        Optional[time.Time] `json:"arrival_time"`
	CabinClass         Optional[string]    `json:"cabin_class"`
	ConfirmationNumber Optional[string]    `json:"confirmation_number"`
}

func (p FlightDetailsPatch) HasChanges() bool {
	return p.Airline.Set || p.FlightNumber.Set || p.DepartureAirport.Set ||
		p.ArrivalAirport.Set || p.DepartureTime.Set || p.ArrivalTime.Set ||
		p.CabinClass.Set || p.ConfirmationNumber.Set
}

func (p FlightDetailsPatch) Apply(d *FlightDetails) {
	p.Airline.ApplyPtr(&d.Airline)
	p.FlightNumber.ApplyPtr(&d.FlightNumber)
	p.DepartureAirport.ApplyPtr(&d.DepartureAirport)
	p.ArrivalAirport.ApplyPtr(&d.ArrivalAirport)
	p.DepartureTime.ApplyPtr(&d.DepartureTime)
	p.ArrivalTime.ApplyPtr(&d.ArrivalTime)
	p.CabinClass.ApplyPtr(&d.CabinClass)
	p.ConfirmationNumber.ApplyPtr(&d.ConfirmationNumber)
}

type LodgingDetails struct {
	ComponentID        string  `json:"component_id" db:"component_id"`
	TenantID           string  `json:"-" db:"tenant_id"`
	CheckInDate        *string `json:"check_in_date,omitempty" db:"check_in_date"`
	CheckOutDate       *string `json:"check_out_date,omitempty" db:"check_out_date"`
	RoomType           *string `json:"room_type,omitempty" db:"room_type"`
	BoardBasis         *string `json:"board_basis,omitempty" db:"board_basis"`
	Address            *string `json:"address,omitempty" db:"address"`
	ConfirmationNumber *string `json:"confirmation_number,omitempty" db:"confirmation_number"`
}

type LodgingDetailsPatch struct {
	CheckInDate        Optional[string] `json:"check_in_date"`
	CheckOutDate       Optional[string] `json:"check_out_date"`
	RoomType           Optional[string] `json:"room_type"`
	BoardBasis         Optional[string] `json:"board_basis"`
	Address            Optional[string] `json:"address"`
	ConfirmationNumber Optional[string] `json:"confirmation_number"`
}

func (p LodgingDetailsPatch) HasChanges() bool {
	return p.CheckInDate.Set || p.CheckOutDate.Set || p.RoomType.Set ||
		p.BoardBasis.Set || p.Address.Set || p.ConfirmationNumber.Set
}

func (p LodgingDetailsPatch) Apply(d *LodgingDetails) {
	p.CheckInDate.ApplyPtr(&d.CheckInDate)
	p.CheckOutDate.ApplyPtr(&d.CheckOutDate)
	p.RoomType.ApplyPtr(&d.RoomType)
	p.BoardBasis.ApplyPtr(&d.BoardBasis)
	p.Address.ApplyPtr(&d.Address)
	p.ConfirmationNumber.ApplyPtr(&d.ConfirmationNumber)
}

type TransportationDetails struct {
	ComponentID        string                `json:"component_id" db:"component_id"`
	TenantID           string                `json:"-" db:"tenant_id"`
	Subtype            TransportationSubtype `json:"subtype" db:"subtype"`
	PickupLocation     *string               `json:"pickup_location,omitempty" db:"pickup_location"`
	DropoffLocation    *string               `json:"dropoff_location,omitempty" db:"dropoff_location"`
	PickupTime         *time.Time            `json:"pickup_time,omitempty" db:"pickup_time"`
	DropoffTime        *time.Time            `json:"dropoff_time,omitempty" db:"dropoff_time"`
	PickupTimezone     *string               `json:"pickup_timezone,omitempty" db:"pickup_timezone"`
	DropoffTimezone    *string               `json:"dropoff_timezone,omitempty" db:"dropoff_timezone"`
	Carrier            *string               `json:"carrier,omitempty" db:"carrier"`
	ConfirmationNumber *string               `json:"confirmation_number,omitempty" db:"confirmation_number"`
}

type TransportationDetailsPatch struct {
	Subtype            Optional[TransportationSubtype] `json:"subtype"`
	PickupLocation     Optional[string]                `json:"pickup_location"`
	DropoffLocation    Optional[string]                `json:"dropoff_location"`
	PickupTime         Optional[time.Time]             `json:"pickup_time"`
	DropoffTime        Optional[time.Time]             `json:"dropoff_time"`
	PickupTimezone     Optional[string]                `json:"pickup_timezone"`
	DropoffTimezone    Optional[string]                `json:"dropoff_timezone"`
	Carrier            Optional[string]                `json:"carrier"`
	ConfirmationNumber Optional[string]                `json:"confirmation_number"`
}

func (p TransportationDetailsPatch) HasChanges() bool {
	return p.Subtype.Set || p.PickupLocation.Set || p.DropoffLocation.Set ||
		p.PickupTime.Set || p.DropoffTime.Set || p.PickupTimezone.Set ||
		p.DropoffTimezone.Set || p.Carrier.Set || p.ConfirmationNumber.Set
}

func (p TransportationDetailsPatch) Apply(d *TransportationDetails) {
	p.Subtype.Apply(&d.Subtype)
	p.PickupLocation.ApplyPtr(&d.PickupLocation)
	p.DropoffLocation.ApplyPtr(&d.DropoffLocation)
	p.PickupTime.ApplyPtr(&d.PickupTime)
	p.DropoffTime.ApplyPtr(&d.DropoffTime)
	p.PickupTimezone.ApplyPtr(&d.PickupTimezone)
	p.DropoffTimezone.ApplyPtr(&d.DropoffTimezone)
	p.Carrier.ApplyPtr(&d.Carrier)
	p.ConfirmationNumber.ApplyPtr(&d.ConfirmationNumber)
}

type DiningDetails struct {
	ComponentID        string     `json:"component_id" db:"component_id"`
	TenantID           string     `json:"-" db:"tenant_id"`
	ReservationTime    *time.Time `json:"reservation_time,omitempty" db:"reservation_time"`
	PartySize          *int       `json:"party_size,omitempty" db:"party_size"`
	Cuisine            *string    `json:"cuisine,omitempty" db:"cuisine"`
	Address            *string    `json:"address,omitempty" db:"address"`
	ConfirmationNumber *string    `json:"confirmation_number,omitempty" db:"confirmation_number"`
}

type DiningDetailsPatch struct {
	ReservationTime    Optional[time.Time] `json:"reservation_time"`
	PartySize          Optional[int]       `json:"party_size"`
	Cuisine            Optional[string]    `json:"cuisine"`
	Address            Optional[string]    `json:"address"`
	ConfirmationNumber Optional[string]    `json:"confirmation_number"`
}

func (p DiningDetailsPatch) HasChanges() bool {
	return p.ReservationTime.Set || p.PartySize.Set || p.Cuisine.Set ||
		p.Address.Set || p.ConfirmationNumber.Set
}

func (p DiningDetailsPatch) Apply(d *DiningDetails) {
	p.ReservationTime.ApplyPtr(&d.ReservationTime)
	p.PartySize.ApplyPtr(&d.PartySize)
	p.Cuisine.ApplyPtr(&d.Cuisine)
	p.Address.ApplyPtr(&d.Address)
	p.ConfirmationNumber.ApplyPtr(&d.ConfirmationNumber)
}

type PortInfoDetails struct {
	ComponentID    string        `json:"component_id" db:"component_id"`
	TenantID       string        `json:"-" db:"tenant_id"`
	PortName       string        `json:"port_name" db:"port_name"`
	EntryType      PortEntryType `json:"entry_type" db:"entry_type"`
	ArrivalTime    *time.Time    `json:"arrival_time,omitempty" db:"arrival_time"`
	DepartureTime  *time.Time    `json:"departure_time,omitempty" db:"departure_time"`
	TenderRequired bool          `json:"tender_required" db:"tender_required"`
	Notes          *string       `json:"notes,omitempty" db:"notes"`
}

type PortInfoDetailsPatch struct {
	PortName       Optional[string]        `json:"port_name"`
	EntryType      Optional[PortEntryType] `json:"entry_type"`
	ArrivalTime    Optional[time.Time]     `json:"arrival_time"`
	DepartureTime  Optional[time.Time]     `json:"departure_time"`
	TenderRequired Optional[bool]          `json:"tender_required"`
	Notes          Optional[string]        `json:"notes"`
}

func (p PortInfoDetailsPatch) HasChanges() bool {
	return p.PortName.Set || p.EntryType.Set || p.ArrivalTime.Set ||
		p.DepartureTime.Set || p.TenderRequired.Set || p.Notes.Set
}

func (p PortInfoDetailsPatch) Apply(d *PortInfoDetails) {
	p.PortName.Apply(&d.PortName)
	p.EntryType.Apply(&d.EntryType)
	p.ArrivalTime.ApplyPtr(&d.ArrivalTime)
	p.DepartureTime.ApplyPtr(&d.DepartureTime)
	p.TenderRequired.Apply(&d.TenderRequired)
	p.Notes.ApplyPtr(&d.Notes)
}

type OptionDetails struct {
	ComponentID string     `json:"component_id" db:"component_id"`
	TenantID    string     `json:"-" db:"tenant_id"`
	Category    *string    `json:"category,omitempty" db:"category"`
	Description *string    `json:"description,omitempty" db:"description"`
	Supplier    *string    `json:"supplier,omitempty" db:"supplier"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty" db:"expires_at"`
}

type OptionDetailsPatch struct {
	Category    Optional[string]    `json:"category"`
	Description Optional[string]    `json:"description"`
	Supplier    Optional[string]    `json:"supplier"`
	ExpiresAt   Optional[time.Time] `json:"expires_at"`
}

func (p OptionDetailsPatch) HasChanges() bool {
	return p.Category.Set || p.Description.Set || p.Supplier.Set || p.ExpiresAt.Set
}

func (p OptionDetailsPatch) Apply(d *OptionDetails) {
	p.Category.ApplyPtr(&d.Category)
	p.Description.ApplyPtr(&d.Description)
	p.Supplier.ApplyPtr(&d.Supplier)
	p.ExpiresAt.ApplyPtr(&d.ExpiresAt)
}

// CruiseDetails holds the custom-cruise snapshot. DepartureDate and
// ArrivalDate are calendar dates ("2006-01-02"); PortCalls is the ordered
// port-call list keyed by 1-indexed cruise day.
type CruiseDetails struct {
	ComponentID      string                       `json:"component_id" db:"component_id"`
	TenantID         string                       `json:"-" db:"tenant_id"`
	CruiseLine       *string                      `json:"cruise_line,omitempty" db:"cruise_line"`
	ShipName         *string                      `json:"ship_name,omitempty" db:"ship_name"`
	DeparturePort    *string                      `json:"departure_port,omitempty" db:"departure_port"`
	ArrivalPort      *string                      `json:"arrival_port,omitempty" db:"arrival_port"`
	DepartureDate    *Date                        `json:"departure_date,omitempty" db:"departure_date"`
	ArrivalDate      *Date                        `json:"arrival_date,omitempty" db:"arrival_date"`
	CabinNumber      *string                      `json:"cabin_number,omitempty" db:"cabin_number"`
	BookingReference *string                      `json:"booking_reference,omitempty" db:"booking_reference"`
	PortCalls        database.JSONB[[]PortCall]   `json:"port_calls" db:"port_calls"`
}

type CruiseDetailsPatch struct {
	CruiseLine       Optional[string]     `json:"cruise_line"`
	ShipName         Optional[string]     `json:"ship_name"`
	DeparturePort    Optional[string]     `json:"departure_port"`
	ArrivalPort      Optional[string]     `json:"arrival_port"`
	DepartureDate    Optional[Date]       `json:"departure_date"`
	ArrivalDate      Optional[Date]       `json:"arrival_date"`
	CabinNumber      Optional[string]     `json:"cabin_number"`
	BookingReference Optional[string]     `json:"booking_reference"`
	PortCalls        Optional[[]PortCall] `json:"port_calls"`
}

func (p CruiseDetailsPatch) HasChanges() bool {
	return p.CruiseLine.Set || p.ShipName.Set || p.DeparturePort.Set ||
		p.ArrivalPort.Set || p.DepartureDate.Set || p.ArrivalDate.Set ||
		p.CabinNumber.Set || p.BookingReference.Set || p.PortCalls.Set
}

func (p CruiseDetailsPatch) Apply(d *CruiseDetails) {
	p.CruiseLine.ApplyPtr(&d.CruiseLine)
	p.ShipName.ApplyPtr(&d.ShipName)
	p.DeparturePort.ApplyPtr(&d.DeparturePort)
	p.ArrivalPort.ApplyPtr(&d.ArrivalPort)
	p.DepartureDate.ApplyPtr(&d.DepartureDate)
	p.ArrivalDate.ApplyPtr(&d.ArrivalDate)
	p.CabinNumber.ApplyPtr(&d.CabinNumber)
	p.BookingReference.ApplyPtr(&d.BookingReference)
	if p.PortCalls.Set {
		if p.PortCalls.Valid {
			d.PortCalls.Data = p.PortCalls.Value
		} else {
			d.PortCalls.Data = nil
		}
	}
}

// TourDetails holds the custom-tour snapshot. ItineraryJSON, when present,
// is the authoritative day-by-day source for schedule generation; otherwise
// the catalog is consulted via LinkedTourID, falling back to synthetic days
// for the declared length.
type TourDetails struct {
	ComponentID   string                              `json:"component_id" db:"component_id"`
	TenantID      string                              `json:"-" db:"tenant_id"`
	Operator      *string                             `json:"operator,omitempty" db:"operator"`
	LinkedTourID  *string                             `json:"linked_tour_id,omitempty" db:"linked_tour_id"`
	Days          int                                 `json:"days" db:"days"`
	StartDate     *Date                               `json:"start_date,omitempty" db:"start_date"`
	ItineraryJSON database.JSONB[[]TourItineraryDay]  `json:"itinerary_json" db:"itinerary_json"`
}

type TourDetailsPatch struct {
	Operator      Optional[string]             `json:"operator"`
	LinkedTourID  Optional[string]             `json:"linked_tour_id"`
	Days          Optional[int]                `json:"days"`
	StartDate     Optional[Date]               `json:"start_date"`
	ItineraryJSON Optional[[]TourItineraryDay] `json:"itinerary_json"`
}

func (p TourDetailsPatch) HasChanges() bool {
	return p.Operator.Set || p.LinkedTourID.Set || p.Days.Set ||
		p.StartDate.Set || p.ItineraryJSON.Set
}

func (p TourDetailsPatch) Apply(d *TourDetails) {
	p.Operator.ApplyPtr(&d.Operator)
	p.LinkedTourID.ApplyPtr(&d.LinkedTourID)
	p.Days.Apply(&d.Days)
	p.StartDate.ApplyPtr(&d.StartDate)
	if p.ItineraryJSON.Set {
		if p.ItineraryJSON.Valid {
			d.ItineraryJSON.Data = p.ItineraryJSON.Value
		} else {
			d.ItineraryJSON.Data = nil
		}
	}
}

type TourDayDetails struct {
	ComponentID   string  `json:"component_id" db:"component_id"`
	TenantID      string  `json:"-" db:"tenant_id"`
	DayNumber     int     `json:"day_number" db:"day_number"`
	OvernightCity *string `json:"overnight_city,omitempty" db:"overnight_city"`
	Description   *string `json:"description,omitempty" db:"description"`
}

type TourDayDetailsPatch struct {
	DayNumber     Optional[int]    `json:"day_number"`
	OvernightCity Optional[string] `json:"overnight_city"`
	Description   Optional[string] `json:"description"`
}

func (p TourDayDetailsPatch) HasChanges() bool {
	return p.DayNumber.Set || p.OvernightCity.Set || p.Description.Set
}

func (p TourDayDetailsPatch) Apply(d *TourDayDetails) {
	p.DayNumber.Apply(&d.DayNumber)
	p.OvernightCity.ApplyPtr(&d.OvernightCity)
	p.Description.ApplyPtr(&d.Description)
}
