package orchestrator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/juniper/pkg/models"
)

func TestValidateBase(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	before := start.Add(-time.Hour)
	badStatus := models.ComponentStatus("tentative")
	confirmed := models.ComponentStatusConfirmed

	assert.NoError(t, validateBase(nil, nil, nil))
	assert.NoError(t, validateBase(&start, &end, &confirmed))
	assert.NoError(t, validateBase(&start, nil, nil))

	err := validateBase(&start, &before, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_datetime must not be before start_datetime")

	err = validateBase(nil, nil, &badStatus)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestValidateTransportationDetails(t *testing.T) {
	tests := []struct {
		name    string
		patch   models.TransportationDetailsPatch
		wantErr string
	}{
		{
			name:  "empty patch is fine",
			patch: models.TransportationDetailsPatch{},
		},
		{
			name: "valid subtype",
			patch: models.TransportationDetailsPatch{
				Subtype: models.Some(models.TransportationSubtypeRail),
			},
		},
		{
			name: "unknown subtype rejected",
			patch: models.TransportationDetailsPatch{
				Subtype: models.Some(models.TransportationSubtype("helicopter")),
			},
			wantErr: "invalid transportation subtype",
		},
		{
			name: "null subtype rejected",
			patch: models.TransportationDetailsPatch{
				Subtype: models.Null[models.TransportationSubtype](),
			},
			wantErr: "subtype cannot be null",
		},
		{
			name: "valid timezones",
			patch: models.TransportationDetailsPatch{
				PickupTimezone:  models.Some("Europe/Lisbon"),
				DropoffTimezone: models.Some("America/New_York"),
			},
		},
		{
			name: "bad pickup timezone rejected",
			patch: models.TransportationDetailsPatch{
				PickupTimezone: models.Some("Mars/Olympus"),
			},
			wantErr: "not a valid IANA timezone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTransportationDetails(tt.patch)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateDiningDetails(t *testing.T) {
	assert.NoError(t, validateDiningDetails(models.DiningDetailsPatch{}))
	assert.NoError(t, validateDiningDetails(models.DiningDetailsPatch{PartySize: models.Some(4)}))
	assert.Error(t, validateDiningDetails(models.DiningDetailsPatch{PartySize: models.Some(0)}))
	assert.Error(t, validateDiningDetails(models.DiningDetailsPatch{PartySize: models.Some(101)}))
}

func TestValidateCruiseDetails(t *testing.T) {
	tests := []struct {
		name    string
		patch   models.CruiseDetailsPatch
		wantErr string
	}{
		{
			name: "valid dates",
			patch: models.CruiseDetailsPatch{
				DepartureDate: models.Some(models.Date("2026-03-01")),
				ArrivalDate:   models.Some(models.Date("2026-03-08")),
			},
		},
		{
			name: "arrival before departure rejected",
			patch: models.CruiseDetailsPatch{
				DepartureDate: models.Some(models.Date("2026-03-08")),
				ArrivalDate:   models.Some(models.Date("2026-03-01")),
			},
			wantErr: "arrival_date must not be before departure_date",
		},
		{
			name: "bad departure date format",
			patch: models.CruiseDetailsPatch{
				DepartureDate: models.Some(models.Date("03/01/2026")),
			},
			wantErr: "not a valid date",
		},
		{
			name: "port call day below one rejected",
			patch: models.CruiseDetailsPatch{
				PortCalls: models.Some([]models.PortCall{{Day: 0, PortName: "Cadiz"}}),
			},
			wantErr: "day must be 1 or greater",
		},
		{
			name: "port call without name rejected",
			patch: models.CruiseDetailsPatch{
				PortCalls: models.Some([]models.PortCall{{Day: 2}}),
			},
			wantErr: "port_name is required",
		},
		{
			name: "sea day without name accepted",
			patch: models.CruiseDetailsPatch{
				PortCalls: models.Some([]models.PortCall{{Day: 2, SeaDay: true}}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCruiseDetails(tt.patch)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateTourDetails(t *testing.T) {
	assert.NoError(t, validateTourDetails(models.TourDetailsPatch{Days: models.Some(7)}))
	assert.Error(t, validateTourDetails(models.TourDetailsPatch{Days: models.Some(0)}))
	assert.Error(t, validateTourDetails(models.TourDetailsPatch{Days: models.Null[int]()}))
	assert.NoError(t, validateTourDetails(models.TourDetailsPatch{StartDate: models.Some(models.Date("2026-05-01"))}))
	assert.Error(t, validateTourDetails(models.TourDetailsPatch{StartDate: models.Some(models.Date("next tuesday"))}))
	assert.Error(t, validateTourDetails(models.TourDetailsPatch{
		ItineraryJSON: models.Some([]models.TourItineraryDay{{DayNumber: -1, Title: "Oops"}}),
	}))
}

func TestValidatePortInfoDetails(t *testing.T) {
	assert.NoError(t, validatePortInfoDetails(models.PortInfoDetailsPatch{}))
	assert.NoError(t, validatePortInfoDetails(models.PortInfoDetailsPatch{
		EntryType: models.Some(models.PortEntryTypePortCall),
	}))
	assert.Error(t, validatePortInfoDetails(models.PortInfoDetailsPatch{
		EntryType: models.Some(models.PortEntryType("layover")),
	}))
}

func TestValidateTourDayDetails(t *testing.T) {
	assert.NoError(t, validateTourDayDetails(models.TourDayDetailsPatch{DayNumber: models.Some(1)}))
	assert.Error(t, validateTourDayDetails(models.TourDayDetailsPatch{DayNumber: models.Some(0)}))
}
