package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ramsey-B/juniper/pkg/models"
)

func TestClassifyCruiseDay(t *testing.T) {
	departure := "Lisbon"
	arrival := "Barcelona"
	details := &models.CruiseDetails{
		DeparturePort: &departure,
		ArrivalPort:   &arrival,
	}

	tests := []struct {
		name      string
		index     int
		total     int
		call      models.PortCall
		wantType  models.PortEntryType
		wantName  string
		wantPort  string
		wantTimes [2]string
	}{
		{
			name:     "first day defaults to departure port",
			index:    0,
			total:    5,
			wantType: models.PortEntryTypeDeparture,
			wantName: "Lisbon",
			wantPort: "Lisbon",
		},
		{
			name:      "first day with matching call keeps call port and times",
			index:     0,
			total:     5,
			call:      models.PortCall{Day: 1, PortName: "Lisbon Cruise Terminal", DepartureTime: "17:00"},
			wantType:  models.PortEntryTypeDeparture,
			wantName:  "Lisbon Cruise Terminal",
			wantPort:  "Lisbon Cruise Terminal",
			wantTimes: [2]string{"", "17:00"},
		},
		{
			name:     "last day defaults to arrival port",
			index:    4,
			total:    5,
			wantType: models.PortEntryTypeArrival,
			wantName: "Barcelona",
			wantPort: "Barcelona",
		},
		{
			name:      "middle day with call is a port call",
			index:     2,
			total:     5,
			call:      models.PortCall{Day: 3, PortName: "Cadiz", ArrivalTime: "08:00", DepartureTime: "18:00", TenderRequired: true},
			wantType:  models.PortEntryTypePortCall,
			wantName:  "Cadiz",
			wantPort:  "Cadiz",
			wantTimes: [2]string{"08:00", "18:00"},
		},
		{
			name:     "middle day without call is a sea day",
			index:    1,
			total:    5,
			wantType: models.PortEntryTypeSeaDay,
			wantName: "At Sea",
			wantPort: "At Sea",
		},
		{
			name:     "explicit sea day wins over defaults",
			index:    2,
			total:    5,
			call:     models.PortCall{Day: 3, SeaDay: true},
			wantType: models.PortEntryTypeSeaDay,
			wantName: "At Sea",
			wantPort: "At Sea",
		},
		{
			name:     "call for a different day is ignored",
			index:    1,
			total:    5,
			call:     models.PortCall{Day: 4, PortName: "Malaga"},
			wantType: models.PortEntryTypeSeaDay,
			wantName: "At Sea",
			wantPort: "At Sea",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := classifyCruiseDay(tt.index, tt.total, tt.call, details)

			assert.Equal(t, tt.wantType, entry.entryType)
			assert.Equal(t, tt.wantName, entry.name)
			assert.Equal(t, tt.wantPort, entry.portName)
			assert.Equal(t, tt.wantTimes[0], entry.arrivalTime)
			assert.Equal(t, tt.wantTimes[1], entry.departureTime)
		})
	}
}

func TestClassifyCruiseDayNoPortFallbacks(t *testing.T) {
	details := &models.CruiseDetails{}

	first := classifyCruiseDay(0, 3, models.PortCall{}, details)
	assert.Equal(t, "Departure", first.name)
	assert.Equal(t, "", first.portName)

	last := classifyCruiseDay(2, 3, models.PortCall{}, details)
	assert.Equal(t, "Arrival", last.name)
	assert.Equal(t, "", last.portName)
}

func TestClassifyCruiseDayTender(t *testing.T) {
	details := &models.CruiseDetails{}
	call := models.PortCall{Day: 2, PortName: "Santorini", TenderRequired: true}

	entry := classifyCruiseDay(1, 4, call, details)
	assert.True(t, entry.tender)
}
