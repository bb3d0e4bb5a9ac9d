package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/juniper/pkg/models"
)

func TestDayDates(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "single day",
			start: "2025-12-08",
			end:   "2025-12-08",
			want:  []string{"2025-12-08"},
		},
		{
			name:  "inclusive range",
			start: "2025-12-08",
			end:   "2025-12-10",
			want:  []string{"2025-12-08", "2025-12-09", "2025-12-10"},
		},
		{
			name:  "month boundary",
			start: "2025-11-29",
			end:   "2025-12-01",
			want:  []string{"2025-11-29", "2025-11-30", "2025-12-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := time.ParseInLocation(dateLayout, tt.start, loc)
			require.NoError(t, err)
			end, err := time.ParseInLocation(dateLayout, tt.end, loc)
			require.NoError(t, err)

			assert.Equal(t, tt.want, dayDates(start, end, loc))
		})
	}
}

func TestClockTime(t *testing.T) {
	loc := time.UTC
	date := time.Date(2025, 12, 8, 0, 0, 0, 0, loc)

	t.Run("empty string is nil", func(t *testing.T) {
		assert.Nil(t, clockTime(date, "", loc))
	})

	t.Run("midnight is treated as unspecified", func(t *testing.T) {
		assert.Nil(t, clockTime(date, "00:00", loc))
	})

	t.Run("garbage is nil", func(t *testing.T) {
		assert.Nil(t, clockTime(date, "noonish", loc))
	})

	t.Run("valid time lands on the given date", func(t *testing.T) {
		got := clockTime(date, "14:30", loc)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, 12, 8, 14, 30, 0, 0, loc), *got)
	})
}

func TestCheckOwnership(t *testing.T) {
	parent := &models.Component{ID: "comp-1", ItineraryID: "itin-1"}

	assert.NoError(t, checkOwnership(parent, ""))
	assert.NoError(t, checkOwnership(parent, "itin-1"))

	err := checkOwnership(parent, "itin-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match component comp-1")
}

func TestLocation(t *testing.T) {
	tz := "Europe/Lisbon"
	bad := "Atlantis/Nowhere"

	t.Run("uses itinerary timezone", func(t *testing.T) {
		loc := location(&models.Itinerary{Timezone: &tz})
		assert.Equal(t, "Europe/Lisbon", loc.String())
	})

	t.Run("falls back on missing timezone", func(t *testing.T) {
		assert.Equal(t, time.Local, location(&models.Itinerary{}))
	})

	t.Run("falls back on unknown timezone", func(t *testing.T) {
		assert.Equal(t, time.Local, location(&models.Itinerary{Timezone: &bad}))
	})
}

func TestNormalizeTourDays(t *testing.T) {
	days := normalizeTourDays([]models.TourItineraryDay{
		{Title: "Arrival in Porto"},
		{DayNumber: 2},
		{DayNumber: 5, Title: "Douro Valley"},
	})

	require.Len(t, days, 3)
	assert.Equal(t, 1, days[0].DayNumber)
	assert.Equal(t, "Arrival in Porto", days[0].Title)
	assert.Equal(t, 2, days[1].DayNumber)
	assert.Equal(t, "Day 2", days[1].Title)
	assert.Equal(t, 5, days[2].DayNumber)
	assert.Equal(t, "Douro Valley", days[2].Title)
}

func TestNormalizeTourDaysDoesNotMutateInput(t *testing.T) {
	in := []models.TourItineraryDay{{Title: ""}}
	_ = normalizeTourDays(in)
	assert.Equal(t, "", in[0].Title)
}
