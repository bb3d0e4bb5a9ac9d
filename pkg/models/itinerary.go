package models

import "time"

// Itinerary is the owning trip container for days and components. StartDate
// and EndDate are calendar dates ("2006-01-02").
type Itinerary struct {
	ID        string    `json:"id" db:"id"`
	TenantID  string    `json:"tenant_id" db:"tenant_id"`
	Name      string    `json:"name" db:"name"`
	StartDate Date      `json:"start_date" db:"start_date"`
	EndDate   Date      `json:"end_date" db:"end_date"`
	Timezone  *string   `json:"timezone,omitempty" db:"timezone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ItineraryDay is one calendar day of an itinerary. Date is unique per
// itinerary; DayNumber is its 1-indexed position.
type ItineraryDay struct {
	ID          string    `json:"id" db:"id"`
	TenantID    string    `json:"tenant_id" db:"tenant_id"`
	ItineraryID string    `json:"itinerary_id" db:"itinerary_id"`
	Date        Date      `json:"date" db:"date"`
	DayNumber   int       `json:"day_number" db:"day_number"`
	Title       *string   `json:"title,omitempty" db:"title"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
