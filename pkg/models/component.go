package models

import (
	"time"
)

// ComponentType is the discriminant of the polymorphic component record; it
// determines which detail store and pricing rules apply.
type ComponentType string

const (
	ComponentTypeFlight         ComponentType = "flight"
	ComponentTypeLodging        ComponentType = "lodging"
	ComponentTypeTransportation ComponentType = "transportation"
	ComponentTypeDining         ComponentType = "dining"
	ComponentTypePortInfo       ComponentType = "port_info"
	ComponentTypeOption         ComponentType = "option"
	ComponentTypeCruise         ComponentType = "cruise"
	ComponentTypeTour           ComponentType = "tour"
	ComponentTypeTourDay        ComponentType = "tour_day"
)

// AllComponentTypes lists every valid component type tag.
var AllComponentTypes = []ComponentType{
	ComponentTypeFlight,
	ComponentTypeLodging,
	ComponentTypeTransportation,
	ComponentTypeDining,
	ComponentTypePortInfo,
	ComponentTypeOption,
	ComponentTypeCruise,
	ComponentTypeTour,
	ComponentTypeTourDay,
}

func (t ComponentType) IsValid() bool {
	for _, known := range AllComponentTypes {
		if t == known {
			return true
		}
	}
	return false
}

type ComponentStatus string

const (
	ComponentStatusProposed  ComponentStatus = "proposed"
	ComponentStatusConfirmed ComponentStatus = "confirmed"
	ComponentStatusBooked    ComponentStatus = "booked"
	ComponentStatusCancelled ComponentStatus = "cancelled"
)

func (s ComponentStatus) IsValid() bool {
	switch s {
	case ComponentStatusProposed, ComponentStatusConfirmed, ComponentStatusBooked, ComponentStatusCancelled:
		return true
	}
	return false
}

// Component is the polymorphic base record. A component with
// ParentComponentID set is a derived child whose lifecycle is owned by the
// parent's schedule generation, not by direct user edits.
type Component struct {
	ID                string          `json:"id" db:"id"`
	TenantID          string          `json:"tenant_id" db:"tenant_id"`
	ItineraryID       string          `json:"itinerary_id" db:"itinerary_id"`
	DayID             string          `json:"day_id" db:"day_id"`
	ParentComponentID *string         `json:"parent_component_id,omitempty" db:"parent_component_id"`
	Type              ComponentType   `json:"type" db:"component_type"`
	Name              string          `json:"name" db:"name"`
	SequenceOrder     int             `json:"sequence_order" db:"sequence_order"`
	StartDatetime     *time.Time      `json:"start_datetime,omitempty" db:"start_datetime"`
	EndDatetime       *time.Time      `json:"end_datetime,omitempty" db:"end_datetime"`
	Status            ComponentStatus `json:"status" db:"status"`
	Locked            bool            `json:"locked" db:"locked"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
}

// ComponentBaseInput carries the base-record fields shared by every typed
// create request.
type ComponentBaseInput struct {
	DayID         string           `json:"day_id" validate:"required"`
	Name          string           `json:"name" validate:"required"`
	SequenceOrder int              `json:"sequence_order"`
	StartDatetime *time.Time       `json:"start_datetime,omitempty"`
	EndDatetime   *time.Time       `json:"end_datetime,omitempty"`
	Status        *ComponentStatus `json:"status,omitempty"`
}

// ComponentBasePatch carries partial base-record updates. Absent fields keep
// the stored value; explicit null clears nullable columns.
type ComponentBasePatch struct {
	DayID         Optional[string]          `json:"day_id"`
	Name          Optional[string]          `json:"name"`
	SequenceOrder Optional[int]             `json:"sequence_order"`
	StartDatetime Optional[time.Time]       `json:"start_datetime"`
	EndDatetime   Optional[time.Time]       `json:"end_datetime"`
	Status        Optional[ComponentStatus] `json:"status"`
	Locked        Optional[bool]            `json:"locked"`
}

// HasChanges reports whether any base field is present in the patch.
func (p ComponentBasePatch) HasChanges() bool {
	return p.DayID.Set || p.Name.Set || p.SequenceOrder.Set ||
		p.StartDatetime.Set || p.EndDatetime.Set || p.Status.Set || p.Locked.Set
}

// ComponentDTO is the typed response: the base record, the variant-specific
// detail payload if one exists, and the pricing record.
type ComponentDTO struct {
	Component
	Details any               `json:"details,omitempty"`
	Pricing *ComponentPricing `json:"pricing,omitempty"`
}
