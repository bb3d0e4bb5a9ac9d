package models

// GenerateOptions carries the caller's inputs to a schedule generation pass.
// ItineraryID plus a pre-fetched detail snapshot lets the caller skip a
// re-fetch; when the snapshot is nil the generator loads the parent's stored
// details itself.
type GenerateOptions struct {
	ItineraryID         string         `json:"itinerary_id"`
	CruiseDetails       *CruiseDetails `json:"cruise_details,omitempty"`
	TourDetails         *TourDetails   `json:"tour_details,omitempty"`
	SkipDelete          bool           `json:"skip_delete"`
	AutoExtendItinerary bool           `json:"auto_extend_itinerary"`
}

// GenerateResult reports one completed generation pass.
type GenerateResult struct {
	Created []ComponentDTO `json:"created"`
	Deleted int            `json:"deleted"`
}
