package orchestrator

import (
	"github.com/Ramsey-B/juniper/pkg/models"
)

// CreateRequest is the typed create payload: required base fields plus
// optional detail and pricing payloads. A detail payload triggers a detail
// row insert; a pricing payload patches the auto-created pricing row.
type CreateRequest[P any] struct {
	models.ComponentBaseInput
	Details *P                   `json:"details"`
	Pricing *models.PricingInput `json:"pricing"`
}

// UpdateRequest is the typed merge-patch payload. Absent sections are left
// untouched; a detail payload upserts the detail row; pricing fields patch
// the pricing row, creating one only when a price amount is actually
// supplied.
type UpdateRequest[P any] struct {
	models.ComponentBasePatch
	Details *P                   `json:"details"`
	Pricing *models.PricingPatch `json:"pricing"`
}
