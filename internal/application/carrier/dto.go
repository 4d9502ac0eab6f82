package carrier

import (
	"time"

	domain "github.com/packetery/backend/internal/domain/carrier"
)

// CarrierResponse is the carrier detail
type CarrierResponse struct {
	ID                    int     `json:"id"`
	Name                  string  `json:"name"`
	IsPickupPoints        bool    `json:"is_pickup_points"`
	HasCarrierDirectLabel bool    `json:"has_carrier_direct_label"`
	SeparateHouseNumber   bool    `json:"separate_house_number"`
	CustomsDeclarations   bool    `json:"customs_declarations"`
	RequiresEmail         bool    `json:"requires_email"`
	RequiresPhone         bool    `json:"requires_phone"`
	RequiresSize          bool    `json:"requires_size"`
	DisallowsCOD          bool    `json:"disallows_cod"`
	Country               string  `json:"country"`
	Currency              string  `json:"currency"`
	MaxWeight             float64 `json:"max_weight"`
	Deleted               bool    `json:"deleted"`
}

// ToCarrierResponse converts a domain carrier to a response
func ToCarrierResponse(c *domain.Carrier) CarrierResponse {
	return CarrierResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		IsPickupPoints:        c.IsPickupPoints,
		HasCarrierDirectLabel: c.HasCarrierDirectLabel,
		SeparateHouseNumber:   c.SeparateHouseNumber,
		CustomsDeclarations:   c.CustomsDeclarations,
		RequiresEmail:         c.RequiresEmail,
		RequiresPhone:         c.RequiresPhone,
		RequiresSize:          c.RequiresSize,
		DisallowsCOD:          c.DisallowsCOD,
		Country:               c.Country,
		Currency:              c.Currency,
		MaxWeight:             c.MaxWeight,
		Deleted:               c.Deleted,
	}
}

// SyncResult reports what one carrier list download changed
type SyncResult struct {
	Inserted int       `json:"inserted"`
	Updated  int       `json:"updated"`
	Deleted  int64     `json:"deleted"`
	Total    int       `json:"total"`
	SyncedAt time.Time `json:"synced_at"`
}

// SyncStatusResponse is the last successful carrier list update
type SyncStatusResponse struct {
	LastUpdate *time.Time `json:"last_update"`
}
