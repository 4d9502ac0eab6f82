package carrier

import (
	"strconv"
	"strings"

	"github.com/packetery/backend/internal/domain/shared"
)

// InternalPickupPointsID identifies Packeta's own pickup point network
const InternalPickupPointsID = "packeta"

// Carrier is a delivery carrier from the Packeta feed
type Carrier struct {
	ID                    int
	Name                  string
	IsPickupPoints        bool
	HasCarrierDirectLabel bool
	SeparateHouseNumber   bool
	CustomsDeclarations   bool
	RequiresEmail         bool
	RequiresPhone         bool
	RequiresSize          bool
	DisallowsCOD          bool
	Country               string
	Currency              string
	MaxWeight             float64
	Deleted               bool
}

// Validate checks the fields a feed entry must carry
func (c *Carrier) Validate() error {
	if c.ID <= 0 {
		return shared.NewDomainError("INVALID_CARRIER", "Carrier id must be positive")
	}
	if strings.TrimSpace(c.Name) == "" {
		return shared.NewDomainError("INVALID_CARRIER", "Carrier "+strconv.Itoa(c.ID)+" has no name")
	}
	if len(c.Country) != 2 {
		return shared.NewDomainError("INVALID_CARRIER", "Carrier "+strconv.Itoa(c.ID)+" has invalid country")
	}
	return nil
}

// AcceptsWeight reports whether a parcel of weight kg fits the carrier limit.
// A zero limit means the feed does not restrict weight.
func (c *Carrier) AcceptsWeight(weight float64) bool {
	return c.MaxWeight <= 0 || weight <= c.MaxWeight
}

// Option converts the carrier to a selectable option
func (c *Carrier) Option() Option {
	return Option{
		ID:             strconv.Itoa(c.ID),
		Name:           c.Name,
		IsPickupPoints: c.IsPickupPoints,
		Country:        c.Country,
	}
}

// Option is a carrier as offered in checkout and admin selects.
// ID is a numeric carrier id or a zpoint id.
type Option struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	IsPickupPoints bool   `json:"is_pickup_points"`
	Country        string `json:"country"`
}

// zpointCountries is the order the internal carriers are listed in
var zpointCountries = []string{"cz", "sk", "hu", "ro"}

// ZpointCarriers returns Packeta's internal pickup point carriers keyed by country
func ZpointCarriers() map[string]Option {
	out := make(map[string]Option, len(zpointCountries))
	for _, country := range zpointCountries {
		out[country] = zpointOption(country)
	}
	return out
}

func zpointOption(country string) Option {
	return Option{
		ID:             "zpoint" + country,
		Name:           strings.ToUpper(country) + " Packeta pickup points",
		IsPickupPoints: true,
		Country:        country,
	}
}

// IsZpointID reports whether id names an internal pickup point carrier
func IsZpointID(id string) bool {
	for _, country := range zpointCountries {
		if id == "zpoint"+country {
			return true
		}
	}
	return false
}

// ParseID returns the numeric id of an external carrier
func ParseID(id string) (int, bool) {
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// WithZpoints prepends every internal carrier to the active carriers.
// Each one is put in front of the list, so the last country comes first.
func WithZpoints(carriers []Carrier) []Option {
	out := make([]Option, 0, len(carriers)+len(zpointCountries))
	for i := len(zpointCountries) - 1; i >= 0; i-- {
		out = append(out, zpointOption(zpointCountries[i]))
	}
	for i := range carriers {
		out = append(out, carriers[i].Option())
	}
	return out
}

// WithCountryZpoint prepends the internal carrier of country, when there is one
func WithCountryZpoint(country string, carriers []Carrier) []Option {
	country = strings.ToLower(country)
	out := make([]Option, 0, len(carriers)+1)
	if z, ok := ZpointCarriers()[country]; ok {
		out = append(out, z)
	}
	for i := range carriers {
		out = append(out, carriers[i].Option())
	}
	return out
}
