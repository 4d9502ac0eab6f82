package carrier

import "context"

// Repository defines persistence for the carrier catalog
type Repository interface {
	// IDs returns the ids of all stored carriers, deleted included
	IDs(ctx context.Context) ([]int, error)

	// FindActive returns carriers that are not deleted
	FindActive(ctx context.Context) ([]Carrier, error)

	// FindByID returns shared.ErrNotFound for unknown ids
	FindByID(ctx context.Context, id int) (*Carrier, error)

	// HasPickupPoints is false for unknown ids
	HasPickupPoints(ctx context.Context, id int) (bool, error)

	// FindByCountry returns active carriers of a lowercase country code
	FindByCountry(ctx context.Context, country string) ([]Carrier, error)

	// Countries returns distinct countries of active carriers in ascending order
	Countries(ctx context.Context) ([]string, error)

	Insert(ctx context.Context, c *Carrier) error
	Update(ctx context.Context, c *Carrier) error

	// MarkOthersDeleted flags every carrier whose id is not in idsInFeed
	MarkOthersDeleted(ctx context.Context, idsInFeed []int) (int64, error)
}

// Feed downloads the current carrier list from Packeta
type Feed interface {
	Fetch(ctx context.Context, apiKey string) ([]Carrier, error)
}
