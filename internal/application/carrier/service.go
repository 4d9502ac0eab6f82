// Package carrier serves the carrier catalog and keeps it in sync with the Packeta feed.
package carrier

import (
	"context"
	"strings"

	domain "github.com/packetery/backend/internal/domain/carrier"
	"github.com/packetery/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CarrierService answers catalog queries for checkout and the admin
type CarrierService struct {
	repo   domain.Repository
	logger *zap.Logger
}

// NewCarrierService creates a new CarrierService
func NewCarrierService(repo domain.Repository, logger *zap.Logger) *CarrierService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CarrierService{repo: repo, logger: logger}
}

// ListIncludingZpoints returns the internal pickup point carriers followed by active carriers
func (s *CarrierService) ListIncludingZpoints(ctx context.Context) ([]domain.Option, error) {
	carriers, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return domain.WithZpoints(carriers), nil
}

// ListByCountryIncludingZpoints returns the carriers of one country, its zpoint carrier first
func (s *CarrierService) ListByCountryIncludingZpoints(ctx context.Context, country string) ([]domain.Option, error) {
	country = strings.ToLower(strings.TrimSpace(country))
	if len(country) != 2 {
		return nil, shared.NewDomainError("INVALID_COUNTRY", "Country must be a two letter code")
	}
	carriers, err := s.repo.FindByCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	return domain.WithCountryZpoint(country, carriers), nil
}

// Countries returns the countries served by active carriers
func (s *CarrierService) Countries(ctx context.Context) ([]string, error) {
	return s.repo.Countries(ctx)
}

// Get returns one carrier from the catalog
func (s *CarrierService) Get(ctx context.Context, id int) (*CarrierResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCarrierResponse(c)
	return &resp, nil
}

// Find returns the domain carrier of a numeric id
func (s *CarrierService) Find(ctx context.Context, id int) (*domain.Carrier, error) {
	return s.repo.FindByID(ctx, id)
}

// HasPickupPoints reports whether a carrier delivers to pickup points.
// Zpoint carriers always do and are answered without a lookup.
func (s *CarrierService) HasPickupPoints(ctx context.Context, carrierID string) (bool, error) {
	if domain.IsZpointID(carrierID) || carrierID == domain.InternalPickupPointsID {
		return true, nil
	}
	id, ok := domain.ParseID(carrierID)
	if !ok {
		return false, nil
	}
	return s.repo.HasPickupPoints(ctx, id)
}
