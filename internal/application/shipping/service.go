// Package shipping prices the Packeta shipping method offered in checkout.
package shipping

import (
	"context"
	"strings"

	"github.com/packetery/backend/internal/domain/carrier"
	"github.com/packetery/backend/internal/domain/settings"
	"github.com/packetery/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RatesRequest describes the cart being priced
type RatesRequest struct {
	Country   string          `json:"country" binding:"required,country_code"`
	Weight    float64         `json:"weight" binding:"gte=0"`
	CartTotal decimal.Decimal `json:"cart_total"`
	COD       bool            `json:"cod"`
}

// Rate is one selectable shipping option
type Rate struct {
	CarrierID      string          `json:"carrier_id"`
	Name           string          `json:"name"`
	IsPickupPoints bool            `json:"is_pickup_points"`
	Price          decimal.Decimal `json:"price"`
}

// OptionsSource loads the stored plugin options
type OptionsSource interface {
	Options(ctx context.Context) (*settings.Options, error)
}

// RateService calculates checkout rates from the carrier catalog
type RateService struct {
	carriers carrier.Repository
	options  OptionsSource
	logger   *zap.Logger
}

// NewRateService creates a new RateService
func NewRateService(carriers carrier.Repository, options OptionsSource, logger *zap.Logger) *RateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateService{carriers: carriers, options: options, logger: logger}
}

// CalculateRates lists a rate per carrier that can ship the cart to country,
// the Packeta pickup point carrier first
func (s *RateService) CalculateRates(ctx context.Context, req RatesRequest) ([]Rate, error) {
	country := strings.ToLower(strings.TrimSpace(req.Country))
	if len(country) != 2 {
		return nil, shared.NewDomainError("INVALID_COUNTRY", "Country must be a two letter code")
	}
	if req.CartTotal.IsNegative() || req.Weight < 0 {
		return nil, shared.NewDomainError("INVALID_CART", "Cart total and weight cannot be negative")
	}

	opts, err := s.options.Options(ctx)
	if err != nil {
		return nil, err
	}
	carriers, err := s.carriers.FindByCountry(ctx, country)
	if err != nil {
		return nil, err
	}

	price := priceFor(opts, req)
	rates := make([]Rate, 0, len(carriers)+1)
	if z, ok := carrier.ZpointCarriers()[country]; ok {
		rates = append(rates, Rate{CarrierID: z.ID, Name: z.Name, IsPickupPoints: true, Price: price})
	}
	for i := range carriers {
		c := &carriers[i]
		if c.Deleted || !c.AcceptsWeight(req.Weight) || (req.COD && c.DisallowsCOD) {
			continue
		}
		opt := c.Option()
		rates = append(rates, Rate{CarrierID: opt.ID, Name: opt.Name, IsPickupPoints: opt.IsPickupPoints, Price: price})
	}

	s.logger.Debug("Shipping rates calculated",
		zap.String("country", country),
		zap.Int("rates", len(rates)),
		zap.String("price", price.String()),
	)
	return rates, nil
}

func priceFor(opts *settings.Options, req RatesRequest) decimal.Decimal {
	price := opts.DefaultPrice
	if opts.FreeShippingLimit.IsPositive() && req.CartTotal.GreaterThanOrEqual(opts.FreeShippingLimit) {
		price = decimal.Zero
	}
	if req.COD {
		price = price.Add(opts.CODSurcharge)
	}
	return price
}
