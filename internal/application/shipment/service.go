// Package shipment handles the Packeta meta of orders: checkout pickup
// points, packet submission and the handover sheet.
package shipment

import (
	"context"
	"errors"
	"strings"

	domain "github.com/packetery/backend/internal/domain/shipment"
	"github.com/packetery/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PickupPointSupport answers whether a carrier delivers to pickup points
type PickupPointSupport interface {
	HasPickupPoints(ctx context.Context, carrierID string) (bool, error)
}

// ShipmentService reads and writes order shipment meta
type ShipmentService struct {
	repo     domain.Repository
	carriers PickupPointSupport
	logger   *zap.Logger
}

// NewShipmentService creates a new ShipmentService
func NewShipmentService(repo domain.Repository, carriers PickupPointSupport, logger *zap.Logger) *ShipmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShipmentService{repo: repo, carriers: carriers, logger: logger}
}

// Get returns the shipment meta of one order
func (s *ShipmentService) Get(ctx context.Context, orderID int64) (*ShipmentResponse, error) {
	sh, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToShipmentResponse(sh)
	return &resp, nil
}

// Upsert stores the order data sent by the storefront. Packet id, label
// state and carrier number are kept from the stored meta.
func (s *ShipmentService) Upsert(ctx context.Context, orderID int64, req UpsertShipmentRequest) (*ShipmentResponse, error) {
	if err := validateAmounts(req); err != nil {
		return nil, err
	}
	carrierID := strings.TrimSpace(req.CarrierID)

	sh, err := s.repo.FindByOrderID(ctx, orderID)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		sh, err = domain.New(orderID, carrierID)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	case sh.CarrierID != carrierID:
		if sh.IsSubmitted() {
			return nil, shared.NewDomainError("INVALID_STATE", "Carrier cannot change after the packet was submitted")
		}
		// validates the new carrier id
		fresh, err := domain.New(orderID, carrierID)
		if err != nil {
			return nil, err
		}
		sh.CarrierID = fresh.CarrierID
		sh.Point = domain.PickupPoint{}
	}

	sh.OrderNumber = req.OrderNumber
	sh.Recipient = req.Recipient.toDomain()
	sh.Recipient.Country = strings.ToUpper(sh.Recipient.Country)
	sh.Weight = req.Weight
	if req.Size != nil {
		sh.Size = domain.Size{Length: req.Size.Length, Width: req.Size.Width, Height: req.Size.Height}
	}
	sh.Value = req.Value
	sh.COD = req.COD
	sh.Currency = strings.ToUpper(req.Currency)

	if req.Point != nil {
		if err := s.selectPoint(ctx, sh, req.Point.toDomain()); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, sh); err != nil {
		return nil, err
	}
	s.logger.Info("Order shipment saved",
		zap.Int64("order_id", orderID),
		zap.String("carrier_id", sh.CarrierID),
	)
	resp := ToShipmentResponse(sh)
	return &resp, nil
}

// SelectPickupPoint stores the point picked in checkout
func (s *ShipmentService) SelectPickupPoint(ctx context.Context, orderID int64, point PickupPointDTO) (*ShipmentResponse, error) {
	sh, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.selectPoint(ctx, sh, point.toDomain()); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, sh); err != nil {
		return nil, err
	}
	s.logger.Info("Pickup point selected",
		zap.Int64("order_id", orderID),
		zap.String("point_id", sh.Point.ID),
	)
	resp := ToShipmentResponse(sh)
	return &resp, nil
}

func (s *ShipmentService) selectPoint(ctx context.Context, sh *domain.Shipment, point domain.PickupPoint) error {
	ok, err := s.carriers.HasPickupPoints(ctx, sh.CarrierID)
	if err != nil {
		return err
	}
	if !ok {
		return shared.NewDomainError("PICKUP_POINTS_NOT_SUPPORTED", "Carrier "+sh.CarrierID+" does not deliver to pickup points")
	}
	return sh.SelectPickupPoint(point)
}

// OrderListColumns returns the Packeta columns for a page of the order list.
// Orders without meta are left out.
func (s *ShipmentService) OrderListColumns(ctx context.Context, orderIDs []int64) ([]OrderColumns, error) {
	if len(orderIDs) == 0 {
		return []OrderColumns{}, nil
	}
	shipments, err := s.repo.FindByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	cols := make([]OrderColumns, len(shipments))
	for i := range shipments {
		cols[i] = ToOrderColumns(&shipments[i])
	}
	return cols, nil
}

func validateAmounts(req UpsertShipmentRequest) error {
	var verr shared.ValidationError
	if req.Value.IsNegative() {
		verr.Add("value", "Order value cannot be negative")
	}
	if req.COD.IsNegative() {
		verr.Add("cod", "Cash on delivery cannot be negative")
	}
	if req.Weight < 0 {
		verr.Add("weight", "Weight cannot be negative")
	}
	return verr.OrNil()
}
