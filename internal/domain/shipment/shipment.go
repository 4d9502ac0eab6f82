package shipment

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/packetery/backend/internal/domain/carrier"
	"github.com/packetery/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TrackingURL is the public Packeta tracking page
const TrackingURL = "https://tracking.packeta.com/?id=%s"

// pointIDCountries show the point id next to its name in the order list
var pointIDCountries = map[string]bool{"CZ": true, "SK": true, "HU": true, "RO": true}

// PickupPoint is the point a customer chose in checkout
type PickupPoint struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
	Street string `json:"street"`
	URL    string `json:"url"`
	// CarrierPointID is set for external carriers with their own point network
	CarrierPointID string `json:"carrier_point_id"`
}

// Recipient is the shipping address of the order
type Recipient struct {
	Name        string
	Surname     string
	Company     string
	Email       string
	Phone       string
	Street      string
	HouseNumber string
	City        string
	Zip         string
	Country     string // ISO-2 uppercase, as WooCommerce stores it
}

// Size is the parcel size in millimetres
type Size struct {
	Length int
	Width  int
	Height int
}

// IsZero reports whether no dimension is known
func (s Size) IsZero() bool {
	return s.Length == 0 && s.Width == 0 && s.Height == 0
}

// IsComplete reports whether every dimension is known
func (s Size) IsComplete() bool {
	return s.Length > 0 && s.Width > 0 && s.Height > 0
}

// Shipment is the Packeta meta of one order
type Shipment struct {
	OrderID        int64
	OrderNumber    string
	CarrierID      string
	Point          PickupPoint
	Recipient      Recipient
	PacketID       string
	IsLabelPrinted bool
	CarrierNumber  string
	Weight         float64
	Size           Size
	Value          decimal.Decimal
	COD            decimal.Decimal
	Currency       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// New creates the meta for an order shipped with carrierID
func New(orderID int64, carrierID string) (*Shipment, error) {
	if orderID <= 0 {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order id must be positive")
	}
	carrierID = strings.TrimSpace(carrierID)
	if carrierID == "" {
		return nil, shared.NewDomainError("INVALID_CARRIER", "Carrier id is required")
	}
	if !carrier.IsZpointID(carrierID) && carrierID != carrier.InternalPickupPointsID {
		if _, ok := carrier.ParseID(carrierID); !ok {
			return nil, shared.NewDomainError("INVALID_CARRIER", "Unknown carrier id "+carrierID)
		}
	}
	now := time.Now()
	return &Shipment{
		OrderID:   orderID,
		CarrierID: carrierID,
		Value:     decimal.Zero,
		COD:       decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsSubmitted reports whether a packet was created for the order
func (s *Shipment) IsSubmitted() bool {
	return s.PacketID != ""
}

// IsExternalCarrier is true for numeric carrier ids. Zpoint carriers
// belong to Packeta and get Packeta labels only.
func (s *Shipment) IsExternalCarrier() bool {
	_, ok := carrier.ParseID(s.CarrierID)
	return ok
}

// IsPacketaPickupPoint is true when the parcel goes to Packeta's own network
func (s *Shipment) IsPacketaPickupPoint() bool {
	return carrier.IsZpointID(s.CarrierID) || s.CarrierID == carrier.InternalPickupPointsID
}

// HasCOD reports whether cash on delivery is collected
func (s *Shipment) HasCOD() bool {
	return s.COD.IsPositive()
}

// SelectPickupPoint stores the checkout choice
func (s *Shipment) SelectPickupPoint(p PickupPoint) error {
	if strings.TrimSpace(p.ID) == "" {
		return shared.NewDomainError("INVALID_PICKUP_POINT", "Pickup point id is required")
	}
	if s.IsSubmitted() {
		return shared.NewDomainError("INVALID_STATE", "Pickup point cannot change after the packet was submitted")
	}
	s.Point = p
	s.UpdatedAt = time.Now()
	return nil
}

// MarkSubmitted records the packet created by the API
func (s *Shipment) MarkSubmitted(packetID string) error {
	if packetID == "" {
		return shared.NewDomainError("INVALID_PACKET", "Packet id cannot be empty")
	}
	s.PacketID = packetID
	s.UpdatedAt = time.Now()
	return nil
}

// MarkLabelPrinted sets the printed flag, and the courier number for carrier labels
func (s *Shipment) MarkLabelPrinted(carrierNumber string) {
	s.IsLabelPrinted = true
	if carrierNumber != "" {
		s.CarrierNumber = carrierNumber
	}
	s.UpdatedAt = time.Now()
}

// AddressID is the Packeta addressId of the packet: the pickup point
// for Packeta points, the carrier itself otherwise.
func (s *Shipment) AddressID() string {
	if s.IsPacketaPickupPoint() {
		return s.Point.ID
	}
	return s.CarrierID
}

// TrackingURL links the packet to the public tracking page
func (s *Shipment) TrackingURL() string {
	if s.PacketID == "" {
		return ""
	}
	return TrackingURLFor(s.PacketID)
}

// TrackingURLFor builds the tracking link of a packet id. Spaces are
// encoded as %20, the way the storefront links them.
func TrackingURLFor(packetID string) string {
	return fmt.Sprintf(TrackingURL, strings.ReplaceAll(url.QueryEscape(packetID), "+", "%20"))
}

// Destination is the text of the "Pick up point or carrier" order list column
func (s *Shipment) Destination() string {
	name, id := s.Point.Name, s.Point.ID
	if name != "" && id != "" && pointIDCountries[strings.ToUpper(s.Recipient.Country)] {
		return name + " (" + id + ")"
	}
	return name
}

// Repository persists order meta
type Repository interface {
	// FindByOrderID returns shared.ErrNotFound for orders without meta
	FindByOrderID(ctx context.Context, orderID int64) (*Shipment, error)

	// FindByOrderIDs skips unknown ids and keeps the requested order
	FindByOrderIDs(ctx context.Context, orderIDs []int64) ([]Shipment, error)

	// Save inserts or replaces the meta of one order
	Save(ctx context.Context, s *Shipment) error
}
