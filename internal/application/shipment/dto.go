package shipment

import (
	"time"

	domain "github.com/packetery/backend/internal/domain/shipment"
	"github.com/shopspring/decimal"
)

// RecipientDTO is the customer the packet is addressed to
type RecipientDTO struct {
	Name        string `json:"name" binding:"required,max=64"`
	Surname     string `json:"surname" binding:"required,max=64"`
	Company     string `json:"company" binding:"max=128"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"max=32"`
	Street      string `json:"street" binding:"max=128"`
	HouseNumber string `json:"house_number" binding:"max=16"`
	City        string `json:"city" binding:"max=64"`
	Zip         string `json:"zip" binding:"max=16"`
	Country     string `json:"country" binding:"omitempty,country_code"`
}

// SizeDTO is the parcel size in millimetres
type SizeDTO struct {
	Length int `json:"length" binding:"gte=0"`
	Width  int `json:"width" binding:"gte=0"`
	Height int `json:"height" binding:"gte=0"`
}

// PickupPointDTO is a point picked in the checkout widget
type PickupPointDTO struct {
	ID             string `json:"id" binding:"required,max=32"`
	Name           string `json:"name" binding:"max=128"`
	City           string `json:"city" binding:"max=64"`
	Zip            string `json:"zip" binding:"max=16"`
	Street         string `json:"street" binding:"max=128"`
	URL            string `json:"url" binding:"omitempty,url"`
	CarrierPointID string `json:"carrier_point_id" binding:"max=64"`
}

// UpsertShipmentRequest is the order data pushed by the storefront
type UpsertShipmentRequest struct {
	OrderNumber string          `json:"order_number" binding:"max=64"`
	CarrierID   string          `json:"carrier_id" binding:"required,max=32"`
	Recipient   RecipientDTO    `json:"recipient" binding:"required"`
	Weight      float64         `json:"weight" binding:"gte=0"`
	Size        *SizeDTO        `json:"size"`
	Value       decimal.Decimal `json:"value"`
	COD         decimal.Decimal `json:"cod"`
	Currency    string          `json:"currency" binding:"required,len=3"`
	Point       *PickupPointDTO `json:"point"`
}

// SubmitRequest lists the orders to send to Packeta
type SubmitRequest struct {
	OrderIDs []int64 `json:"order_ids" binding:"required,min=1,max=100,dive,min=1"`
}

// HandoverRequest lists the orders printed on a handover sheet
type HandoverRequest struct {
	OrderIDs []int64 `json:"order_ids" binding:"required,min=1,max=500,dive,min=1"`
}

// ShipmentResponse is the Packeta meta of one order
type ShipmentResponse struct {
	OrderID        int64           `json:"order_id"`
	OrderNumber    string          `json:"order_number"`
	CarrierID      string          `json:"carrier_id"`
	Point          PickupPointDTO  `json:"point"`
	Recipient      RecipientDTO    `json:"recipient"`
	PacketID       string          `json:"packet_id,omitempty"`
	TrackingURL    string          `json:"tracking_url,omitempty"`
	IsLabelPrinted bool            `json:"is_label_printed"`
	CarrierNumber  string          `json:"carrier_number,omitempty"`
	Weight         float64         `json:"weight"`
	Size           SizeDTO         `json:"size"`
	Value          decimal.Decimal `json:"value"`
	COD            decimal.Decimal `json:"cod"`
	Currency       string          `json:"currency"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PacketIDColumn is the packet barcode linked to the tracking page
type PacketIDColumn struct {
	PacketID    string `json:"packet_id"`
	TrackingURL string `json:"tracking_url"`
}

// OrderColumns are the Packeta columns of one row in the order list
type OrderColumns struct {
	OrderID     int64           `json:"order_id"`
	PacketID    *PacketIDColumn `json:"packetery_packet_id"`
	Destination string          `json:"packetery_destination"`
}

// SubmittedPacket is an order that got a packet id
type SubmittedPacket struct {
	OrderID     int64  `json:"order_id"`
	PacketID    string `json:"packet_id"`
	TrackingURL string `json:"tracking_url"`
}

// OrderMessage explains why an order was skipped or failed
type OrderMessage struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

// SubmitResult is the outcome of one submission run
type SubmitResult struct {
	Submitted []SubmittedPacket `json:"submitted"`
	Skipped   []OrderMessage    `json:"skipped"`
	Failed    []OrderMessage    `json:"failed"`
}

// HandoverDocument is a rendered handover sheet
type HandoverDocument struct {
	FileName    string
	PDF         []byte
	PacketCount int
	// ArchiveURL is a download link of the archived copy, empty when storage is disabled
	ArchiveURL  string
}

// ToShipmentResponse converts a domain shipment to a response
func ToShipmentResponse(s *domain.Shipment) ShipmentResponse {
	return ShipmentResponse{
		OrderID:     s.OrderID,
		OrderNumber: s.OrderNumber,
		CarrierID:   s.CarrierID,
		Point: PickupPointDTO{
			ID:             s.Point.ID,
			Name:           s.Point.Name,
			City:           s.Point.City,
			Zip:            s.Point.Zip,
			Street:         s.Point.Street,
			URL:            s.Point.URL,
			CarrierPointID: s.Point.CarrierPointID,
		},
		Recipient: RecipientDTO{
			Name:        s.Recipient.Name,
			Surname:     s.Recipient.Surname,
			Company:     s.Recipient.Company,
			Email:       s.Recipient.Email,
			Phone:       s.Recipient.Phone,
			Street:      s.Recipient.Street,
			HouseNumber: s.Recipient.HouseNumber,
			City:        s.Recipient.City,
			Zip:         s.Recipient.Zip,
			Country:     s.Recipient.Country,
		},
		PacketID:       s.PacketID,
		TrackingURL:    s.TrackingURL(),
		IsLabelPrinted: s.IsLabelPrinted,
		CarrierNumber:  s.CarrierNumber,
		Weight:         s.Weight,
		Size:           SizeDTO{Length: s.Size.Length, Width: s.Size.Width, Height: s.Size.Height},
		Value:          s.Value,
		COD:            s.COD,
		Currency:       s.Currency,
		UpdatedAt:      s.UpdatedAt,
	}
}

// ToOrderColumns builds the order list columns of a shipment
func ToOrderColumns(s *domain.Shipment) OrderColumns {
	cols := OrderColumns{OrderID: s.OrderID, Destination: s.Destination()}
	if s.IsSubmitted() {
		cols.PacketID = &PacketIDColumn{PacketID: s.PacketID, TrackingURL: s.TrackingURL()}
	}
	return cols
}

func (p PickupPointDTO) toDomain() domain.PickupPoint {
	return domain.PickupPoint{
		ID:             p.ID,
		Name:           p.Name,
		City:           p.City,
		Zip:            p.Zip,
		Street:         p.Street,
		URL:            p.URL,
		CarrierPointID: p.CarrierPointID,
	}
}

func (r RecipientDTO) toDomain() domain.Recipient {
	return domain.Recipient{
		Name:        r.Name,
		Surname:     r.Surname,
		Company:     r.Company,
		Email:       r.Email,
		Phone:       r.Phone,
		Street:      r.Street,
		HouseNumber: r.HouseNumber,
		City:        r.City,
		Zip:         r.Zip,
		Country:     r.Country,
	}
}
