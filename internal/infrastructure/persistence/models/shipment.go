package models

import (
	"time"

	"github.com/packetery/backend/internal/domain/shipment"
	"github.com/shopspring/decimal"
)

// ShipmentModel is the GORM model for the packetery_order_shipments table
type ShipmentModel struct {
	OrderID        int64           `gorm:"column:order_id;primaryKey;autoIncrement:false"`
	OrderNumber    string          `gorm:"column:order_number;type:varchar(64)"`
	CarrierID      string          `gorm:"column:carrier_id;type:varchar(32);not null;index"`
	PacketID       string          `gorm:"column:packet_id;type:varchar(32);index"`
	IsLabelPrinted bool            `gorm:"column:is_label_printed;not null;default:false"`
	CarrierNumber  string          `gorm:"column:carrier_number;type:varchar(64)"`
	PointID        string          `gorm:"column:point_id;type:varchar(64)"`
	PointName      string          `gorm:"column:point_name;type:varchar(255)"`
	PointCity      string          `gorm:"column:point_city;type:varchar(255)"`
	PointZip       string          `gorm:"column:point_zip;type:varchar(32)"`
	PointStreet    string          `gorm:"column:point_street;type:varchar(255)"`
	PointURL       string          `gorm:"column:point_url;type:varchar(512)"`
	CarrierPointID string          `gorm:"column:carrier_point_id;type:varchar(64)"`
	Name           string          `gorm:"column:recipient_name;type:varchar(255)"`
	Surname        string          `gorm:"column:recipient_surname;type:varchar(255)"`
	Company        string          `gorm:"column:recipient_company;type:varchar(255)"`
	Email          string          `gorm:"column:recipient_email;type:varchar(255)"`
	Phone          string          `gorm:"column:recipient_phone;type:varchar(64)"`
	Street         string          `gorm:"column:recipient_street;type:varchar(255)"`
	HouseNumber    string          `gorm:"column:recipient_house_number;type:varchar(32)"`
	City           string          `gorm:"column:recipient_city;type:varchar(255)"`
	Zip            string          `gorm:"column:recipient_zip;type:varchar(32)"`
	Country        string          `gorm:"column:recipient_country;type:varchar(2)"`
	Weight         float64         `gorm:"column:weight;not null;default:0"`
	Length         int             `gorm:"column:length;not null;default:0"`
	Width          int             `gorm:"column:width;not null;default:0"`
	Height         int             `gorm:"column:height;not null;default:0"`
	Value          decimal.Decimal `gorm:"column:value;type:decimal(18,4);not null;default:0"`
	COD            decimal.Decimal `gorm:"column:cod;type:decimal(18,4);not null;default:0"`
	Currency       string          `gorm:"column:currency;type:varchar(3)"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for ShipmentModel
func (ShipmentModel) TableName() string {
	return "packetery_order_shipments"
}

// ToDomain converts ShipmentModel to domain Shipment
func (m *ShipmentModel) ToDomain() *shipment.Shipment {
	return &shipment.Shipment{
		OrderID:     m.OrderID,
		OrderNumber: m.OrderNumber,
		CarrierID:   m.CarrierID,
		Point: shipment.PickupPoint{
			ID:             m.PointID,
			Name:           m.PointName,
			City:           m.PointCity,
			Zip:            m.PointZip,
			Street:         m.PointStreet,
			URL:            m.PointURL,
			CarrierPointID: m.CarrierPointID,
		},
		Recipient: shipment.Recipient{
			Name:        m.Name,
			Surname:     m.Surname,
			Company:     m.Company,
			Email:       m.Email,
			Phone:       m.Phone,
			Street:      m.Street,
			HouseNumber: m.HouseNumber,
			City:        m.City,
			Zip:         m.Zip,
			Country:     m.Country,
		},
		PacketID:       m.PacketID,
		IsLabelPrinted: m.IsLabelPrinted,
		CarrierNumber:  m.CarrierNumber,
		Weight:         m.Weight,
		Size:           shipment.Size{Length: m.Length, Width: m.Width, Height: m.Height},
		Value:          m.Value,
		COD:            m.COD,
		Currency:       m.Currency,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain populates ShipmentModel from domain Shipment
func (m *ShipmentModel) FromDomain(s *shipment.Shipment) {
	m.OrderID = s.OrderID
	m.OrderNumber = s.OrderNumber
	m.CarrierID = s.CarrierID
	m.PacketID = s.PacketID
	m.IsLabelPrinted = s.IsLabelPrinted
	m.CarrierNumber = s.CarrierNumber
	m.PointID = s.Point.ID
	m.PointName = s.Point.Name
	m.PointCity = s.Point.City
	m.PointZip = s.Point.Zip
	m.PointStreet = s.Point.Street
	m.PointURL = s.Point.URL
	m.CarrierPointID = s.Point.CarrierPointID
	m.Name = s.Recipient.Name
	m.Surname = s.Recipient.Surname
	m.Company = s.Recipient.Company
	m.Email = s.Recipient.Email
	m.Phone = s.Recipient.Phone
	m.Street = s.Recipient.Street
	m.HouseNumber = s.Recipient.HouseNumber
	m.City = s.Recipient.City
	m.Zip = s.Recipient.Zip
	m.Country = s.Recipient.Country
	m.Weight = s.Weight
	m.Length = s.Size.Length
	m.Width = s.Size.Width
	m.Height = s.Size.Height
	m.Value = s.Value
	m.COD = s.COD
	m.Currency = s.Currency
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

// ShipmentModelFromDomain creates a new ShipmentModel from domain Shipment
func ShipmentModelFromDomain(s *shipment.Shipment) *ShipmentModel {
	m := &ShipmentModel{}
	m.FromDomain(s)
	return m
}
