package models

import (
	"github.com/packetery/backend/internal/domain/carrier"
)

// CarrierModel is the GORM model for the packetery_carrier table
type CarrierModel struct {
	ID                    int     `gorm:"primaryKey;autoIncrement:false"`
	Name                  string  `gorm:"type:varchar(255);not null"`
	IsPickupPoints        bool    `gorm:"column:is_pickup_points;not null"`
	HasCarrierDirectLabel bool    `gorm:"column:has_carrier_direct_label;not null"`
	SeparateHouseNumber   bool    `gorm:"column:separate_house_number;not null"`
	CustomsDeclarations   bool    `gorm:"column:customs_declarations;not null"`
	RequiresEmail         bool    `gorm:"column:requires_email;not null"`
	RequiresPhone         bool    `gorm:"column:requires_phone;not null"`
	RequiresSize          bool    `gorm:"column:requires_size;not null"`
	DisallowsCOD          bool    `gorm:"column:disallows_cod;not null"`
	Country               string  `gorm:"type:varchar(255);not null;index"`
	Currency              string  `gorm:"type:varchar(255);not null"`
	MaxWeight             float64 `gorm:"column:max_weight;not null"`
	Deleted               bool    `gorm:"not null;default:false"`
}

// TableName returns the table name for CarrierModel
func (CarrierModel) TableName() string {
	return "packetery_carrier"
}

// ToDomain converts CarrierModel to domain Carrier
func (m *CarrierModel) ToDomain() *carrier.Carrier {
	return &carrier.Carrier{
		ID:                    m.ID,
		Name:                  m.Name,
		IsPickupPoints:        m.IsPickupPoints,
		HasCarrierDirectLabel: m.HasCarrierDirectLabel,
		SeparateHouseNumber:   m.SeparateHouseNumber,
		CustomsDeclarations:   m.CustomsDeclarations,
		RequiresEmail:         m.RequiresEmail,
		RequiresPhone:         m.RequiresPhone,
		RequiresSize:          m.RequiresSize,
		DisallowsCOD:          m.DisallowsCOD,
		Country:               m.Country,
		Currency:              m.Currency,
		MaxWeight:             m.MaxWeight,
		Deleted:               m.Deleted,
	}
}

// FromDomain populates CarrierModel from domain Carrier
func (m *CarrierModel) FromDomain(c *carrier.Carrier) {
	m.ID = c.ID
	m.Name = c.Name
	m.IsPickupPoints = c.IsPickupPoints
	m.HasCarrierDirectLabel = c.HasCarrierDirectLabel
	m.SeparateHouseNumber = c.SeparateHouseNumber
	m.CustomsDeclarations = c.CustomsDeclarations
	m.RequiresEmail = c.RequiresEmail
	m.RequiresPhone = c.RequiresPhone
	m.RequiresSize = c.RequiresSize
	m.DisallowsCOD = c.DisallowsCOD
	m.Country = c.Country
	m.Currency = c.Currency
	m.MaxWeight = c.MaxWeight
	m.Deleted = c.Deleted
}

// CarrierModelFromDomain creates a new CarrierModel from domain Carrier
func CarrierModelFromDomain(c *carrier.Carrier) *CarrierModel {
	m := &CarrierModel{}
	m.FromDomain(c)
	return m
}
