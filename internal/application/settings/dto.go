package settings

import (
	domain "github.com/packetery/backend/internal/domain/settings"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest is the options form
type UpdateSettingsRequest struct {
	APIPassword        string           `json:"api_password" binding:"required"`
	Sender             string           `json:"sender" binding:"required"`
	PacketaLabelFormat string           `json:"packeta_label_format" binding:"omitempty,label_format"`
	CarrierLabelFormat string           `json:"carrier_label_format" binding:"omitempty,label_format"`
	AllowLabelEmailing bool             `json:"allow_label_emailing"`
	DefaultPrice       *decimal.Decimal `json:"default_price"`
	FreeShippingLimit  *decimal.Decimal `json:"free_shipping_limit"`
	CODSurcharge       *decimal.Decimal `json:"cod_surcharge"`
}

// SettingsResponse is the options page without the API password itself
type SettingsResponse struct {
	APIKey             string          `json:"api_key"`
	HasAPIPassword     bool            `json:"has_api_password"`
	Sender             string          `json:"sender"`
	PacketaLabelFormat string          `json:"packeta_label_format"`
	CarrierLabelFormat string          `json:"carrier_label_format"`
	AllowLabelEmailing bool            `json:"allow_label_emailing"`
	DefaultPrice       decimal.Decimal `json:"default_price"`
	FreeShippingLimit  decimal.Decimal `json:"free_shipping_limit"`
	CODSurcharge       decimal.Decimal `json:"cod_surcharge"`
}

// LabelFormatsResponse lists the formats the admin can pick
type LabelFormatsResponse struct {
	Packeta []domain.FormatInfo `json:"packeta"`
	Carrier []domain.FormatInfo `json:"carrier"`
}

// ToSettingsResponse converts options to a response
func ToSettingsResponse(o *domain.Options) SettingsResponse {
	return SettingsResponse{
		APIKey:             o.APIKey(),
		HasAPIPassword:     o.HasAPIPassword(),
		Sender:             o.Sender,
		PacketaLabelFormat: o.LabelFormatFor(false).String(),
		CarrierLabelFormat: o.LabelFormatFor(true).String(),
		AllowLabelEmailing: o.AllowLabelEmailing,
		DefaultPrice:       o.DefaultPrice,
		FreeShippingLimit:  o.FreeShippingLimit,
		CODSurcharge:       o.CODSurcharge,
	}
}
