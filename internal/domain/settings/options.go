package settings

import (
	"context"
	"regexp"
	"strings"

	"github.com/packetery/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Option keys in the key/value store
const (
	OptionsKey       = "packetery"
	CarrierUpdateKey = "packetery_carrier_update"
	apiKeyLength     = 16
)

var apiPasswordPattern = regexp.MustCompile(`^[a-z\d]{32}$`)

// Options are the store-wide Packeta settings
type Options struct {
	APIPassword        string          `json:"api_password"`
	Sender             string          `json:"sender"`
	PacketaLabelFormat LabelFormat     `json:"packeta_label_format"`
	CarrierLabelFormat LabelFormat     `json:"carrier_label_format"`
	AllowLabelEmailing bool            `json:"allow_label_emailing"`
	DefaultPrice       decimal.Decimal `json:"default_price"`
	FreeShippingLimit  decimal.Decimal `json:"free_shipping_limit"`
	CODSurcharge       decimal.Decimal `json:"cod_surcharge"`
}

// DefaultOptions are used before the admin saves the settings form
func DefaultOptions() *Options {
	return &Options{
		PacketaLabelFormat: DefaultLabelFormat,
		CarrierLabelFormat: DefaultLabelFormat,
		DefaultPrice:       decimal.Zero,
		FreeShippingLimit:  decimal.Zero,
		CODSurcharge:       decimal.Zero,
	}
}

// APIKey is the first 16 characters of the API password
func (o *Options) APIKey() string {
	if len(o.APIPassword) < apiKeyLength {
		return ""
	}
	return o.APIPassword[:apiKeyLength]
}

// HasAPIPassword reports whether the API can be called at all
func (o *Options) HasAPIPassword() bool {
	return o.APIPassword != ""
}

// LabelFormatFor returns the configured format for Packeta or carrier labels
func (o *Options) LabelFormatFor(carrierLabels bool) LabelFormat {
	if carrierLabels {
		if o.CarrierLabelFormat == "" {
			return DefaultLabelFormat
		}
		return o.CarrierLabelFormat
	}
	if o.PacketaLabelFormat == "" {
		return DefaultLabelFormat
	}
	return o.PacketaLabelFormat
}

// Normalize trims text fields and fills empty formats with the default
func (o *Options) Normalize() {
	o.APIPassword = strings.TrimSpace(o.APIPassword)
	o.Sender = strings.TrimSpace(o.Sender)
	if o.PacketaLabelFormat == "" {
		o.PacketaLabelFormat = DefaultLabelFormat
	}
	if o.CarrierLabelFormat == "" {
		o.CarrierLabelFormat = DefaultLabelFormat
	}
}

// Validate checks the options form and returns a *shared.ValidationError
func (o *Options) Validate() error {
	var verr shared.ValidationError
	if !apiPasswordPattern.MatchString(o.APIPassword) {
		verr.Add("api_password", "API password must be 32 characters long and must contain valid characters!")
	}
	if o.Sender == "" {
		verr.Add("sender", "Sender is required")
	}
	if !o.PacketaLabelFormat.IsPacketaFormat() {
		verr.Add("packeta_label_format", "Unknown Packeta label format")
	}
	if !o.CarrierLabelFormat.IsCarrierFormat() {
		verr.Add("carrier_label_format", "Unknown carrier label format")
	}
	if o.DefaultPrice.IsNegative() {
		verr.Add("default_price", "Price cannot be negative")
	}
	if o.FreeShippingLimit.IsNegative() {
		verr.Add("free_shipping_limit", "Free shipping limit cannot be negative")
	}
	if o.CODSurcharge.IsNegative() {
		verr.Add("cod_surcharge", "COD surcharge cannot be negative")
	}
	return verr.OrNil()
}

// Repository is the key/value option store
type Repository interface {
	// Get returns the raw value or shared.ErrNotFound
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces a value
	Set(ctx context.Context, key, value string) error
	// Delete removes a key, missing keys are not an error
	Delete(ctx context.Context, key string) error
}
