package integration

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrPacketaUnavailable = errors.New("integration: packeta api temporarily unavailable")
	ErrInvalidResponse    = errors.New("integration: invalid packeta response")
	ErrFeedUnavailable    = errors.New("integration: carrier feed unavailable")
	ErrInvalidFeed        = errors.New("integration: invalid carrier feed")
)

// Fault names returned by the Packeta SOAP API
const (
	FaultIncorrectAPIPassword = "IncorrectApiPasswordFault"
	FaultPacketAttributes     = "PacketAttributesFault"
	FaultPacketIDs            = "PacketIdsFault"
	FaultNoPacketIDs          = "NoPacketIdsFault"
	FaultInvalidCourierNumber = "InvalidCourierNumber"
)

// AttributeFault describes one rejected packet attribute
type AttributeFault struct {
	Name  string `json:"name"`
	Fault string `json:"fault"`
}

// Fault is a SOAP fault returned by the API. It is a business failure,
// not a transport one, and is never retried.
type Fault struct {
	Name       string
	String     string
	Attributes []AttributeFault
}

// Error implements error. Attribute faults are appended so the log
// shows which field the API rejected.
func (f *Fault) Error() string {
	if len(f.Attributes) == 0 {
		return f.String
	}
	parts := make([]string, 0, len(f.Attributes))
	for _, a := range f.Attributes {
		parts = append(parts, a.Name+": "+a.Fault)
	}
	return f.String + " (" + strings.Join(parts, ", ") + ")"
}

// IsWrongPassword reports an incorrect API password fault
func (f *Fault) IsWrongPassword() bool {
	return f.Name == FaultIncorrectAPIPassword
}

// AsFault unwraps a SOAP fault from err
func AsFault(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// PacketSize is the parcel size in millimetres
type PacketSize struct {
	Length int
	Width  int
	Height int
}

// PacketAttributes is the createPacket request. Empty fields are not sent.
type PacketAttributes struct {
	Number             string
	Name               string
	Surname            string
	Company            string
	Email              string
	Phone              string
	AddressID          string
	Value              decimal.Decimal
	COD                decimal.Decimal
	Currency           string
	Weight             float64
	Eshop              string
	Street             string
	HouseNumber        string
	City               string
	Zip                string
	CarrierPickupPoint string
	Size               *PacketSize
}

// CreatedPacket is the createPacket result
type CreatedPacket struct {
	ID          string
	Barcode     string
	BarcodeText string
}

// PacketCourierPair links a packet to the tracking number of its carrier
type PacketCourierPair struct {
	PacketID      string
	CourierNumber string
}

// PacketaAPI is the port to the Packeta SOAP API
type PacketaAPI interface {
	CreatePacket(ctx context.Context, attrs PacketAttributes) (*CreatedPacket, error)
	PacketsLabelsPdf(ctx context.Context, packetIDs []string, format string, offset int) ([]byte, error)
	PacketCourierNumber(ctx context.Context, packetID string) (string, error)
	PacketsCourierLabelsPdf(ctx context.Context, pairs []PacketCourierPair, format string, offset int) ([]byte, error)
}

// CredentialsProvider supplies the API password saved in the settings
type CredentialsProvider interface {
	APIPassword(ctx context.Context) (string, error)
}
