package shipment

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// HandoverRow is one submitted packet on the handover sheet
type HandoverRow struct {
	PacketID    string
	OrderNumber string
	Recipient   string
	Destination string
	CarrierName string
	COD         decimal.Decimal
	Currency    string
}

// HandoverSheet lists the packets handed to the courier in one batch
type HandoverSheet struct {
	Sender      string
	GeneratedAt time.Time
	Rows        []HandoverRow
}

// CODTotal is the cash on delivery sum of one currency
type CODTotal struct {
	Currency string
	Amount   decimal.Decimal
}

// CODTotals sums cash on delivery per currency, sorted by currency code
func (h *HandoverSheet) CODTotals() []CODTotal {
	sums := make(map[string]decimal.Decimal)
	for _, row := range h.Rows {
		if !row.COD.IsPositive() {
			continue
		}
		sums[row.Currency] = sums[row.Currency].Add(row.COD)
	}
	totals := make([]CODTotal, 0, len(sums))
	for currency, amount := range sums {
		totals = append(totals, CODTotal{Currency: currency, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Currency < totals[j].Currency })
	return totals
}

// HandoverRow builds the sheet row of a submitted shipment
func (s *Shipment) HandoverRow(carrierName string) HandoverRow {
	recipient := s.Recipient.Name
	if s.Recipient.Surname != "" {
		recipient += " " + s.Recipient.Surname
	}
	destination := s.Destination()
	if destination == "" {
		destination = s.Recipient.City
	}
	return HandoverRow{
		PacketID:    s.PacketID,
		OrderNumber: s.OrderNumber,
		Recipient:   recipient,
		Destination: destination,
		CarrierName: carrierName,
		COD:         s.COD,
		Currency:    s.Currency,
	}
}

// SheetRenderer turns a handover sheet into a PDF document
type SheetRenderer interface {
	RenderHandoverSheet(ctx context.Context, sheet *HandoverSheet) ([]byte, error)
}
