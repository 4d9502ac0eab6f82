package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when a metrics set is created without a meter.
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// Status attribute values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ShippingMetrics counts Packeta operations: packets submitted, labels
// printed, carriers synced and the latency of SOAP calls.
type ShippingMetrics struct {
	packetsSubmitted *Counter
	labelsPrinted    *Counter
	carriersSynced   *Counter
	apiDuration      *Histogram
}

// NewShippingMetrics registers the shipping instruments on meter.
func NewShippingMetrics(meter metric.Meter) (*ShippingMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	var (
		m   ShippingMetrics
		err error
	)
	m.packetsSubmitted, err = NewCounter(meter,
		"packetery_packets_submitted_total",
		"Number of createPacket calls by outcome",
		"{packets}",
	)
	if err != nil {
		return nil, err
	}
	m.labelsPrinted, err = NewCounter(meter,
		"packetery_labels_printed_total",
		"Number of packets whose label was printed",
		"{labels}",
	)
	if err != nil {
		return nil, err
	}
	m.carriersSynced, err = NewCounter(meter,
		"packetery_carriers_synced_total",
		"Number of carriers written by the carrier list sync",
		"{carriers}",
	)
	if err != nil {
		return nil, err
	}
	m.apiDuration, err = NewHistogram(meter, HistogramOpts{
		Name:        "packetery_packeta_api_duration_seconds",
		Description: "Duration of Packeta SOAP calls",
		Unit:        "s",
		Boundaries:  APIDurationBuckets,
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// RecordPacketSubmitted counts one createPacket outcome.
func (m *ShippingMetrics) RecordPacketSubmitted(ctx context.Context, success bool) {
	if m == nil {
		return
	}
	m.packetsSubmitted.Inc(ctx, AttrStatus.String(statusOf(success)))
}

// RecordLabelsPrinted counts printed labels of one print run.
func (m *ShippingMetrics) RecordLabelsPrinted(ctx context.Context, count int, format string, carrierLabels bool) {
	if m == nil || count <= 0 {
		return
	}
	kind := "packeta"
	if carrierLabels {
		kind = "carrier"
	}
	m.labelsPrinted.Add(ctx, int64(count), AttrLabelFormat.String(format), AttrLabelKind.String(kind))
}

// RecordCarriersSynced counts inserted and updated carriers of one sync.
func (m *ShippingMetrics) RecordCarriersSynced(ctx context.Context, inserted, updated int) {
	if m == nil {
		return
	}
	if inserted > 0 {
		m.carriersSynced.Add(ctx, int64(inserted), attribute.String("change", "inserted"))
	}
	if updated > 0 {
		m.carriersSynced.Add(ctx, int64(updated), attribute.String("change", "updated"))
	}
}

// RecordAPICall records the latency of one SOAP operation.
func (m *ShippingMetrics) RecordAPICall(ctx context.Context, operation string, d time.Duration, fault string) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{AttrOperation.String(operation), AttrStatus.String(statusOf(fault == ""))}
	if fault != "" {
		attrs = append(attrs, AttrFaultName.String(fault))
	}
	m.apiDuration.RecordDuration(ctx, d, attrs...)
}

func statusOf(success bool) string {
	if success {
		return StatusSuccess
	}
	return StatusError
}
