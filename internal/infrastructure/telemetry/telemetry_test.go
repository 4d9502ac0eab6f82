package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestTracer installs an in-memory span recorder as the global provider
func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func TestNewTracerProvider_Disabled(t *testing.T) {
	tp, err := NewTracerProvider(context.Background(), Config{Enabled: false}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, tp.IsEnabled())
	assert.NotNil(t, tp.Tracer("test"))
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestSamplerFor(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), samplerFor(1.0).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), samplerFor(0).Description())
	assert.Contains(t, samplerFor(0.25).Description(), "TraceIDRatioBased")
}

func TestNewMeterProvider_Disabled(t *testing.T) {
	mp, err := NewMeterProvider(context.Background(), MetricsConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)

	assert.False(t, mp.IsEnabled())
	assert.NotNil(t, mp.Meter("test"))
	assert.NoError(t, mp.Shutdown(context.Background()))
}

func TestStartServiceSpan(t *testing.T) {
	sr := setupTestTracer(t)

	ctx, span := StartServiceSpan(context.Background(), "labelprint", "print",
		SpanAttrOrderCount, 3,
		SpanAttrLabelFormat, "A6 on A4",
	)
	assert.NotEmpty(t, GetTraceID(ctx))
	SetAttributes(span, SpanAttrPacketCount, int64(2), 42, "ignored")
	AddEvent(span, "selection_loaded", SpanAttrUserID, "7")
	RecordError(span, errors.New("fault"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	s := spans[0]
	assert.Equal(t, "labelprint.print", s.Name())
	assert.Equal(t, codes.Error, s.Status().Code)
	assert.Len(t, s.Events(), 2) // custom event and the recorded exception

	attrs := map[string]string{}
	for _, kv := range s.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "3", attrs[SpanAttrOrderCount])
	assert.Equal(t, "A6 on A4", attrs[SpanAttrLabelFormat])
	assert.Equal(t, "2", attrs[SpanAttrPacketCount])
}

func TestGetTraceID_NoSpan(t *testing.T) {
	assert.Equal(t, "", GetTraceID(context.Background()))
}

func TestNewShippingMetrics_NilMeter(t *testing.T) {
	m, err := NewShippingMetrics(nil)
	assert.ErrorIs(t, err, ErrMeterNil)
	assert.Nil(t, m)
}

func TestShippingMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := NewShippingMetrics(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordPacketSubmitted(ctx, true)
	m.RecordPacketSubmitted(ctx, true)
	m.RecordPacketSubmitted(ctx, false)
	m.RecordLabelsPrinted(ctx, 4, "A6 on A4", false)
	m.RecordLabelsPrinted(ctx, 0, "A6 on A4", true)
	m.RecordCarriersSynced(ctx, 2, 5)
	m.RecordAPICall(ctx, "createPacket", 120*time.Millisecond, "")
	m.RecordAPICall(ctx, "createPacket", 80*time.Millisecond, "PacketAttributesFault")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	sums := map[string]int64{}
	var histogramCount uint64
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			switch data := metric.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					sums[metric.Name] += dp.Value
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					histogramCount += dp.Count
				}
			}
		}
	}

	assert.Equal(t, int64(3), sums["packetery_packets_submitted_total"])
	assert.Equal(t, int64(4), sums["packetery_labels_printed_total"])
	assert.Equal(t, int64(7), sums["packetery_carriers_synced_total"])
	assert.Equal(t, uint64(2), histogramCount)
}

func TestShippingMetrics_NilSafe(t *testing.T) {
	var m *ShippingMetrics
	assert.NotPanics(t, func() {
		m.RecordPacketSubmitted(context.Background(), true)
		m.RecordLabelsPrinted(context.Background(), 1, "A6 on A6", false)
		m.RecordCarriersSynced(context.Background(), 1, 1)
		m.RecordAPICall(context.Background(), "createPacket", time.Second, "")
	})
}

type tracedRow struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestDBTracingPlugin(t *testing.T) {
	sr := setupTestTracer(t)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&tracedRow{}))

	cfg := DefaultDBTracingConfig()
	cfg.Enabled = true
	cfg.DBSystem = "sqlite"
	require.NoError(t, NewDBTracingPlugin(cfg, zaptest.NewLogger(t)).Register(db))

	ctx := context.Background()
	require.NoError(t, db.WithContext(ctx).Create(&tracedRow{Name: "a"}).Error)

	var row tracedRow
	err = db.WithContext(ctx).First(&row, 999).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.GreaterOrEqual(t, len(sr.Ended()), 2)
	for _, s := range sr.Ended() {
		assert.NotEqual(t, codes.Error, s.Status().Code, "record not found must not mark %s failed", s.Name())
	}
}

func TestDBTracingPlugin_Disabled(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	plugin := NewDBTracingPlugin(DBTracingConfig{}, zap.NewNop())
	assert.Equal(t, 200*time.Millisecond, plugin.config.SlowQueryThresh)
	assert.NoError(t, plugin.Register(db))
	assert.Nil(t, db.Callback().Query().Get("otel_timing:before_query"))
}
