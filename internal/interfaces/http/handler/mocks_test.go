package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/packetery/backend/internal/application/carrier"
	"github.com/packetery/backend/internal/application/flash"
	"github.com/packetery/backend/internal/application/labelprint"
	"github.com/packetery/backend/internal/application/packetlog"
	"github.com/packetery/backend/internal/application/settings"
	"github.com/packetery/backend/internal/application/shipment"
	"github.com/packetery/backend/internal/application/shipping"
	domaincarrier "github.com/packetery/backend/internal/domain/carrier"
	"github.com/packetery/backend/internal/domain/shared"
	"github.com/packetery/backend/internal/interfaces/http/dto"
	"github.com/packetery/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

const testUserID = "7"

// newTestEngine returns an engine that stamps a request id and, when userID
// is set, the authenticated user the JWT middleware would set
func newTestEngine(userID string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.RequestIDKey, "req-1")
		if userID != "" {
			c.Set(middleware.JWTUserIDKey, userID)
		}
		c.Next()
	})
	return r
}

func performRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeResponse unmarshals the envelope, decoding Data into data when given
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder, data any) dto.Response {
	t.Helper()
	var raw struct {
		dto.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return raw.Response
}

type MockSettingsUseCase struct {
	mock.Mock
}

func (m *MockSettingsUseCase) Get(ctx context.Context) (*settings.SettingsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.SettingsResponse), args.Error(1)
}

func (m *MockSettingsUseCase) Update(ctx context.Context, req settings.UpdateSettingsRequest) (*settings.SettingsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.SettingsResponse), args.Error(1)
}

func (m *MockSettingsUseCase) LabelFormats() settings.LabelFormatsResponse {
	return m.Called().Get(0).(settings.LabelFormatsResponse)
}

type MockCarrierQueries struct {
	mock.Mock
}

func (m *MockCarrierQueries) ListIncludingZpoints(ctx context.Context) ([]domaincarrier.Option, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domaincarrier.Option), args.Error(1)
}

func (m *MockCarrierQueries) ListByCountryIncludingZpoints(ctx context.Context, country string) ([]domaincarrier.Option, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domaincarrier.Option), args.Error(1)
}

func (m *MockCarrierQueries) Countries(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCarrierQueries) Get(ctx context.Context, id int) (*carrier.CarrierResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.CarrierResponse), args.Error(1)
}

type MockCarrierSync struct {
	mock.Mock
}

func (m *MockCarrierSync) Run(ctx context.Context) (*carrier.SyncResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.SyncResult), args.Error(1)
}

func (m *MockCarrierSync) LastUpdate(ctx context.Context) (*carrier.SyncStatusResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.SyncStatusResponse), args.Error(1)
}

type MockShipmentUseCase struct {
	mock.Mock
}

func (m *MockShipmentUseCase) Get(ctx context.Context, orderID int64) (*shipment.ShipmentResponse, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.ShipmentResponse), args.Error(1)
}

func (m *MockShipmentUseCase) Upsert(ctx context.Context, orderID int64, req shipment.UpsertShipmentRequest) (*shipment.ShipmentResponse, error) {
	args := m.Called(ctx, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.ShipmentResponse), args.Error(1)
}

func (m *MockShipmentUseCase) SelectPickupPoint(ctx context.Context, orderID int64, point shipment.PickupPointDTO) (*shipment.ShipmentResponse, error) {
	args := m.Called(ctx, orderID, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.ShipmentResponse), args.Error(1)
}

func (m *MockShipmentUseCase) OrderListColumns(ctx context.Context, orderIDs []int64) ([]shipment.OrderColumns, error) {
	args := m.Called(ctx, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipment.OrderColumns), args.Error(1)
}

type MockPacketSubmitter struct {
	mock.Mock
}

func (m *MockPacketSubmitter) Submit(ctx context.Context, req shipment.SubmitRequest) (*shipment.SubmitResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.SubmitResult), args.Error(1)
}

type MockHandoverGenerator struct {
	mock.Mock
}

func (m *MockHandoverGenerator) Generate(ctx context.Context, req shipment.HandoverRequest) (*shipment.HandoverDocument, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.HandoverDocument), args.Error(1)
}

type MockLabelPrinter struct {
	mock.Mock
}

func (m *MockLabelPrinter) Select(ctx context.Context, userID string, req labelprint.SelectionRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

func (m *MockLabelPrinter) OffsetChoices(ctx context.Context, carrierLabels bool) (*labelprint.OffsetChoicesResponse, error) {
	args := m.Called(ctx, carrierLabels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*labelprint.OffsetChoicesResponse), args.Error(1)
}

func (m *MockLabelPrinter) Print(ctx context.Context, userID string, req labelprint.PrintRequest) (*labelprint.LabelDocument, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*labelprint.LabelDocument), args.Error(1)
}

type MockFlashDrainer struct {
	mock.Mock
}

func (m *MockFlashDrainer) Drain(ctx context.Context, userID string) ([]flash.Message, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]flash.Message), args.Error(1)
}

type MockLogLister struct {
	mock.Mock
}

func (m *MockLogLister) List(ctx context.Context, req packetlog.ListLogsRequest) (*shared.Paginated[packetlog.RecordResponse], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[packetlog.RecordResponse]), args.Error(1)
}

type MockRateCalculator struct {
	mock.Mock
}

func (m *MockRateCalculator) CalculateRates(ctx context.Context, req shipping.RatesRequest) ([]shipping.Rate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.Rate), args.Error(1)
}
