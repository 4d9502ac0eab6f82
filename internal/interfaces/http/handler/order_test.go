package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/packetery/backend/internal/application/shipment"
	"github.com/packetery/backend/internal/domain/shared"
	"github.com/packetery/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderMocks struct {
	shipments *MockShipmentUseCase
	submitter *MockPacketSubmitter
	handover  *MockHandoverGenerator
}

func setupOrderRoutes(userID string) (*orderMocks, func(method, path string, body any) *httptest.ResponseRecorder) {
	m := &orderMocks{
		shipments: new(MockShipmentUseCase),
		submitter: new(MockPacketSubmitter),
		handover:  new(MockHandoverGenerator),
	}
	h := NewOrderHandler(m.shipments, m.submitter, m.handover)

	r := newTestEngine(userID)
	r.GET("/orders/columns", h.Columns)
	r.POST("/orders/submit", h.Submit)
	r.POST("/orders/handover", h.Handover)
	r.GET("/orders/:id/shipment", h.GetShipment)
	r.PUT("/orders/:id/shipment", h.UpsertShipment)
	r.PUT("/orders/:id/pickup-point", h.SelectPickupPoint)

	return m, func(method, path string, body any) *httptest.ResponseRecorder {
		return performRequest(r, method, path, body)
	}
}

func validUpsertBody() map[string]any {
	return map[string]any{
		"order_number": "1001",
		"carrier_id":   "zpointcz",
		"recipient": map[string]any{
			"name":    "Jan",
			"surname": "Novák",
			"email":   "jan@example.com",
			"country": "cz",
		},
		"weight":   1.5,
		"value":    "499.90",
		"cod":      "0",
		"currency": "CZK",
	}
}

func TestOrderHandler_GetShipment(t *testing.T) {
	m, do := setupOrderRoutes("")
	m.shipments.On("Get", mock.Anything, int64(42)).Return(&shipment.ShipmentResponse{
		OrderID:     42,
		CarrierID:   "zpointcz",
		PacketID:    "1234567890",
		TrackingURL: "https://tracking.packeta.com/Z1234567890",
	}, nil)
	m.shipments.On("Get", mock.Anything, int64(43)).Return(nil, shared.ErrNotFound)

	w := do("GET", "/orders/42/shipment", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got shipment.ShipmentResponse
	decodeResponse(t, w, &got)
	assert.Equal(t, "1234567890", got.PacketID)

	assert.Equal(t, http.StatusNotFound, do("GET", "/orders/43/shipment", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do("GET", "/orders/0/shipment", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do("GET", "/orders/x/shipment", nil).Code)
}

func TestOrderHandler_UpsertShipment(t *testing.T) {
	t.Run("stores checkout data", func(t *testing.T) {
		m, do := setupOrderRoutes("")
		m.shipments.On("Upsert", mock.Anything, int64(42), mock.MatchedBy(func(req shipment.UpsertShipmentRequest) bool {
			return req.CarrierID == "zpointcz" &&
				req.Recipient.Surname == "Novák" &&
				req.Value.Equal(decimal.RequireFromString("499.90"))
		})).Return(&shipment.ShipmentResponse{OrderID: 42, CarrierID: "zpointcz"}, nil)

		w := do("PUT", "/orders/42/shipment", validUpsertBody())
		assert.Equal(t, http.StatusOK, w.Code)
		m.shipments.AssertExpectations(t)
	})

	t.Run("binding errors name the json fields", func(t *testing.T) {
		m, do := setupOrderRoutes("")
		body := validUpsertBody()
		body["currency"] = "CZKK"
		body["recipient"].(map[string]any)["email"] = "not-an-email"

		w := do("PUT", "/orders/42/shipment", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w, nil)
		fields := map[string]bool{}
		for _, d := range resp.Error.Details {
			fields[d.Field] = true
		}
		assert.True(t, fields["currency"])
		assert.True(t, fields["email"])
		m.shipments.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestOrderHandler_SelectPickupPoint(t *testing.T) {
	m, do := setupOrderRoutes("")
	m.shipments.On("SelectPickupPoint", mock.Anything, int64(42), mock.MatchedBy(func(p shipment.PickupPointDTO) bool {
		return p.ID == "4321"
	})).Return(nil, shared.NewDomainError("PICKUP_POINTS_NOT_SUPPORTED", "Carrier does not deliver to pickup points"))

	w := do("PUT", "/orders/42/pickup-point", map[string]any{"id": "4321", "name": "Praha 1"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeResponse(t, w, nil)
	assert.Equal(t, dto.ErrCodePickupPointsNotSupported, resp.Error.Code)
}

func TestOrderHandler_Columns(t *testing.T) {
	m, do := setupOrderRoutes("")
	m.shipments.On("OrderListColumns", mock.Anything, []int64{1, 2, 3}).Return([]shipment.OrderColumns{
		{OrderID: 1, Destination: "Praha 1"},
	}, nil)

	w := do("GET", "/orders/columns?ids=1,2,%203", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got []shipment.OrderColumns
	decodeResponse(t, w, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Praha 1", got[0].Destination)

	assert.Equal(t, http.StatusBadRequest, do("GET", "/orders/columns?ids=1,abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do("GET", "/orders/columns?ids=-4", nil).Code)
}

func TestOrderHandler_Submit(t *testing.T) {
	t.Run("returns per-order outcome", func(t *testing.T) {
		m, do := setupOrderRoutes("")
		m.submitter.On("Submit", mock.Anything, shipment.SubmitRequest{OrderIDs: []int64{1, 2}}).Return(&shipment.SubmitResult{
			Submitted: []shipment.SubmittedPacket{{OrderID: 1, PacketID: "1234567890"}},
			Failed:    []shipment.OrderMessage{{OrderID: 2, Message: "Invalid packet attributes"}},
		}, nil)

		w := do("POST", "/orders/submit", map[string]any{"order_ids": []int64{1, 2}})
		require.Equal(t, http.StatusOK, w.Code)
		var got shipment.SubmitResult
		decodeResponse(t, w, &got)
		assert.Len(t, got.Submitted, 1)
		assert.Len(t, got.Failed, 1)
	})

	t.Run("requires order ids", func(t *testing.T) {
		m, do := setupOrderRoutes("")
		w := do("POST", "/orders/submit", map[string]any{"order_ids": []int64{}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		m.submitter.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("not configured", func(t *testing.T) {
		m, do := setupOrderRoutes("")
		m.submitter.On("Submit", mock.Anything, mock.Anything).Return(nil, shared.ErrNotConfigured)
		w := do("POST", "/orders/submit", map[string]any{"order_ids": []int64{1}})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestOrderHandler_Handover(t *testing.T) {
	t.Run("streams the sheet", func(t *testing.T) {
		m, do := setupOrderRoutes("")
		m.handover.On("Generate", mock.Anything, shipment.HandoverRequest{OrderIDs: []int64{1, 2}}).Return(&shipment.HandoverDocument{
			FileName:    "handover-2026-03-01.pdf",
			PDF:         []byte("%PDF-1.7"),
			PacketCount: 2,
			ArchiveURL:  "https://s3.local/packetery/handover.pdf",
		}, nil)

		w := do("POST", "/orders/handover", map[string]any{"order_ids": []int64{1, 2}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "handover-2026-03-01.pdf")
		assert.Equal(t, "2", w.Header().Get("X-Packet-Count"))
		assert.Equal(t, "https://s3.local/packetery/handover.pdf", w.Header().Get("X-Archive-URL"))
		assert.Equal(t, "%PDF-1.7", w.Body.String())
	})

	t.Run("render failure", func(t *testing.T) {
		m, do := setupOrderRoutes("")
		m.handover.On("Generate", mock.Anything, mock.Anything).Return(nil, errors.New("chrome crashed"))
		w := do("POST", "/orders/handover", map[string]any{"order_ids": []int64{1}})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Header().Get("X-Archive-URL"))
	})
}
