package handler

import (
	"net/http"
	"testing"

	"github.com/packetery/backend/internal/application/shipping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRateHandler_Calculate(t *testing.T) {
	t.Run("prices carriers of the country", func(t *testing.T) {
		rates := new(MockRateCalculator)
		rates.On("CalculateRates", mock.Anything, mock.MatchedBy(func(req shipping.RatesRequest) bool {
			return req.Country == "cz" && req.COD && req.CartTotal.Equal(decimal.NewFromInt(1200))
		})).Return([]shipping.Rate{
			{CarrierID: "zpointcz", Name: "CZ Packeta pickup points", IsPickupPoints: true, Price: decimal.NewFromInt(119)},
		}, nil)

		r := newTestEngine("")
		r.POST("/shipping/rates", NewRateHandler(rates).Calculate)

		w := performRequest(r, http.MethodPost, "/shipping/rates", map[string]any{
			"country":    "cz",
			"weight":     2,
			"cart_total": "1200",
			"cod":        true,
		})
		require.Equal(t, http.StatusOK, w.Code)
		var got []shipping.Rate
		decodeResponse(t, w, &got)
		require.Len(t, got, 1)
		assert.True(t, got[0].Price.Equal(decimal.NewFromInt(119)))
	})

	t.Run("country is required", func(t *testing.T) {
		rates := new(MockRateCalculator)
		r := newTestEngine("")
		r.POST("/shipping/rates", NewRateHandler(rates).Calculate)

		w := performRequest(r, http.MethodPost, "/shipping/rates", map[string]any{"weight": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		rates.AssertNotCalled(t, "CalculateRates", mock.Anything, mock.Anything)
	})
}
