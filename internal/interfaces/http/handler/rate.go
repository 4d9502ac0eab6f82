package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/packetery/backend/internal/application/shipping"
)

// RateCalculator prices the shipping methods of a cart
type RateCalculator interface {
	CalculateRates(ctx context.Context, req shipping.RatesRequest) ([]shipping.Rate, error)
}

// RateHandler serves checkout shipping rates
type RateHandler struct {
	BaseHandler
	rates RateCalculator
}

// NewRateHandler creates a new RateHandler
func NewRateHandler(rates RateCalculator) *RateHandler {
	return &RateHandler{rates: rates}
}

// Calculate godoc
//
//	@ID				calculateShippingRates
//
//	@Summary		Calculate shipping rates
//	@Description	Return one rate per carrier available in the destination country
//	@Tags			shipping
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shipping.RatesRequest	true	"Cart and destination"
//	@Success		200		{object}	APIResponse[[]shipping.Rate]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/shipping/rates [post]
func (h *RateHandler) Calculate(c *gin.Context) {
	var req shipping.RatesRequest
	if !h.bindJSON(c, &req) {
		return
	}
	rates, err := h.rates.CalculateRates(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rates)
}
