package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/packetery/backend/internal/application/carrier"
	domain "github.com/packetery/backend/internal/domain/carrier"
)

// CarrierQueries reads the synced carrier list
type CarrierQueries interface {
	ListIncludingZpoints(ctx context.Context) ([]domain.Option, error)
	ListByCountryIncludingZpoints(ctx context.Context, country string) ([]domain.Option, error)
	Countries(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id int) (*carrier.CarrierResponse, error)
}

// CarrierSync refreshes the carrier list from the Packeta feed
type CarrierSync interface {
	Run(ctx context.Context) (*carrier.SyncResult, error)
	LastUpdate(ctx context.Context) (*carrier.SyncStatusResponse, error)
}

// CarrierHandler serves carrier options and the manual feed refresh
type CarrierHandler struct {
	BaseHandler
	carriers CarrierQueries
	sync     CarrierSync
}

// NewCarrierHandler creates a new CarrierHandler
func NewCarrierHandler(carriers CarrierQueries, sync CarrierSync) *CarrierHandler {
	return &CarrierHandler{carriers: carriers, sync: sync}
}

// List godoc
//
//	@ID				listCarriers
//
//	@Summary		List carrier options
//	@Description	List the carrier options including internal pickup point carriers, optionally for one country
//	@Tags			carriers
//	@Produce		json
//	@Param			country	query		string	false	"ISO country code"
//	@Success		200		{object}	APIResponse[[]domain.Option]
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/carriers [get]
func (h *CarrierHandler) List(c *gin.Context) {
	var (
		options []domain.Option
		err     error
	)
	if country := strings.TrimSpace(c.Query("country")); country != "" {
		options, err = h.carriers.ListByCountryIncludingZpoints(c.Request.Context(), country)
	} else {
		options, err = h.carriers.ListIncludingZpoints(c.Request.Context())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, options)
}

// Countries godoc
//
//	@ID				listCarrierCountries
//
//	@Summary		List carrier countries
//	@Description	List the countries with at least one active carrier
//	@Tags			carriers
//	@Produce		json
//	@Success		200		{object}	APIResponse[[]string]
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/carriers/countries [get]
func (h *CarrierHandler) Countries(c *gin.Context) {
	countries, err := h.carriers.Countries(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, countries)
}

// Get godoc
//
//	@ID				getCarrier
//
//	@Summary		Get carrier
//	@Description	Return one carrier by its Packeta id
//	@Tags			carriers
//	@Produce		json
//	@Param			id	path		int	true	"Carrier ID"
//	@Success		200		{object}	APIResponse[carrier.CarrierResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/carriers/{id} [get]
func (h *CarrierHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.BadRequest(c, "Invalid carrier ID")
		return
	}
	resp, err := h.carriers.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Sync godoc
//
//	@ID				syncCarriers
//
//	@Summary		Sync carriers
//	@Description	Download the carrier feed now. Answers 409 while another update is running
//	@Tags			carriers
//	@Produce		json
//	@Success		200		{object}	APIResponse[carrier.SyncResult]
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/carriers/sync [post]
func (h *CarrierHandler) Sync(c *gin.Context) {
	result, err := h.sync.Run(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// SyncStatus godoc
//
//	@ID				getCarrierSyncStatus
//
//	@Summary		Get carrier sync status
//	@Description	Return the time of the last successful carrier update
//	@Tags			carriers
//	@Produce		json
//	@Success		200		{object}	APIResponse[carrier.SyncStatusResponse]
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/carriers/sync/status [get]
func (h *CarrierHandler) SyncStatus(c *gin.Context) {
	status, err := h.sync.LastUpdate(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, status)
}
