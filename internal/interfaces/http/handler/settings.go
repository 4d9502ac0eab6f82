package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/packetery/backend/internal/application/settings"
)

// SettingsUseCase is what the settings page needs from the application layer
type SettingsUseCase interface {
	Get(ctx context.Context) (*settings.SettingsResponse, error)
	Update(ctx context.Context, req settings.UpdateSettingsRequest) (*settings.SettingsResponse, error)
	LabelFormats() settings.LabelFormatsResponse
}

// SettingsHandler serves the plugin options
type SettingsHandler struct {
	BaseHandler
	service SettingsUseCase
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(service SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get godoc
//
//	@ID				getSettings
//
//	@Summary		Get settings
//	@Description	Return the stored plugin options. The API password is never echoed
//	@Tags			settings
//	@Produce		json
//	@Success		200		{object}	APIResponse[settings.SettingsResponse]
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update godoc
//
//	@ID				updateSettings
//
//	@Summary		Update settings
//	@Description	Validate and save the plugin options
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		settings.UpdateSettingsRequest	true	"Settings"
//	@Success		200		{object}	APIResponse[settings.SettingsResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req settings.UpdateSettingsRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// LabelFormats godoc
//
//	@ID				listLabelFormats
//
//	@Summary		List label formats
//	@Description	List the label layouts for Packeta and carrier labels
//	@Tags			settings
//	@Produce		json
//	@Success		200		{object}	APIResponse[settings.LabelFormatsResponse]
//	@Failure		401		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/settings/label-formats [get]
func (h *SettingsHandler) LabelFormats(c *gin.Context) {
	h.Success(c, h.service.LabelFormats())
}
