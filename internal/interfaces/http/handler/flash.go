package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/packetery/backend/internal/application/flash"
)

// FlashDrainer returns and clears the pending admin notices of a user
type FlashDrainer interface {
	Drain(ctx context.Context, userID string) ([]flash.Message, error)
}

// FlashHandler serves admin notices queued by earlier requests
type FlashHandler struct {
	BaseHandler
	flashes FlashDrainer
}

// NewFlashHandler creates a new FlashHandler
func NewFlashHandler(flashes FlashDrainer) *FlashHandler {
	return &FlashHandler{flashes: flashes}
}

// Drain godoc
//
//	@ID				drainFlashMessages
//
//	@Summary		Drain admin notices
//	@Description	Return and clear the pending admin notices of the user
//	@Tags			flash
//	@Produce		json
//	@Success		200		{object}	APIResponse[[]flash.Message]
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/flash [get]
func (h *FlashHandler) Drain(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	messages, err := h.flashes.Drain(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if messages == nil {
		messages = []flash.Message{}
	}
	h.Success(c, messages)
}
