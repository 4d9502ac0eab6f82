package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/packetery/backend/internal/application/labelprint"
)

// LabelPrinter prints labels of the orders a user selected
type LabelPrinter interface {
	Select(ctx context.Context, userID string, req labelprint.SelectionRequest) error
	OffsetChoices(ctx context.Context, carrierLabels bool) (*labelprint.OffsetChoicesResponse, error)
	Print(ctx context.Context, userID string, req labelprint.PrintRequest) (*labelprint.LabelDocument, error)
}

// LabelHandler serves the label print flow: select orders, pick an offset, print
type LabelHandler struct {
	BaseHandler
	printer LabelPrinter
}

// NewLabelHandler creates a new LabelHandler
func NewLabelHandler(printer LabelPrinter) *LabelHandler {
	return &LabelHandler{printer: printer}
}

// Select godoc
//
//	@ID				selectLabelOrders
//
//	@Summary		Select orders for printing
//	@Description	Store the orders picked in the bulk action
//	@Tags			labels
//	@Accept			json
//	@Produce		json
//	@Param			request	body		labelprint.SelectionRequest	true	"Selected orders"
//	@Success		204
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/labels/selection [post]
func (h *LabelHandler) Select(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	var req labelprint.SelectionRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.printer.Select(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Offsets godoc
//
//	@ID				listLabelOffsets
//
//	@Summary		List label offsets
//	@Description	List the label positions of the configured format
//	@Tags			labels
//	@Produce		json
//	@Param			carrier	query		bool	false	"Use the carrier label format"
//	@Success		200		{object}	APIResponse[labelprint.OffsetChoicesResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/labels/offsets [get]
func (h *LabelHandler) Offsets(c *gin.Context) {
	carrierLabels := false
	if raw := c.Query("carrier"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.BadRequest(c, "carrier must be a boolean")
			return
		}
		carrierLabels = v
	}
	resp, err := h.printer.OffsetChoices(c.Request.Context(), carrierLabels)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Print godoc
//
//	@ID				printLabels
//
//	@Summary		Print labels
//	@Description	Render the label PDF of the stored selection
//	@Tags			labels
//	@Accept			json
//	@Produce		application/pdf
//	@Param			request	body		labelprint.PrintRequest	false	"Print options"
//	@Success		200		{file}	binary
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/labels/print [post]
func (h *LabelHandler) Print(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	var req labelprint.PrintRequest
	if c.Request.ContentLength != 0 && !h.bindJSON(c, &req) {
		return
	}
	doc, err := h.printer.Print(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	writeDocumentHeaders(c, doc.PacketCount, doc.ArchiveURL)
	h.PDF(c, doc.FileName, doc.PDF)
}
