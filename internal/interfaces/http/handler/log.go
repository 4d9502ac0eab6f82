package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/packetery/backend/internal/application/packetlog"
	"github.com/packetery/backend/internal/domain/shared"
)

// LogLister pages through the Packeta operation log
type LogLister interface {
	List(ctx context.Context, req packetlog.ListLogsRequest) (*shared.Paginated[packetlog.RecordResponse], error)
}

// LogHandler serves the log page
type LogHandler struct {
	BaseHandler
	logs LogLister
}

// NewLogHandler creates a new LogHandler
func NewLogHandler(logs LogLister) *LogHandler {
	return &LogHandler{logs: logs}
}

// List godoc
//
//	@ID				listPacketLogs
//
//	@Summary		List log records
//	@Description	List Packeta operation log records, newest first
//	@Tags			logs
//	@Produce		json
//	@Param			action	query		string	false	"Action filter"
//	@Param			status	query		string	false	"Status filter"
//	@Param			order_id	query		int	false	"Order ID filter"
//	@Param			page	query		int	false	"Page number"
//	@Param			page_size	query		int	false	"Page size"
//	@Param			sort_by	query		string	false	"Sort field"
//	@Param			sort_order	query		string	false	"Sort order"
//	@Success		200		{object}	APIResponse[[]packetlog.RecordResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/logs [get]
func (h *LogHandler) List(c *gin.Context) {
	var req packetlog.ListLogsRequest
	if !h.bindQuery(c, &req) {
		return
	}
	page, err := h.logs.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}
