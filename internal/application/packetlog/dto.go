package packetlog

import (
	"time"

	"github.com/google/uuid"
	domain "github.com/packetery/backend/internal/domain/packetlog"
)

// ListLogsRequest filters the log page
type ListLogsRequest struct {
	Action    string `form:"action" binding:"omitempty,oneof=packet-sending label-print carrier-label-print carrier-number-retrieving carrier-list-update"`
	Status    string `form:"status" binding:"omitempty,oneof=success error"`
	OrderID   *int64 `form:"order_id" binding:"omitempty,min=1"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=date action status order_id"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// RecordResponse is one log line
type RecordResponse struct {
	ID      uuid.UUID      `json:"id"`
	Action  string         `json:"action"`
	Status  string         `json:"status"`
	Title   string         `json:"title"`
	Params  map[string]any `json:"params"`
	Error   string         `json:"error,omitempty"`
	OrderID *int64         `json:"order_id,omitempty"`
	Date    time.Time      `json:"date"`
}

// ToRecordResponse converts a domain record to a response
func ToRecordResponse(r *domain.Record) RecordResponse {
	return RecordResponse{
		ID:      r.ID,
		Action:  string(r.Action),
		Status:  string(r.Status),
		Title:   r.Title,
		Params:  r.Params,
		Error:   r.Error,
		OrderID: r.OrderID,
		Date:    r.Date,
	}
}
