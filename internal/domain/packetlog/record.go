// Package packetlog is the append-only log of Packeta API calls shown to admins.
package packetlog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/packetery/backend/internal/domain/shared"
)

// Action names the operation a record is about
type Action string

const (
	ActionPacketSending           Action = "packet-sending"
	ActionLabelPrint              Action = "label-print"
	ActionCarrierLabelPrint       Action = "carrier-label-print"
	ActionCarrierNumberRetrieving Action = "carrier-number-retrieving"
	ActionCarrierListUpdate       Action = "carrier-list-update"
)

// IsValid checks if the Action is a known value
func (a Action) IsValid() bool {
	switch a {
	case ActionPacketSending, ActionLabelPrint, ActionCarrierLabelPrint,
		ActionCarrierNumberRetrieving, ActionCarrierListUpdate:
		return true
	}
	return false
}

// Status is the outcome of the logged call
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// IsValid checks if the Status is a known value
func (s Status) IsValid() bool {
	return s == StatusSuccess || s == StatusError
}

// Record is one log line
type Record struct {
	ID      uuid.UUID
	Action  Action
	Status  Status
	Title   string
	Params  map[string]any
	Error   string
	OrderID *int64
	Date    time.Time
}

// NewRecord creates a record dated now
func NewRecord(action Action, status Status, title string) (*Record, error) {
	if !action.IsValid() {
		return nil, shared.NewDomainError("INVALID_LOG_ACTION", "Unknown log action: "+string(action))
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_LOG_STATUS", "Unknown log status: "+string(status))
	}
	return &Record{
		ID:     uuid.New(),
		Action: action,
		Status: status,
		Title:  title,
		Params: map[string]any{},
		Date:   time.Now(),
	}, nil
}

// Success is a shorthand for a success record
func Success(action Action, title string) *Record {
	r, _ := NewRecord(action, StatusSuccess, title)
	return r
}

// Failure is a shorthand for an error record carrying the fault string
func Failure(action Action, title, errorMessage string) *Record {
	r, _ := NewRecord(action, StatusError, title)
	r.Error = errorMessage
	return r
}

// ForOrder ties the record to an order
func (r *Record) ForOrder(orderID int64) *Record {
	r.OrderID = &orderID
	return r
}

// WithParam adds a request parameter for later diagnosis
func (r *Record) WithParam(key string, value any) *Record {
	r.Params[key] = value
	return r
}

// Filter narrows a log listing
type Filter struct {
	Action   Action
	Status   Status
	OrderID  *int64
	Page     int
	PageSize int
	// SortBy is a column name; the repository falls back to date
	SortBy string
	// SortOrder is ASC or DESC, DESC when empty
	SortOrder string
}

// Normalize clamps paging to sane values
func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
}

// Repository persists log records
type Repository interface {
	Save(ctx context.Context, r *Record) error
	// List returns the newest records first unless the filter sorts otherwise
	List(ctx context.Context, f Filter) ([]Record, int64, error)
}
