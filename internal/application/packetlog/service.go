// Package packetlog writes and lists the Packeta API call log.
package packetlog

import (
	"context"

	domain "github.com/packetery/backend/internal/domain/packetlog"
	"github.com/packetery/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LogService appends and lists log records
type LogService struct {
	repo   domain.Repository
	logger *zap.Logger
}

// NewLogService creates a new LogService
func NewLogService(repo domain.Repository, logger *zap.Logger) *LogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogService{repo: repo, logger: logger}
}

// Record appends r. A failed write is logged and swallowed so it never
// masks the outcome of the API call being recorded.
func (s *LogService) Record(ctx context.Context, r *domain.Record) {
	if s == nil || r == nil {
		return
	}
	if err := s.repo.Save(ctx, r); err != nil {
		s.logger.Error("Failed to write packet log record",
			zap.String("action", string(r.Action)),
			zap.String("status", string(r.Status)),
			zap.Error(err),
		)
	}
}

// List returns a page of records, newest first
func (s *LogService) List(ctx context.Context, req ListLogsRequest) (*shared.Paginated[RecordResponse], error) {
	filter := domain.Filter{
		Action:    domain.Action(req.Action),
		Status:    domain.Status(req.Status),
		OrderID:   req.OrderID,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	if filter.Action != "" && !filter.Action.IsValid() {
		return nil, shared.NewDomainError("INVALID_LOG_ACTION", "Unknown log action: "+req.Action)
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, shared.NewDomainError("INVALID_LOG_STATUS", "Unknown log status: "+req.Status)
	}
	filter.Normalize()

	records, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]RecordResponse, len(records))
	for i := range records {
		items[i] = ToRecordResponse(&records[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}
