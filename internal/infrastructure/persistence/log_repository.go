package persistence

import (
	"context"

	"github.com/packetery/backend/internal/domain/packetlog"
	"github.com/packetery/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormLogRepository implements packetlog.Repository using GORM
type GormLogRepository struct {
	db *gorm.DB
}

// NewGormLogRepository creates a new GormLogRepository
func NewGormLogRepository(db *gorm.DB) *GormLogRepository {
	return &GormLogRepository{db: db}
}

// Save appends a record
func (r *GormLogRepository) Save(ctx context.Context, record *packetlog.Record) error {
	return r.db.WithContext(ctx).Create(models.LogRecordModelFromDomain(record)).Error
}

// List returns one page of records, newest first, with the total match count
func (r *GormLogRepository) List(ctx context.Context, filter packetlog.Filter) ([]packetlog.Record, int64, error) {
	filter.Normalize()

	var total int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&models.LogRecordModel{}), filter).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recordModels []models.LogRecordModel
	if err := r.applyFilter(r.db.WithContext(ctx), filter).
		Order(logOrderClause(filter)).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&recordModels).Error; err != nil {
		return nil, 0, err
	}

	records := make([]packetlog.Record, len(recordModels))
	for i := range recordModels {
		records[i] = *recordModels[i].ToDomain()
	}
	return records, total, nil
}

// logOrderClause sorts by a whitelisted column, ties broken by id
func logOrderClause(filter packetlog.Filter) string {
	field := ValidateSortField(filter.SortBy, LogSortFields, "date")
	return field + " " + ValidateSortOrder(filter.SortOrder) + ", id"
}

func (r *GormLogRepository) applyFilter(query *gorm.DB, filter packetlog.Filter) *gorm.DB {
	if filter.Action != "" {
		query = query.Where("action = ?", string(filter.Action))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.OrderID != nil {
		query = query.Where("order_id = ?", *filter.OrderID)
	}
	return query
}

// Ensure GormLogRepository implements packetlog.Repository
var _ packetlog.Repository = (*GormLogRepository)(nil)
