package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/packetery/backend/internal/domain/settings"
	"github.com/packetery/backend/internal/domain/shared"
	"github.com/packetery/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOptionRepository implements settings.Repository on the packetery_options table
type GormOptionRepository struct {
	db *gorm.DB
}

// NewGormOptionRepository creates a new GormOptionRepository
func NewGormOptionRepository(db *gorm.DB) *GormOptionRepository {
	return &GormOptionRepository{db: db}
}

// Get returns the raw value stored under key
func (r *GormOptionRepository) Get(ctx context.Context, key string) (string, error) {
	var model models.OptionModel
	if err := r.db.WithContext(ctx).First(&model, "option_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", shared.ErrNotFound
		}
		return "", err
	}
	return model.Value, nil
}

// Set stores value under key, replacing the previous one
func (r *GormOptionRepository) Set(ctx context.Context, key, value string) error {
	model := &models.OptionModel{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "option_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"option_value", "updated_at"}),
		}).
		Create(model).Error
}

// Delete removes key
func (r *GormOptionRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Where("option_key = ?", key).
		Delete(&models.OptionModel{}).Error
}

// Ensure GormOptionRepository implements settings.Repository
var _ settings.Repository = (*GormOptionRepository)(nil)
