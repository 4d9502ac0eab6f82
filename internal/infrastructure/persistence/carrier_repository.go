package persistence

import (
	"context"
	"errors"

	"github.com/packetery/backend/internal/domain/carrier"
	"github.com/packetery/backend/internal/domain/shared"
	"github.com/packetery/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// carrierUpsertColumns are overwritten when an inserted id already exists
var carrierUpsertColumns = []string{
	"name", "is_pickup_points", "has_carrier_direct_label", "separate_house_number",
	"customs_declarations", "requires_email", "requires_phone", "requires_size",
	"disallows_cod", "country", "currency", "max_weight", "deleted",
}

// GormCarrierRepository implements carrier.Repository using GORM
type GormCarrierRepository struct {
	db *gorm.DB
}

// NewGormCarrierRepository creates a new GormCarrierRepository
func NewGormCarrierRepository(db *gorm.DB) *GormCarrierRepository {
	return &GormCarrierRepository{db: db}
}

// IDs returns every stored carrier id, deleted carriers included
func (r *GormCarrierRepository) IDs(ctx context.Context) ([]int, error) {
	var ids []int
	if err := r.db.WithContext(ctx).
		Model(&models.CarrierModel{}).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// FindActive returns carriers that are still in the feed
func (r *GormCarrierRepository) FindActive(ctx context.Context) ([]carrier.Carrier, error) {
	var carrierModels []models.CarrierModel
	if err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Order("id").
		Find(&carrierModels).Error; err != nil {
		return nil, err
	}
	return toCarriers(carrierModels), nil
}

// FindByID finds a carrier by ID
func (r *GormCarrierRepository) FindByID(ctx context.Context, id int) (*carrier.Carrier, error) {
	var model models.CarrierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// HasPickupPoints reads the is_pickup_points flag, false for unknown carriers
func (r *GormCarrierRepository) HasPickupPoints(ctx context.Context, id int) (bool, error) {
	var flags []bool
	if err := r.db.WithContext(ctx).
		Model(&models.CarrierModel{}).
		Where("id = ?", id).
		Limit(1).
		Pluck("is_pickup_points", &flags).Error; err != nil {
		return false, err
	}
	return len(flags) > 0 && flags[0], nil
}

// FindByCountry returns active carriers of a country
func (r *GormCarrierRepository) FindByCountry(ctx context.Context, country string) ([]carrier.Carrier, error) {
	var carrierModels []models.CarrierModel
	if err := r.db.WithContext(ctx).
		Where("country = ? AND deleted = ?", country, false).
		Order("id").
		Find(&carrierModels).Error; err != nil {
		return nil, err
	}
	return toCarriers(carrierModels), nil
}

// Countries returns the distinct countries of active carriers
func (r *GormCarrierRepository) Countries(ctx context.Context) ([]string, error) {
	var countries []string
	if err := r.db.WithContext(ctx).
		Model(&models.CarrierModel{}).
		Where("deleted = ?", false).
		Distinct("country").
		Order("country ASC").
		Pluck("country", &countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

// Insert creates a carrier row. A row another sync inserted meanwhile is
// overwritten with the feed values.
func (r *GormCarrierRepository) Insert(ctx context.Context, c *carrier.Carrier) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(carrierUpsertColumns),
		}).
		Create(models.CarrierModelFromDomain(c)).Error
}

// Update overwrites every column of an existing carrier
func (r *GormCarrierRepository) Update(ctx context.Context, c *carrier.Carrier) error {
	result := r.db.WithContext(ctx).
		Model(&models.CarrierModel{}).
		Where("id = ?", c.ID).
		Select("*").
		Updates(models.CarrierModelFromDomain(c))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// MarkOthersDeleted flags carriers that are missing from the latest feed
func (r *GormCarrierRepository) MarkOthersDeleted(ctx context.Context, idsInFeed []int) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.CarrierModel{}).
		Where("deleted = ?", false)
	if len(idsInFeed) > 0 {
		query = query.Where("id NOT IN ?", idsInFeed)
	}
	result := query.Update("deleted", true)
	return result.RowsAffected, result.Error
}

func toCarriers(carrierModels []models.CarrierModel) []carrier.Carrier {
	carriers := make([]carrier.Carrier, len(carrierModels))
	for i := range carrierModels {
		carriers[i] = *carrierModels[i].ToDomain()
	}
	return carriers
}

// Ensure GormCarrierRepository implements carrier.Repository
var _ carrier.Repository = (*GormCarrierRepository)(nil)
