package persistence

import (
	"context"
	"errors"

	"github.com/packetery/backend/internal/domain/shared"
	"github.com/packetery/backend/internal/domain/shipment"
	"github.com/packetery/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shipmentUpsertColumns are rewritten when the meta of an order already exists
var shipmentUpsertColumns = []string{
	"order_number",
	"carrier_id",
	"packet_id",
	"is_label_printed",
	"carrier_number",
	"point_id",
	"point_name",
	"point_city",
	"point_zip",
	"point_street",
	"point_url",
	"carrier_point_id",
	"recipient_name",
	"recipient_surname",
	"recipient_company",
	"recipient_email",
	"recipient_phone",
	"recipient_street",
	"recipient_house_number",
	"recipient_city",
	"recipient_zip",
	"recipient_country",
	"weight",
	"length",
	"width",
	"height",
	"value",
	"cod",
	"currency",
	"updated_at",
}

// GormShipmentRepository implements shipment.Repository using GORM
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GormShipmentRepository
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// FindByOrderID finds the meta of one order
func (r *GormShipmentRepository) FindByOrderID(ctx context.Context, orderID int64) (*shipment.Shipment, error) {
	var model models.ShipmentModel
	if err := r.db.WithContext(ctx).First(&model, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrderIDs loads the meta of several orders in the order they were asked for
func (r *GormShipmentRepository) FindByOrderIDs(ctx context.Context, orderIDs []int64) ([]shipment.Shipment, error) {
	if len(orderIDs) == 0 {
		return []shipment.Shipment{}, nil
	}

	var shipmentModels []models.ShipmentModel
	if err := r.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Find(&shipmentModels).Error; err != nil {
		return nil, err
	}

	byOrder := make(map[int64]*models.ShipmentModel, len(shipmentModels))
	for i := range shipmentModels {
		byOrder[shipmentModels[i].OrderID] = &shipmentModels[i]
	}

	shipments := make([]shipment.Shipment, 0, len(shipmentModels))
	seen := make(map[int64]bool, len(orderIDs))
	for _, id := range orderIDs {
		model, ok := byOrder[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		shipments = append(shipments, *model.ToDomain())
	}
	return shipments, nil
}

// Save inserts the meta or replaces it when the order already has one
func (r *GormShipmentRepository) Save(ctx context.Context, s *shipment.Shipment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns(shipmentUpsertColumns),
		}).
		Create(models.ShipmentModelFromDomain(s)).Error
}

// Ensure GormShipmentRepository implements shipment.Repository
var _ shipment.Repository = (*GormShipmentRepository)(nil)
