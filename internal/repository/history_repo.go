package repository

import (
	"context"

	"github.com/BureddySaiPoojitha/inventory-management-app/internal/model"

	"gorm.io/gorm"
)

type HistoryRepository interface {
	CreateTx(tx *gorm.DB, h *model.InventoryHistory) error
	// ListByProduct returns entries ordered most recent first. A product with
	// no entries yields an empty slice, not an error.
	ListByProduct(ctx context.Context, productID int64) ([]model.InventoryHistory, error)
	DeleteByProductTx(tx *gorm.DB, productID int64) error
}

type historyRepo struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) HistoryRepository { return &historyRepo{db: db} }

func (r *historyRepo) CreateTx(tx *gorm.DB, h *model.InventoryHistory) error {
	return tx.Create(h).Error
}

func (r *historyRepo) ListByProduct(ctx context.Context, productID int64) ([]model.InventoryHistory, error) {
	var entries []model.InventoryHistory
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("change_date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *historyRepo) DeleteByProductTx(tx *gorm.DB, productID int64) error {
	return tx.Where("product_id = ?", productID).Delete(&model.InventoryHistory{}).Error
}
