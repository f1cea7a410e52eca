package repository

import (
	"context"

	"github.com/BureddySaiPoojitha/inventory-management-app/internal/dto"
	"github.com/BureddySaiPoojitha/inventory-management-app/internal/model"

	"gorm.io/gorm"
)

// allowedSortFields is the allow-list for the listing's ORDER BY column.
// Anything outside it silently falls back to "id" — the field name is
// interpolated into the query, so it must never come from user input directly.
var allowedSortFields = map[string]bool{
	"id":       true,
	"name":     true,
	"category": true,
	"brand":    true,
	"stock":    true,
}

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	// FindByName matches case-insensitively and may exclude one product id
	// (pass 0 to exclude nothing). Returns gorm.ErrRecordNotFound when the
	// name is free.
	FindByName(ctx context.Context, name string, excludeID int64) (*model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error)
	Search(ctx context.Context, name string) ([]model.Product, error)
	All(ctx context.Context) ([]model.Product, error)

	// Used inside transactions — callers must pass the tx instance.
	UpdateTx(tx *gorm.DB, p *model.Product) error
	DeleteTx(tx *gorm.DB, id int64) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByName(ctx context.Context, name string, excludeID int64) (*model.Product, error) {
	var p model.Product
	q := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := filter.SortField
	if !allowedSortFields[sortField] {
		sortField = "id"
	}
	order := sortField + " ASC"
	if filter.SortOrder == "desc" {
		order = sortField + " DESC"
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order(order).Limit(filter.Limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *productRepo) Search(ctx context.Context, name string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("name ILIKE ?", "%"+name+"%").Find(&products).Error
	return products, err
}

func (r *productRepo) All(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Find(&products).Error
	return products, err
}

func (r *productRepo) UpdateTx(tx *gorm.DB, p *model.Product) error {
	return tx.Save(p).Error
}

func (r *productRepo) DeleteTx(tx *gorm.DB, id int64) (int64, error) {
	res := tx.Delete(&model.Product{}, id)
	return res.RowsAffected, res.Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
