package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BureddySaiPoojitha/inventory-management-app/internal/dto"
	"github.com/BureddySaiPoojitha/inventory-management-app/internal/model"
	"github.com/BureddySaiPoojitha/inventory-management-app/internal/repository"

	"gorm.io/gorm"
)

// historyActor is the attribution recorded on every stock change. There is no
// authenticated user in this API, so the value is a fixed placeholder.
const historyActor = "admin"

// listSortFields is the allow-list for the listing's sort field; anything
// else silently falls back to "id".
var listSortFields = map[string]bool{
	"id":       true,
	"name":     true,
	"category": true,
	"brand":    true,
	"stock":    true,
}

// ProductService defines the business logic contract for products: the
// filtered/sorted/paginated listing, free-text search, and all mutations
// including the stock-change audit trail.
type ProductService interface {
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Search(ctx context.Context, name string) ([]dto.ProductResponse, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id int64) error
	History(ctx context.Context, id int64) ([]dto.HistoryResponse, error)
}

type productService struct {
	repo        repository.ProductRepository
	historyRepo repository.HistoryRepository
}

func NewProductService(repo repository.ProductRepository, historyRepo repository.HistoryRepository) ProductService {
	return &productService{repo: repo, historyRepo: historyRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func mapProduct(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Unit:     p.Unit,
		Category: p.Category,
		Brand:    p.Brand,
		Stock:    p.Stock,
		Status:   p.Status,
		Image:    p.Image,
	}
}

func mapProducts(list []model.Product) []dto.ProductResponse {
	result := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProduct(p))
	}
	return result
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if !listSortFields[filter.SortField] {
		filter.SortField = "id"
	}
	if strings.EqualFold(filter.SortOrder, "desc") {
		filter.SortOrder = "desc"
	} else {
		filter.SortOrder = "asc"
	}

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &dto.ProductListResponse{
		Data:       mapProducts(products),
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *productService) Search(ctx context.Context, name string) ([]dto.ProductResponse, error) {
	products, err := s.repo.Search(ctx, name)
	if err != nil {
		return nil, err
	}
	return mapProducts(products), nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must be a non-negative integer", ErrValidation)
	}

	// Duplicate check is an optimization; the unique index on LOWER(name) is
	// authoritative and concurrent losers surface as gorm.ErrDuplicatedKey.
	if _, err := s.repo.FindByName(ctx, req.Name, 0); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := &model.Product{
		Name:     req.Name,
		Unit:     req.Unit,
		Category: req.Category,
		Brand:    req.Brand,
		Stock:    req.Stock,
		Status:   model.DeriveStatus(req.Stock),
		Image:    req.Image,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}

	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) Update(ctx context.Context, id int64, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must be a non-negative integer", ErrValidation)
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.repo.FindByName(ctx, req.Name, id); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.DeriveStatus(req.Stock)
	}

	oldStock := existing.Stock
	updated := model.Product{
		ID:       id,
		Name:     req.Name,
		Unit:     req.Unit,
		Category: req.Category,
		Brand:    req.Brand,
		Stock:    req.Stock,
		Status:   status,
		Image:    req.Image,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if oldStock != req.Stock {
			entry := &model.InventoryHistory{
				ProductID:   id,
				OldQuantity: oldStock,
				NewQuantity: req.Stock,
				ChangeDate:  time.Now().UTC(),
				UserInfo:    historyActor,
			}
			if err := s.historyRepo.CreateTx(tx, entry); err != nil {
				return err
			}
		}
		return s.repo.UpdateTx(tx, &updated)
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, txErr
	}

	resp := mapProduct(updated)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// History rows go first; the delete is unconditional and idempotent,
		// so a missing product cannot leave a partial state behind.
		if err := s.historyRepo.DeleteByProductTx(tx, id); err != nil {
			return err
		}
		affected, err := s.repo.DeleteTx(tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *productService) History(ctx context.Context, id int64) ([]dto.HistoryResponse, error) {
	entries, err := s.historyRepo.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	result := make([]dto.HistoryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, dto.HistoryResponse{
			ID:          e.ID,
			ProductID:   e.ProductID,
			OldQuantity: e.OldQuantity,
			NewQuantity: e.NewQuantity,
			ChangeDate:  e.ChangeDate.Format(time.RFC3339),
			UserInfo:    e.UserInfo,
		})
	}
	return result, nil
}
