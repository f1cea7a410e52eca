package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/BureddySaiPoojitha/inventory-management-app/internal/dto"
	"github.com/BureddySaiPoojitha/inventory-management-app/internal/model"
	"github.com/BureddySaiPoojitha/inventory-management-app/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// exportColumns is the fixed field order of the export format.
var exportColumns = []string{"id", "name", "unit", "category", "brand", "stock", "status", "image"}

// TransferService handles bulk movement of products in and out of the store:
// CSV import with duplicate reconciliation, and full-table CSV export.
type TransferService interface {
	// Import processes rows in input order, each as an independent commit.
	// Rows with a blank name are skipped; rows whose trimmed name already
	// exists (in the store or earlier in the same batch) are skipped and
	// reported under duplicates. One bad row never aborts the batch.
	Import(ctx context.Context, rows []map[string]string) (*dto.ImportSummary, error)
	// Export renders every stored product as delimited text: one header line,
	// then one line per row with every field double-quoted (internal quotes
	// doubled), in the store's natural retrieval order.
	Export(ctx context.Context) (string, error)
}

type transferService struct {
	repo repository.ProductRepository
}

func NewTransferService(repo repository.ProductRepository) TransferService {
	return &transferService{repo: repo}
}

func (s *transferService) Import(ctx context.Context, rows []map[string]string) (*dto.ImportSummary, error) {
	summary := &dto.ImportSummary{Duplicates: []dto.DuplicateRow{}}

	for _, row := range rows {
		name := strings.TrimSpace(row["name"])
		if name == "" {
			summary.Skipped++
			continue
		}

		// The store is re-queried per row, so names inserted earlier in this
		// same batch are caught here too.
		existing, err := s.repo.FindByName(ctx, name, 0)
		if err == nil {
			summary.Skipped++
			summary.Duplicates = append(summary.Duplicates, dto.DuplicateRow{Name: name, ExistingID: existing.ID})
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		// Stock is a non-negative integer; anything unparseable or negative
		// coerces to 0.
		stock, err := strconv.Atoi(strings.TrimSpace(row["stock"]))
		if err != nil || stock < 0 {
			stock = 0
		}
		status := strings.TrimSpace(row["status"])
		if status == "" {
			status = model.DeriveStatus(stock)
		}

		p := &model.Product{
			Name:     name,
			Unit:     row["unit"],
			Category: row["category"],
			Brand:    row["brand"],
			Stock:    stock,
			Status:   status,
			Image:    row["image"],
		}
		if err := s.repo.Create(ctx, p); err != nil {
			// A concurrent insert can win the race between check and write;
			// the unique index reports it and the row is reconciled as a
			// duplicate. Any other failure skips the row, never the batch.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				summary.Skipped++
				if existing, ferr := s.repo.FindByName(ctx, name, 0); ferr == nil {
					summary.Duplicates = append(summary.Duplicates, dto.DuplicateRow{Name: name, ExistingID: existing.ID})
				}
				continue
			}
			log.Warn().Err(err).Str("name", name).Msg("import row failed")
			summary.Skipped++
			continue
		}
		summary.Added++
	}

	return summary, nil
}

func (s *transferService) Export(ctx context.Context) (string, error) {
	products, err := s.repo.All(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(strings.Join(exportColumns, ","))
	b.WriteString("\n")

	for i, p := range products {
		if i > 0 {
			b.WriteString("\n")
		}
		fields := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Unit,
			p.Category,
			p.Brand,
			strconv.Itoa(p.Stock),
			p.Status,
			p.Image,
		}
		for j, f := range fields {
			if j > 0 {
				b.WriteString(",")
			}
			b.WriteString(quoteField(f))
		}
	}

	return b.String(), nil
}

// quoteField wraps a value in double quotes, doubling any embedded quotes.
// Every field is quoted unconditionally — that is the wire format consumers
// round-trip against, so encoding/csv's quote-when-needed behavior does not fit.
func quoteField(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
