package service

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/BureddySaiPoojitha/inventory-management-app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportBatch(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewTransferService(repo)
	ctx := context.Background()

	summary, err := svc.Import(ctx, []map[string]string{
		{"name": "A", "stock": "10"},
		{"name": "a", "stock": "20"},
		{"name": "", "stock": "5"},
		{"name": "B"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Added)
	assert.Equal(t, 2, summary.Skipped)
	require.Len(t, summary.Duplicates, 1)
	assert.Equal(t, "a", summary.Duplicates[0].Name)

	a, err := repo.FindByName(ctx, "A", 0)
	require.NoError(t, err)
	assert.Equal(t, a.ID, summary.Duplicates[0].ExistingID)
	assert.Equal(t, 10, a.Stock)
	assert.Equal(t, model.StatusInStock, a.Status)

	// Missing stock parses to 0 and derives Out of Stock.
	b, err := repo.FindByName(ctx, "B", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Stock)
	assert.Equal(t, model.StatusOutOfStock, b.Status)
}

func TestImportAgainstExistingStore(t *testing.T) {
	repo := newStubProductRepo()
	require.NoError(t, repo.Create(context.Background(), &model.Product{Name: "Widget", Stock: 3}))
	svc := NewTransferService(repo)

	summary, err := svc.Import(context.Background(), []map[string]string{
		{"name": "  widget  ", "stock": "1"},
		{"name": "Gadget", "stock": "abc", "status": "Backordered"},
		{"name": "Sprocket", "stock": "-5"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Added)
	assert.Equal(t, 1, summary.Skipped)
	require.Len(t, summary.Duplicates, 1)
	assert.Equal(t, "widget", summary.Duplicates[0].Name)

	// Non-numeric stock → 0; explicit status wins over derivation.
	g, err := repo.FindByName(context.Background(), "Gadget", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Stock)
	assert.Equal(t, "Backordered", g.Status)

	// Negative stock coerces to 0 as well; stock never goes below zero.
	sp, err := repo.FindByName(context.Background(), "Sprocket", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, sp.Stock)
	assert.Equal(t, model.StatusOutOfStock, sp.Status)
}

func TestImportEmptyBatch(t *testing.T) {
	svc := NewTransferService(newStubProductRepo())
	summary, err := svc.Import(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Added)
	assert.Equal(t, 0, summary.Skipped)
	assert.NotNil(t, summary.Duplicates)
	assert.Empty(t, summary.Duplicates)
}

func TestExportQuotesEveryField(t *testing.T) {
	repo := newStubProductRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &model.Product{
		Name: `6" Nail`, Unit: "box", Category: "hardware", Brand: "Acme, Inc.", Stock: 12, Status: model.StatusInStock,
	}))
	svc := NewTransferService(repo)

	out, err := svc.Export(ctx)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,unit,category,brand,stock,status,image", lines[0])
	assert.Equal(t, `"1","6"" Nail","box","hardware","Acme, Inc.","12","In Stock",""`, lines[1])
}

func TestExportRoundTrip(t *testing.T) {
	repo := newStubProductRepo()
	ctx := context.Background()
	seed := []model.Product{
		{Name: `He said "hello"`, Unit: "pc", Category: "misc", Brand: "B,rand", Stock: 0, Status: model.StatusOutOfStock, Image: "img.png"},
		{Name: "Plain", Unit: "", Category: "tools", Brand: "", Stock: 7, Status: model.StatusInStock},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}
	svc := NewTransferService(repo)

	out, err := svc.Export(ctx)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	for i, p := range seed {
		row := records[i+1]
		assert.Equal(t, p.Name, row[1])
		assert.Equal(t, p.Unit, row[2])
		assert.Equal(t, p.Category, row[3])
		assert.Equal(t, p.Brand, row[4])
		assert.Equal(t, p.Status, row[6])
		assert.Equal(t, p.Image, row[7])
	}
}

func TestExportEmptyStore(t *testing.T) {
	svc := NewTransferService(newStubProductRepo())
	out, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id,name,unit,category,brand,stock,status,image\n", out)
}
