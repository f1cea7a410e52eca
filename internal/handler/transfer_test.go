package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BureddySaiPoojitha/inventory-management-app/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransferService struct {
	rows   []map[string]string
	export string
}

func (s *stubTransferService) Import(_ context.Context, rows []map[string]string) (*dto.ImportSummary, error) {
	s.rows = rows
	return &dto.ImportSummary{Added: len(rows), Duplicates: []dto.DuplicateRow{}}, nil
}

func (s *stubTransferService) Export(context.Context) (string, error) {
	return s.export, nil
}

func TestImportCSVDecodesHeaderKeyedRows(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubTransferService{}
	h := NewTransferHandler(svc)
	r := gin.New()
	r.POST("/api/products/import", h.ImportCSV)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("csvFile", "products.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("name,stock,brand\nSugar,5,Acme\nSalt,0\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/products/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.rows, 2)
	assert.Equal(t, "Sugar", svc.rows[0]["name"])
	assert.Equal(t, "Acme", svc.rows[0]["brand"])
	// Short row: trailing column simply absent.
	assert.Equal(t, "Salt", svc.rows[1]["name"])
	_, hasBrand := svc.rows[1]["brand"]
	assert.False(t, hasBrand)
}

func TestImportCSVRequiresFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewTransferHandler(&stubTransferService{})
	r := gin.New()
	r.POST("/api/products/import", h.ImportCSV)

	req := httptest.NewRequest(http.MethodPost, "/api/products/import", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportCSVHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewTransferHandler(&stubTransferService{export: "id,name\n\"1\",\"Sugar\""})
	r := gin.New()
	r.GET("/api/products/export", h.ExportCSV)

	req := httptest.NewRequest(http.MethodGet, "/api/products/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="products.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "id,name\n\"1\",\"Sugar\"", w.Body.String())
}
