package handler

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"

	"github.com/BureddySaiPoojitha/inventory-management-app/internal/apierror"
	"github.com/BureddySaiPoojitha/inventory-management-app/internal/service"

	"github.com/gin-gonic/gin"
)

type TransferHandler struct{ svc service.TransferService }

func NewTransferHandler(svc service.TransferService) *TransferHandler {
	return &TransferHandler{svc: svc}
}

// ImportCSV accepts a multipart upload under the "csvFile" field, decodes it
// into header-keyed rows, and hands them to the transfer service. Gin owns the
// temporary storage of the upload; nothing is written to disk here.
func (h *TransferHandler) ImportCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("csvFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("CSV required"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("could not read upload"))
		return
	}
	defer f.Close()

	rows, err := decodeRows(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("malformed CSV: "+err.Error()))
		return
	}

	summary, err := h.svc.Import(c.Request.Context(), rows)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// decodeRows reads a delimited file into one map per data row, keyed by the
// header line. Short rows leave trailing columns absent rather than failing.
func decodeRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(record) {
				row[key] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (h *TransferHandler) ExportCSV(c *gin.Context) {
	out, err := h.svc.Export(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="products.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(out))
}
