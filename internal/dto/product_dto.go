package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name     string `json:"name"     validate:"required"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Stock    int    `json:"stock"    validate:"min=0"`
	Image    string `json:"image"`
}

// UpdateProductRequest carries full-replace semantics: every field is written
// as-is, so omitted optional fields reset to their empty defaults. Status is
// the one exception — when empty it is re-derived from the new stock value.
type UpdateProductRequest struct {
	Name     string `json:"name"     validate:"required"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Stock    int    `json:"stock"    validate:"min=0"`
	Status   string `json:"status"`
	Image    string `json:"image"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductFilter struct {
	Name      string `form:"name"`
	Category  string `form:"category"`
	SortField string `form:"sortField,default=id"`
	SortOrder string `form:"sortOrder,default=asc"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Stock    int    `json:"stock"`
	Status   string `json:"status"`
	Image    string `json:"image"`
}

type ProductListResponse struct {
	Data       []ProductResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

type HistoryResponse struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	OldQuantity int    `json:"old_quantity"`
	NewQuantity int    `json:"new_quantity"`
	ChangeDate  string `json:"change_date"`
	UserInfo    string `json:"user_info"`
}
