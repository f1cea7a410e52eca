package model

// Product is a single inventory item. Name is stored case-sensitively but
// must be unique under case-insensitive comparison; the unique index on
// LOWER(name) is applied in infra.NewDatabase.
type Product struct {
	ID       int64  `gorm:"primaryKey"`
	Name     string `gorm:"not null;index"`
	Unit     string `gorm:"not null;default:''"`
	Category string `gorm:"not null;default:'';index"`
	Brand    string `gorm:"not null;default:''"`
	Stock    int    `gorm:"not null;default:0"`
	Status   string `gorm:"not null;default:''"`
	Image    string `gorm:"not null;default:''"`
}

const (
	StatusInStock    = "In Stock"
	StatusOutOfStock = "Out of Stock"
)

// DeriveStatus computes the stock label used when a request does not supply
// an explicit status.
func DeriveStatus(stock int) string {
	if stock > 0 {
		return StatusInStock
	}
	return StatusOutOfStock
}
