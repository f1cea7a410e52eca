package model

import "time"

// InventoryHistory records one stock-quantity change on a product.
// Rows are written exactly once, at update time, and only when the stock
// value actually changed. They are never mutated afterwards; they disappear
// only as a cascade of product deletion.
type InventoryHistory struct {
	ID          int64     `gorm:"primaryKey"`
	ProductID   int64     `gorm:"not null;index"`
	OldQuantity int       `gorm:"not null"`
	NewQuantity int       `gorm:"not null"`
	ChangeDate  time.Time `gorm:"not null"`
	UserInfo    string    `gorm:"not null;default:''"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

// TableName overrides GORM's default pluralization (inventory_histories → inventory_history).
func (InventoryHistory) TableName() string { return "inventory_history" }
