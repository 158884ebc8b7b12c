package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents an item sold through the storefront. Stock moves only
// through order creation (decrement) and order cancellation (restore); the
// admin stock-edit endpoint is a deliberate escape hatch for corrections.
type Product struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	ProductCode    string         `json:"product_code" gorm:"size:50;uniqueIndex;not null"`
	Name           string         `json:"name" gorm:"size:255;not null"`
	Brand          string         `json:"brand" gorm:"size:100"`
	Type           string         `json:"type" gorm:"size:100"`
	Price          float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Discount       float64        `json:"discount" gorm:"type:decimal(5,2);default:0"` // percent
	Stock          int            `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	MinStock       int            `json:"min_stock" gorm:"default:5"`
	Description    string         `json:"description" gorm:"type:text"`
	WarrantyMonths int            `json:"warranty_months" gorm:"default:0"`
	ImageURL       string         `json:"image_url" gorm:"size:500"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// ProductRequest represents the request structure for creating/updating products
type ProductRequest struct {
	ProductCode    string  `json:"product_code" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Brand          string  `json:"brand"`
	Type           string  `json:"type"`
	Price          float64 `json:"price" binding:"required"`
	Discount       float64 `json:"discount"`
	Stock          int     `json:"stock"`
	MinStock       int     `json:"min_stock"`
	Description    string  `json:"description"`
	WarrantyMonths int     `json:"warranty_months"`
	ImageURL       string  `json:"image_url"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether stock has fallen to or below the threshold
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// EffectivePrice returns the unit price after discount
func (p *Product) EffectivePrice() float64 {
	return p.Price * (1 - p.Discount/100)
}
