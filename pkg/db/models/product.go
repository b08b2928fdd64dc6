package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a storefront listing. Slug is intended-unique but only
// soft-deduplicated at write time (suffixing, not rejection), so the column
// carries a plain index rather than a unique one.
type Product struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug         string          `gorm:"column:slug;not null;index" json:"slug"`
	Name         string          `gorm:"column:name;not null" json:"name"`
	Description  *string         `gorm:"column:description" json:"description,omitempty"`
	ImageURL     *string         `gorm:"column:image_url" json:"imageUrl,omitempty"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	MinOrderQty  int             `gorm:"column:min_order_qty;not null;default:1" json:"minOrderQty"`
	AvailableQty int             `gorm:"column:available_qty;not null;default:0" json:"availableQty"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
