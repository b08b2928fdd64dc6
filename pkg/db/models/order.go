package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mak-alamin/bestools-server/pkg/enums"
)

// Order records a purchase of a product by a user. UserEmail references
// users.email by convention only; the original store never enforced it.
type Order struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserEmail     string            `gorm:"column:user_email;not null;index" json:"userEmail"`
	ProductID     *uuid.UUID        `gorm:"column:product_id;type:uuid" json:"productId,omitempty"`
	ProductName   string            `gorm:"column:product_name;not null" json:"productName"`
	Price         decimal.Decimal   `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	Quantity      int               `gorm:"column:quantity;not null" json:"quantity"`
	Status        enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'" json:"status"`
	TransactionID *string           `gorm:"column:transaction_id" json:"transactionId,omitempty"`
	Phone         *string           `gorm:"column:phone" json:"phone,omitempty"`
	Address       *string           `gorm:"column:address" json:"address,omitempty"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
