package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mak-alamin/bestools-server/pkg/enums"
)

// User represents the canonical identity entity. Email is the natural key;
// the unique index guarantees at most one row per address even under
// concurrent first sign-ins.
type User struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string     `gorm:"column:email;type:text;not null;uniqueIndex" json:"email"`
	Name      string     `gorm:"column:name;not null;default:''" json:"name"`
	Phone     *string    `gorm:"column:phone" json:"phone,omitempty"`
	Address   *string    `gorm:"column:address" json:"address,omitempty"`
	Role      enums.Role `gorm:"column:role;type:text;not null;default:'user'" json:"role"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
