package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. Items and Address are JSONB
// snapshots written once at placement; totals are stored denormalized so a
// historical order never depends on catalog state.
type OrderModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	CustomerPhone string         `gorm:"type:varchar(20);not null;index"`
	CustomerName  string         `gorm:"type:varchar(100)"`
	Items         datatypes.JSON `gorm:"type:jsonb;not null"`
	Address       datatypes.JSON `gorm:"type:jsonb;not null"`
	Subtotal      int64          `gorm:"not null"`
	DeliveryFee   int64          `gorm:"not null"`
	Total         int64          `gorm:"not null"`
	PaymentMethod string         `gorm:"type:varchar(30);not null"`
	Status        string         `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
