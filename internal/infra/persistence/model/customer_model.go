package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). Phone carries the unique constraint that backs
// phone-based reconciliation.
type CustomerModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(100)"`
	Phone         string    `gorm:"type:varchar(20);unique;not null"`
	Email         string    `gorm:"type:varchar(255)"`
	City          string    `gorm:"type:varchar(100)"`
	State         string    `gorm:"type:varchar(100)"`
	TotalOrders   int       `gorm:"not null;default:0"`
	TotalSpent    int64     `gorm:"not null;default:0"`
	LoyaltyPoints int64     `gorm:"not null;default:0"`
	LastOrderDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
