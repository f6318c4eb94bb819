package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Restaurant lifecycle is owned by the restaurant-management service; this
// engine only reads it when resolving tables and target kitchens.
type Restaurant struct {
	ID   string `gorm:"type:char(36);primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	// Type distinguishes bar-type restaurants for bar-order routing.
	Type string `gorm:"type:varchar(20);not null;default:'restaurant'" json:"type"`
	// No column defaults on the booleans: gorm omits a zero-value field
	// when the column has a default, so a row could never be created
	// inactive or kitchenless.
	IsActive   bool      `gorm:"not null" json:"is_active"`
	HasKitchen bool      `gorm:"not null" json:"has_kitchen"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
