package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItem CRUD belongs to the menu service; orders only read the current
// price and availability at placement time.
type MenuItem struct {
	ID           string     `gorm:"type:char(36);primaryKey" json:"id"`
	RestaurantID string     `gorm:"type:char(36);not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Price        float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	Description  string     `gorm:"type:text" json:"description"`
	IsAvailable  bool       `gorm:"not null" json:"is_available"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
