package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KitchenLog is the append-only audit record of kitchen routing actions.
// Rows are never updated or deleted.
type KitchenLog struct {
	ID        string     `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID   string     `gorm:"type:char(36);not null;index" json:"order_id"`
	Order     Order      `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	KitchenID string     `gorm:"type:char(36);not null;index" json:"kitchen_id"`
	Kitchen   Restaurant `gorm:"foreignKey:KitchenID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Action    string     `gorm:"type:varchar(20);not null" json:"action"`
	UserID    *string    `gorm:"type:char(36)" json:"user_id,omitempty"`
	User      *User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Note      string     `gorm:"type:text" json:"note"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
}

func (kl *KitchenLog) BeforeCreate(tx *gorm.DB) error {
	if kl.ID == "" {
		kl.ID = uuid.NewString()
	}
	return nil
}
