package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment records a gateway transaction against an order. Rows are located
// by the gateway transaction id, so a replayed callback rewrites the same
// row to the same values instead of creating a duplicate.
type Payment struct {
	ID            string     `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID       string     `gorm:"type:char(36);not null;index" json:"order_id"`
	Order         Order      `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	TransactionID string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"transaction_id"`
	Amount        float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	GatewayStatus string     `gorm:"type:varchar(50)" json:"gateway_status"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
