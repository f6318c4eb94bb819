package models

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill is created once per order and never mutated. The unique index on
// OrderID is the race guard behind the at-most-one-bill invariant.
type Bill struct {
	ID            string    `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID       string    `gorm:"type:char(36);not null;uniqueIndex" json:"order_id"`
	Order         Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	BillNumber    string    `gorm:"type:varchar(40);unique;not null" json:"bill_number"`
	Subtotal      float64   `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax           float64   `gorm:"type:decimal(10,2);not null" json:"tax"`
	ServiceCharge float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"service_charge"`
	Discount      float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"discount"`
	Total         float64   `gorm:"type:decimal(10,2);not null" json:"total"`
	IssuedByID    *string   `gorm:"type:char(36)" json:"issued_by_id,omitempty"`
	IssuedBy      *User     `gorm:"foreignKey:IssuedByID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	IssuedAt      time.Time `gorm:"not null" json:"issued_at"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.BillNumber == "" {
		b.BillNumber = GenerateBillNumber(time.Now())
	}
	return nil
}

// GenerateBillNumber builds a date-derived bill number with a random suffix,
// e.g. BILL-20260901-83712.
func GenerateBillNumber(t time.Time) string {
	return fmt.Sprintf("BILL-%s-%05d", t.Format("20060102"), rand.Intn(100000))
}
