package models

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID            string  `gorm:"type:char(36);primaryKey" json:"id"`
	OrderNumber   string  `gorm:"type:varchar(40);unique;not null" json:"order_number"`
	CustomerID    *string `gorm:"type:char(36);index" json:"customer_id,omitempty"`
	Customer      *User   `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	TableID       string  `gorm:"type:char(36);not null;index" json:"table_id"`
	Table         Table   `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ReservationID *string `gorm:"type:char(36);index" json:"reservation_id,omitempty"`
	OrderType     string  `gorm:"type:varchar(20);not null" json:"order_type"`
	WaiterID      *string `gorm:"type:char(36);index" json:"waiter_id,omitempty"`
	Waiter        *User   `gorm:"foreignKey:WaiterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	RestaurantID  string  `gorm:"type:char(36);not null;index" json:"restaurant_id"`
	// TargetKitchenID is the restaurant currently responsible for
	// preparation; changed only by the kitchen transfer flow.
	TargetKitchenID *string `gorm:"type:char(36);index" json:"target_kitchen_id,omitempty"`

	Status        string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	KitchenStatus string `gorm:"type:varchar(20);not null;default:'pending'" json:"kitchen_status"`

	Subtotal float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"subtotal"`
	Tax      float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"tax"`
	Tip      float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"tip"`

	SpecialInstructions  string `gorm:"type:text" json:"special_instructions"`
	KitchenNotes         string `gorm:"type:text" json:"kitchen_notes"`
	EstimatedPrepMinutes *int   `json:"estimated_prep_minutes,omitempty"`

	PlacedAt           time.Time  `gorm:"not null" json:"placed_at"`
	StartedAt          *time.Time `json:"started_at,omitempty"`
	ReadyAt            *time.Time `json:"ready_at,omitempty"`
	ServedAt           *time.Time `json:"served_at,omitempty"`
	BilledAt           *time.Time `json:"billed_at,omitempty"`
	PaymentRequestedAt *time.Time `json:"payment_requested_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`

	KitchenAssignedAt *time.Time `json:"kitchen_assigned_at,omitempty"`
	KitchenAcceptedAt *time.Time `json:"kitchen_accepted_at,omitempty"`
	KitchenRejectedAt *time.Time `json:"kitchen_rejected_at,omitempty"`

	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.OrderNumber == "" {
		o.OrderNumber = GenerateOrderNumber(time.Now())
	}
	return nil
}

// GenerateOrderNumber builds the human-readable, time-derived order number,
// e.g. ORD-20260901-143502-4821.
func GenerateOrderNumber(t time.Time) string {
	return fmt.Sprintf("ORD-%s-%04d", t.Format("20060102-150405"), rand.Intn(10000))
}
