package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-workflow/models"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

// BillingService drives the billed -> payment_pending -> paid -> completed
// tail of the order lifecycle.
type BillingService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewBillingService(db *gorm.DB, notifier *NotificationService) *BillingService {
	return &BillingService{db: db, notifier: notifier}
}

type IssueBillRequest struct {
	ServiceCharge float64 `json:"service_charge"`
	Discount      float64 `json:"discount"`
}

// IssueBill creates the order's single bill and moves the order to billed.
// The unique index on bills.order_id backs the at-most-one invariant under
// concurrent attempts.
func (s *BillingService) IssueBill(actor Actor, orderID string, req IssueBillRequest) (*models.Bill, error) {
	if req.ServiceCharge < 0 || req.Discount < 0 {
		return nil, utils.NewValidationError("service charge and discount must not be negative")
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, utils.NewInternalError(tx.Error)
	}

	order, err := loadOrder(tx, orderID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if order.Status != models.OrderStatusReady && order.Status != models.OrderStatusServed {
		tx.Rollback()
		return nil, utils.NewConflictError("order %s is %s, bills can only be issued for ready or served orders",
			order.OrderNumber, order.Status)
	}

	var existing int64
	if err := tx.Model(&models.Bill{}).Where("order_id = ?", order.ID).Count(&existing).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}
	if existing > 0 {
		tx.Rollback()
		return nil, utils.NewConflictError("order %s already has a bill", order.OrderNumber)
	}

	// Snapshot from live items, never from the cached columns.
	if err := recomputeTotals(tx, order); err != nil {
		tx.Rollback()
		return nil, err
	}

	total, _ := decimal.NewFromFloat(order.Subtotal).
		Add(decimal.NewFromFloat(order.Tax)).
		Add(decimal.NewFromFloat(req.ServiceCharge)).
		Sub(decimal.NewFromFloat(req.Discount)).
		Round(2).Float64()

	bill := models.Bill{
		OrderID:       order.ID,
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		ServiceCharge: req.ServiceCharge,
		Discount:      req.Discount,
		Total:         total,
		IssuedAt:      time.Now(),
	}
	if actor.ID != "" {
		id := actor.ID
		bill.IssuedByID = &id
	}
	if err := tx.Create(&bill).Error; err != nil {
		tx.Rollback()
		// Unique index race guard: a concurrent issue slipped in first.
		if strings.Contains(strings.ToLower(err.Error()), "unique") ||
			strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return nil, utils.NewConflictError("order %s already has a bill", order.OrderNumber)
		}
		return nil, utils.NewInternalError(err)
	}

	if err := transitionOrder(order, models.OrderStatusBilled); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Save(order).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	s.notifyPayment(order, models.OrderStatusBilled, actor,
		fmt.Sprintf("Bill %s issued for order %s", bill.BillNumber, order.OrderNumber))
	return &bill, nil
}

// GetBill returns the order's bill.
func (s *BillingService) GetBill(orderID string) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.First(&bill, "order_id = ?", orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewNotFoundError("no bill for order %s", orderID)
		}
		return nil, utils.NewInternalError(err)
	}
	return &bill, nil
}

// RequestPayment moves a billed order into payment_pending.
func (s *BillingService) RequestPayment(actor Actor, orderID string) (*models.Order, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, utils.NewInternalError(tx.Error)
	}

	order, err := loadOrder(tx, orderID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if order.Status != models.OrderStatusBilled {
		tx.Rollback()
		return nil, utils.NewConflictError("order %s is %s, payment can only be requested for billed orders",
			order.OrderNumber, order.Status)
	}

	if err := transitionOrder(order, models.OrderStatusPaymentPending); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Save(order).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	s.notifyPayment(order, models.OrderStatusPaymentPending, actor,
		fmt.Sprintf("Payment requested for order %s", order.OrderNumber))
	return order, nil
}

type GatewayCallback struct {
	OrderID       string  `json:"order_id" binding:"required"`
	TransactionID string  `json:"transaction_id" binding:"required"`
	Amount        float64 `json:"amount"`
	GatewayStatus string  `json:"gateway_status"`
}

// MapGatewayStatus translates the gateway's status vocabulary onto the
// internal payment statuses.
func MapGatewayStatus(gatewayStatus string) string {
	switch strings.ToLower(gatewayStatus) {
	case "success", "settlement", "capture", "completed":
		return models.PaymentStatusCompleted
	case "pending", "authorize":
		return models.PaymentStatusPending
	case "cancel", "cancelled", "expire", "expired":
		return models.PaymentStatusCancelled
	default:
		return models.PaymentStatusFailed
	}
}

// HandleGatewayCallback consumes a verified gateway result. The payment row
// is located by transaction id, so a replayed callback rewrites the same
// rows to the same values. Success moves the order to paid; anything else
// returns it to billed for retry.
func (s *BillingService) HandleGatewayCallback(cb GatewayCallback) (*models.Payment, error) {
	status := MapGatewayStatus(cb.GatewayStatus)

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, utils.NewInternalError(tx.Error)
	}

	order, err := loadOrder(tx, cb.OrderID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	var payment models.Payment
	err = tx.Where("transaction_id = ?", cb.TransactionID).First(&payment).Error
	if err == gorm.ErrRecordNotFound {
		payment = models.Payment{
			OrderID:       order.ID,
			TransactionID: cb.TransactionID,
			Amount:        cb.Amount,
		}
	} else if err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}

	payment.Status = status
	payment.GatewayStatus = cb.GatewayStatus
	if status == models.PaymentStatusCompleted && payment.PaidAt == nil {
		now := time.Now()
		payment.PaidAt = &now
	}
	if err := tx.Save(&payment).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}

	switch {
	case status == models.PaymentStatusCompleted && order.Status == models.OrderStatusPaymentPending:
		if err := transitionOrder(order, models.OrderStatusPaid); err != nil {
			tx.Rollback()
			return nil, err
		}
	case status == models.PaymentStatusCompleted && order.Status == models.OrderStatusPaid:
		// replayed success callback, nothing left to apply
	case status == models.PaymentStatusCompleted:
		tx.Rollback()
		return nil, utils.NewConflictError("order %s is %s, not awaiting payment", order.OrderNumber, order.Status)
	case order.Status == models.OrderStatusPaymentPending:
		if err := transitionOrder(order, models.OrderStatusBilled); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Save(order).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	s.notifyPayment(order, order.Status, Actor{},
		fmt.Sprintf("Payment for order %s is %s", order.OrderNumber, status))
	return &payment, nil
}

// Complete closes a paid (or served, for cash-settled flows) order.
// Terminal.
func (s *BillingService) Complete(actor Actor, orderID string) (*models.Order, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, utils.NewInternalError(tx.Error)
	}

	order, err := loadOrder(tx, orderID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if order.Status != models.OrderStatusPaid && order.Status != models.OrderStatusServed {
		tx.Rollback()
		return nil, utils.NewConflictError("order %s is %s, only paid or served orders can be completed",
			order.OrderNumber, order.Status)
	}

	if err := transitionOrder(order, models.OrderStatusCompleted); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Save(order).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	s.notifyPayment(order, models.OrderStatusCompleted, actor,
		fmt.Sprintf("Order %s completed", order.OrderNumber))
	return order, nil
}

func (s *BillingService) notifyPayment(order *models.Order, value string, actor Actor, message string) {
	var users []string
	if order.CustomerID != nil {
		users = append(users, *order.CustomerID)
	}
	if order.WaiterID != nil {
		users = append(users, *order.WaiterID)
	}
	s.notifier.Fanout(EventPaymentStatusUpdate, orderEventPayload(order, value, actor),
		users, []string{models.RoleWaiter}, Draft{
			Type:    EventPaymentStatusUpdate,
			Title:   "Payment update",
			Message: message,
		})
}
