package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-workflow/models"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

// TaxRate is the jurisdiction rate applied to every order subtotal.
var TaxRate = decimal.NewFromFloat(0.12)

// transitionOrder validates the order-status move, applies it and stamps the
// matching lifecycle timestamp. Callers persist the order inside their own
// transaction.
func transitionOrder(order *models.Order, newStatus string) error {
	if order.Status == newStatus {
		return utils.NewConflictError("order %s is already %s", order.OrderNumber, newStatus)
	}
	if newStatus == models.OrderStatusCancelled {
		if !models.CanCancelOrder(order.Status) {
			return utils.NewConflictError("order %s cannot be cancelled from status %s", order.OrderNumber, order.Status)
		}
	} else if !models.CanTransitionOrder(order.Status, newStatus) {
		return utils.NewConflictError("invalid order status transition %s -> %s", order.Status, newStatus)
	}

	now := time.Now()
	order.Status = newStatus
	switch newStatus {
	case models.OrderStatusPreparing:
		order.StartedAt = &now
	case models.OrderStatusReady:
		order.ReadyAt = &now
	case models.OrderStatusServed:
		order.ServedAt = &now
	case models.OrderStatusBilled:
		if order.BilledAt == nil {
			order.BilledAt = &now
		}
	case models.OrderStatusPaymentPending:
		order.PaymentRequestedAt = &now
	case models.OrderStatusCompleted:
		order.CompletedAt = &now
	case models.OrderStatusCancelled:
		order.CancelledAt = &now
	}
	return nil
}

// reopenOrder forces the order back to pending after new items arrive, so
// the kitchen has to re-acknowledge. Intentionally non-monotonic.
func reopenOrder(order *models.Order) error {
	if !models.CanReopenOrder(order.Status) {
		return utils.NewConflictError("order %s cannot accept new items in status %s", order.OrderNumber, order.Status)
	}
	order.Status = models.OrderStatusPending
	order.KitchenStatus = models.KitchenStatusPending
	return nil
}

// transitionItem validates and applies an item-status move with its
// preparation timestamps.
func transitionItem(item *models.OrderItem, newStatus string) error {
	if item.Status == newStatus {
		return utils.NewConflictError("item is already %s", models.ItemStatusAlias(newStatus))
	}
	if !models.CanTransitionItem(item.Status, newStatus) {
		return utils.NewConflictError("invalid item status transition %s -> %s", item.Status, newStatus)
	}

	now := time.Now()
	item.Status = newStatus
	switch newStatus {
	case models.ItemStatusPreparing:
		item.StartedAt = &now
	case models.ItemStatusReady:
		item.ReadyAt = &now
	case models.ItemStatusCancelled:
		item.CancelledAt = &now
	}
	return nil
}

// recomputeTotals re-reads the order's non-cancelled items inside tx and
// rewrites subtotal and tax on the order struct. Always called within the
// transaction that commits the new totals, so a stale read never commits a
// stale total.
func recomputeTotals(tx *gorm.DB, order *models.Order) error {
	var items []models.OrderItem
	if err := tx.Where("order_id = ? AND status != ?", order.ID, models.ItemStatusCancelled).
		Find(&items).Error; err != nil {
		return utils.NewInternalError(err)
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(item.TotalPrice))
	}
	tax := subtotal.Mul(TaxRate).Round(2)

	order.Subtotal, _ = subtotal.Round(2).Float64()
	order.Tax, _ = tax.Float64()
	return nil
}

// lineTotal computes quantity * unit price with decimal math.
func lineTotal(unitPrice float64, quantity int) float64 {
	total, _ := decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).Float64()
	return total
}
