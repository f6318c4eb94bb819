package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-workflow/models"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

// readyOrder walks one order through accept and item preparation so billing
// starts from a ready state.
func readyOrder(t *testing.T, f *fixture, orders *OrderService, kitchens *KitchenService) *models.Order {
	t.Helper()
	order := f.placeOrder(t, orders)
	if _, err := kitchens.Accept(f.chefActor(), f.restaurant.ID, order.ID, AcceptRequest{}); err != nil {
		t.Fatalf("accept: %v", err)
	}
	for _, item := range order.OrderItems {
		if _, err := orders.UpdateItemStatus(f.chefActor(), order.ID, item.ID, models.ItemStatusPreparing); err != nil {
			t.Fatalf("item preparing: %v", err)
		}
		if _, err := orders.UpdateItemStatus(f.chefActor(), order.ID, item.ID, models.ItemStatusReady); err != nil {
			t.Fatalf("item ready: %v", err)
		}
	}
	ready, err := orders.GetOrder(order.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if ready.Status != models.OrderStatusReady {
		t.Fatalf("expected ready order, got %s", ready.Status)
	}
	return ready
}

func TestIssueBillSnapshotsTotals(t *testing.T) {
	f, orders, kitchens, billing, _ := newTestServices(t)
	order := readyOrder(t, f, orders, kitchens)

	bill, err := billing.IssueBill(f.waiterActor(), order.ID, IssueBillRequest{
		ServiceCharge: 10,
		Discount:      4,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, bill.BillNumber)
	assert.InDelta(t, 200.0, bill.Subtotal, 0.001)
	assert.InDelta(t, 24.0, bill.Tax, 0.001)
	// 200 + 24 + 10 - 4
	assert.InDelta(t, 230.0, bill.Total, 0.001)
	assert.Equal(t, f.waiter.ID, *bill.IssuedByID)

	reloaded, err := orders.GetOrder(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusBilled, reloaded.Status)
	assert.NotNil(t, reloaded.BilledAt)

	fetched, err := billing.GetBill(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, bill.ID, fetched.ID)
}

func TestIssueBillOnlyOnce(t *testing.T) {
	f, orders, kitchens, billing, _ := newTestServices(t)
	order := readyOrder(t, f, orders, kitchens)

	_, err := billing.IssueBill(f.waiterActor(), order.ID, IssueBillRequest{})
	assert.NoError(t, err)

	_, err = billing.IssueBill(f.waiterActor(), order.ID, IssueBillRequest{})
	assert.Equal(t, utils.CodeConflict, utils.AsAppError(err).Code)

	var count int64
	assert.NoError(t, f.db.Model(&models.Bill{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIssueBillOnlyReadyOrServed(t *testing.T) {
	f, orders, _, billing, _ := newTestServices(t)
	order := f.placeOrder(t, orders)

	_, err := billing.IssueBill(f.waiterActor(), order.ID, IssueBillRequest{})
	assert.Equal(t, utils.CodeConflict, utils.AsAppError(err).Code)

	_, err = billing.IssueBill(f.waiterActor(), order.ID, IssueBillRequest{ServiceCharge: -1})
	assert.Equal(t, utils.CodeValidation, utils.AsAppError(err).Code)
}

func TestRequestPaymentOnlyWhenBilled(t *testing.T) {
	f, orders, kitchens, billing, _ := newTestServices(t)
	order := readyOrder(t, f, orders, kitchens)

	_, err := billing.RequestPayment(f.waiterActor(), order.ID)
	assert.Equal(t, utils.CodeConflict, utils.AsAppError(err).Code)

	_, err = billing.IssueBill(f.waiterActor(), order.ID, IssueBillRequest{})
	assert.NoError(t, err)

	updated, err := billing.RequestPayment(f.waiterActor(), order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaymentPending, updated.Status)
	assert.NotNil(t, updated.PaymentRequestedAt)
}

func TestMapGatewayStatus(t *testing.T) {
	assert.Equal(t, models.PaymentStatusCompleted, MapGatewayStatus("settlement"))
	assert.Equal(t, models.PaymentStatusCompleted, MapGatewayStatus("SUCCESS"))
	assert.Equal(t, models.PaymentStatusCompleted, MapGatewayStatus("capture"))
	assert.Equal(t, models.PaymentStatusPending, MapGatewayStatus("pending"))
	assert.Equal(t, models.PaymentStatusCancelled, MapGatewayStatus("expire"))
	assert.Equal(t, models.PaymentStatusFailed, MapGatewayStatus("deny"))
	assert.Equal(t, models.PaymentStatusFailed, MapGatewayStatus(""))
}

func TestGatewayCallbackSuccess(t *testing.T) {
	f, orders, kitchens, billing, pub := newTestServices(t)
	order := readyOrder(t, f, orders, kitchens)
	_, err := billing.IssueBill(f.waiterActor(), order.ID, IssueBillRequest{})
	assert.NoError(t, err)
	_, err = billing.RequestPayment(f.waiterActor(), order.ID)
	assert.NoError(t, err)

	payment, err := billing.HandleGatewayCallback(GatewayCallback{
		OrderID:       order.ID,
		TransactionID: "TX-1001",
		Amount:        224,
		GatewayStatus: "settlement",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, payment.Status)
	assert.NotNil(t, payment.PaidAt)

	reloaded, err := orders.GetOrder(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, reloaded.Status)

	events := pub.Events()
	assert.Equal(t, EventPaymentStatusUpdate, events[len(events)-1].Event)
}

func TestGatewayCallbackFailureReturnsToBilled(t *testing.T) {
	f, orders, kitchens, billing, _ := newTestServices(t)
	order := readyOrder(t, f, orders, kitchens)
	_, err := billing.IssueBill(f.waiterActor(), order.ID, IssueBillRequest{})
	assert.NoError(t, err)
	_, err = billing.RequestPayment(f.waiterActor(), order.ID)
	assert.NoError(t, err)

	payment, err := billing.HandleGatewayCallback(GatewayCallback{
		OrderID:       order.ID,
		TransactionID: "TX-2001",
		GatewayStatus: "deny",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, payment.Status)
	assert.Nil(t, payment.PaidAt)

	// order kembali ke billed agar bisa dicoba lagi
	reloaded, err := orders.GetOrder(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusBilled, reloaded.Status)

	_, err = billing.RequestPayment(f.waiterActor(), order.ID)
	assert.NoError(t, err)
}

func TestGatewayCallbackReplayIsIdempotent(t *testing.T) {
	f, orders, kitchens, billing, _ := newTestServices(t)
	order := readyOrder(t, f, orders, kitchens)
	_, err := billing.IssueBill(f.waiterActor(), order.ID, IssueBillRequest{})
	assert.NoError(t, err)
	_, err = billing.RequestPayment(f.waiterActor(), order.ID)
	assert.NoError(t, err)

	cb := GatewayCallback{
		OrderID:       order.ID,
		TransactionID: "TX-3001",
		Amount:        224,
		GatewayStatus: "success",
	}
	first, err := billing.HandleGatewayCallback(cb)
	assert.NoError(t, err)

	replay, err := billing.HandleGatewayCallback(cb)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, replay.ID)
	assert.Equal(t, first.PaidAt.Unix(), replay.PaidAt.Unix())

	var count int64
	assert.NoError(t, f.db.Model(&models.Payment{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	reloaded, err := orders.GetOrder(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, reloaded.Status)
}

func TestGatewayCallbackSuccessOnWrongStatus(t *testing.T) {
	f, orders, kitchens, billing, _ := newTestServices(t)
	order := readyOrder(t, f, orders, kitchens)

	// sukses untuk order yang belum ditagih adalah konflik
	_, err := billing.HandleGatewayCallback(GatewayCallback{
		OrderID:       order.ID,
		TransactionID: "TX-4001",
		GatewayStatus: "success",
	})
	assert.Equal(t, utils.CodeConflict, utils.AsAppError(err).Code)
}

func TestCompleteClosesPaidOrder(t *testing.T) {
	f, orders, kitchens, billing, _ := newTestServices(t)
	order := readyOrder(t, f, orders, kitchens)
	_, err := billing.IssueBill(f.waiterActor(), order.ID, IssueBillRequest{})
	assert.NoError(t, err)
	_, err = billing.RequestPayment(f.waiterActor(), order.ID)
	assert.NoError(t, err)
	_, err = billing.HandleGatewayCallback(GatewayCallback{
		OrderID:       order.ID,
		TransactionID: "TX-5001",
		GatewayStatus: "settlement",
	})
	assert.NoError(t, err)

	completed, err := billing.Complete(f.waiterActor(), order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	// terminal: tidak ada transisi lagi
	_, err = billing.Complete(f.waiterActor(), order.ID)
	assert.Equal(t, utils.CodeConflict, utils.AsAppError(err).Code)
}

func TestCompleteServedOrderForCashFlows(t *testing.T) {
	f, orders, kitchens, billing, _ := newTestServices(t)
	order := readyOrder(t, f, orders, kitchens)

	_, err := orders.UpdateOrderStatus(f.waiterActor(), order.ID, models.OrderStatusServed)
	assert.NoError(t, err)

	completed, err := billing.Complete(f.waiterActor(), order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, completed.Status)
}
