package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderTransitions(t *testing.T) {
	// jalur normal dine-in sampai selesai
	assert.True(t, CanTransitionOrder(OrderStatusPending, OrderStatusPreparing))
	assert.True(t, CanTransitionOrder(OrderStatusPreparing, OrderStatusReady))
	assert.True(t, CanTransitionOrder(OrderStatusReady, OrderStatusServed))
	assert.True(t, CanTransitionOrder(OrderStatusServed, OrderStatusBilled))
	assert.True(t, CanTransitionOrder(OrderStatusBilled, OrderStatusPaymentPending))
	assert.True(t, CanTransitionOrder(OrderStatusPaymentPending, OrderStatusPaid))
	assert.True(t, CanTransitionOrder(OrderStatusPaid, OrderStatusCompleted))

	// tagihan bisa langsung dari ready, dan payment boleh kembali ke billed
	assert.True(t, CanTransitionOrder(OrderStatusReady, OrderStatusBilled))
	assert.True(t, CanTransitionOrder(OrderStatusPaymentPending, OrderStatusBilled))
	assert.True(t, CanTransitionOrder(OrderStatusServed, OrderStatusCompleted))

	// tidak boleh melompat atau mundur
	assert.False(t, CanTransitionOrder(OrderStatusPending, OrderStatusReady))
	assert.False(t, CanTransitionOrder(OrderStatusPreparing, OrderStatusPending))
	assert.False(t, CanTransitionOrder(OrderStatusBilled, OrderStatusPaid))
	assert.False(t, CanTransitionOrder(OrderStatusCompleted, OrderStatusPending))
	assert.False(t, CanTransitionOrder(OrderStatusCancelled, OrderStatusPending))
}

func TestCancelOnlyBeforeServed(t *testing.T) {
	assert.True(t, CanCancelOrder(OrderStatusPending))
	assert.True(t, CanCancelOrder(OrderStatusPreparing))
	assert.True(t, CanCancelOrder(OrderStatusReady))

	assert.False(t, CanCancelOrder(OrderStatusServed))
	assert.False(t, CanCancelOrder(OrderStatusBilled))
	assert.False(t, CanCancelOrder(OrderStatusPaid))
	assert.False(t, CanCancelOrder(OrderStatusCompleted))
	assert.False(t, CanCancelOrder(OrderStatusCancelled))
}

func TestReopenOnlyBeforeServed(t *testing.T) {
	assert.True(t, CanReopenOrder(OrderStatusPending))
	assert.True(t, CanReopenOrder(OrderStatusPreparing))
	assert.True(t, CanReopenOrder(OrderStatusReady))

	assert.False(t, CanReopenOrder(OrderStatusServed))
	assert.False(t, CanReopenOrder(OrderStatusBilled))
	assert.False(t, CanReopenOrder(OrderStatusCancelled))
	assert.False(t, CanReopenOrder(OrderStatusCompleted))
}

func TestItemTransitions(t *testing.T) {
	assert.True(t, CanTransitionItem(ItemStatusPending, ItemStatusPreparing))
	assert.True(t, CanTransitionItem(ItemStatusPreparing, ItemStatusReady))
	assert.True(t, CanTransitionItem(ItemStatusPending, ItemStatusCancelled))
	assert.True(t, CanTransitionItem(ItemStatusPreparing, ItemStatusCancelled))

	// ready dan cancelled bersifat terminal
	assert.False(t, CanTransitionItem(ItemStatusReady, ItemStatusCancelled))
	assert.False(t, CanTransitionItem(ItemStatusReady, ItemStatusPreparing))
	assert.False(t, CanTransitionItem(ItemStatusCancelled, ItemStatusPending))
	assert.False(t, CanTransitionItem(ItemStatusPending, ItemStatusReady))
}

func TestItemStatusAliases(t *testing.T) {
	canonical, ok := CanonicalItemStatus("accepted")
	assert.True(t, ok)
	assert.Equal(t, ItemStatusPreparing, canonical)

	canonical, ok = CanonicalItemStatus("ready_to_serve")
	assert.True(t, ok)
	assert.Equal(t, ItemStatusReady, canonical)

	// nilai kanonik juga diterima apa adanya
	canonical, ok = CanonicalItemStatus(ItemStatusPreparing)
	assert.True(t, ok)
	assert.Equal(t, ItemStatusPreparing, canonical)

	_, ok = CanonicalItemStatus("plated")
	assert.False(t, ok)

	// arah sebaliknya untuk tampilan eksternal
	assert.Equal(t, "accepted", ItemStatusAlias(ItemStatusPreparing))
	assert.Equal(t, "ready_to_serve", ItemStatusAlias(ItemStatusReady))
	assert.Equal(t, ItemStatusPending, ItemStatusAlias(ItemStatusPending))
	assert.Equal(t, ItemStatusCancelled, ItemStatusAlias(ItemStatusCancelled))
}

func TestValidOrderType(t *testing.T) {
	for _, typ := range []string{OrderTypeDineIn, OrderTypeBar, OrderTypeRoomService, OrderTypeTakeaway} {
		assert.True(t, ValidOrderType(typ))
	}
	assert.False(t, ValidOrderType("delivery"))
	assert.False(t, ValidOrderType(""))
}

func TestRoleHelpers(t *testing.T) {
	assert.True(t, IsKitchenRole(RoleChef))
	assert.True(t, IsKitchenRole(RoleBartender))
	assert.False(t, IsKitchenRole(RoleWaiter))

	assert.True(t, IsSupervisorRole(RoleAdmin))
	assert.True(t, IsSupervisorRole(RoleManager))
	assert.False(t, IsSupervisorRole(RoleChef))
	assert.False(t, IsSupervisorRole(RoleCustomer))
}
