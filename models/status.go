package models

// Order status lifecycle (customer facing)
const (
	OrderStatusPending        = "pending"
	OrderStatusPreparing      = "preparing"
	OrderStatusReady          = "ready"
	OrderStatusServed         = "served"
	OrderStatusBilled         = "billed"
	OrderStatusPaymentPending = "payment_pending"
	OrderStatusPaid           = "paid"
	OrderStatusCompleted      = "completed"
	OrderStatusCancelled      = "cancelled"
)

// Item status lifecycle
const (
	ItemStatusPending   = "pending"
	ItemStatusPreparing = "preparing"
	ItemStatusReady     = "ready"
	ItemStatusCancelled = "cancelled"
)

// Kitchen routing handshake status (independent from order status)
const (
	KitchenStatusPending     = "pending"
	KitchenStatusAccepted    = "accepted"
	KitchenStatusRejected    = "rejected"
	KitchenStatusTransferred = "transferred"
)

// Kitchen log actions
const (
	KitchenActionAssigned    = "assigned"
	KitchenActionAccepted    = "accepted"
	KitchenActionRejected    = "rejected"
	KitchenActionTransferred = "transferred"
)

// Order types
const (
	OrderTypeDineIn      = "dine_in"
	OrderTypeBar         = "bar"
	OrderTypeRoomService = "room_service"
	OrderTypeTakeaway    = "takeaway"
)

// Roles
const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleWaiter    = "waiter"
	RoleChef      = "chef"
	RoleBartender = "bartender"
	RoleCustomer  = "customer"
)

// Payment status vocabulary after gateway mapping
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
)

// orderTransitions lists every legal order-status move. The reopen-on-add
// rule (any pre-served status back to pending) is handled separately in
// CanReopenOrder because it is intentionally non-monotonic.
var orderTransitions = map[string][]string{
	OrderStatusPending:        {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:      {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:          {OrderStatusServed, OrderStatusBilled, OrderStatusCancelled},
	OrderStatusServed:         {OrderStatusBilled, OrderStatusCompleted},
	OrderStatusBilled:         {OrderStatusPaymentPending},
	OrderStatusPaymentPending: {OrderStatusPaid, OrderStatusBilled},
	OrderStatusPaid:           {OrderStatusCompleted},
	OrderStatusCompleted:      {},
	OrderStatusCancelled:      {},
}

var itemTransitions = map[string][]string{
	ItemStatusPending:   {ItemStatusPreparing, ItemStatusCancelled},
	ItemStatusPreparing: {ItemStatusReady, ItemStatusCancelled},
	ItemStatusReady:     {},
	ItemStatusCancelled: {},
}

// itemStatusAliases maps the external item-status vocabulary onto the
// canonical values stored in the database. Stable contract boundary: callers
// may send either form, reads always return the canonical one.
var itemStatusAliases = map[string]string{
	"accepted":       ItemStatusPreparing,
	"ready_to_serve": ItemStatusReady,
}

// canonicalItemAliases is the reverse lookup, canonical -> external alias.
var canonicalItemAliases = map[string]string{
	ItemStatusPreparing: "accepted",
	ItemStatusReady:     "ready_to_serve",
}

// CanTransitionOrder reports whether an order may move from -> to.
func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionItem reports whether an item may move from -> to.
func CanTransitionItem(from, to string) bool {
	for _, next := range itemTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanReopenOrder reports whether adding items may force the order back to
// pending. Allowed for every status before served; served, completed and
// cancelled orders stay closed.
func CanReopenOrder(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady:
		return true
	}
	return false
}

// CanCancelOrder reports whether the order may still be cancelled
// (any pre-served state).
func CanCancelOrder(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady:
		return true
	}
	return false
}

// CanonicalItemStatus resolves an external status value (canonical or alias)
// to its canonical form. ok is false for unknown values.
func CanonicalItemStatus(s string) (string, bool) {
	if canonical, found := itemStatusAliases[s]; found {
		return canonical, true
	}
	switch s {
	case ItemStatusPending, ItemStatusPreparing, ItemStatusReady, ItemStatusCancelled:
		return s, true
	}
	return "", false
}

// ItemStatusAlias returns the external alias for a canonical item status,
// or the status itself when no alias exists.
func ItemStatusAlias(canonical string) string {
	if alias, found := canonicalItemAliases[canonical]; found {
		return alias
	}
	return canonical
}

// ValidOrderType reports whether t is a recognized order type.
func ValidOrderType(t string) bool {
	switch t {
	case OrderTypeDineIn, OrderTypeBar, OrderTypeRoomService, OrderTypeTakeaway:
		return true
	}
	return false
}

// IsKitchenRole reports whether the role may act on behalf of a kitchen.
func IsKitchenRole(role string) bool {
	return role == RoleChef || role == RoleBartender
}

// IsSupervisorRole reports whether the role bypasses kitchen membership
// checks and is always included in role-cohort notifications.
func IsSupervisorRole(role string) bool {
	return role == RoleAdmin || role == RoleManager
}
