package services

// Live event names pushed to connected clients.
const (
	EventNewOrder              = "new-order"
	EventOrderUpdate           = "order-update"
	EventOrderStatusUpdate     = "order-status-update"
	EventOrderItemStatusUpdate = "order-item-status-update"
	EventOrderItemUpdate       = "order-item-update"
	EventOrderItemDelete       = "order-item-delete"
	EventKitchenOrderAction    = "kitchen-order-action"
	EventPaymentStatusUpdate   = "payment-status-update"
)

// Audience selects the recipients of a live event: specific users, specific
// roles, or both.
type Audience struct {
	UserIDs []string
	Roles   []string
}

// Publisher pushes a live event to every currently-connected session in the
// audience. Push is fire-and-forget: implementations must not block on slow
// clients, and a failed delivery is recovered by the persisted notification
// rows on reconnect.
type Publisher interface {
	Notify(event string, payload interface{}, audience Audience)
}

// NopPublisher discards every event; used when no realtime transport is
// wired (and in tests that don't care about push).
type NopPublisher struct{}

func (NopPublisher) Notify(event string, payload interface{}, audience Audience) {}
