package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-workflow/models"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

// Actor identifies the authenticated user performing an operation.
type Actor struct {
	ID   string
	Role string
}

// OrderService implements order intake, item edits and the staff-driven
// order status updates. Every mutating operation is one transaction; fan-out
// runs strictly after commit.
type OrderService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewOrderService(db *gorm.DB, notifier *NotificationService) *OrderService {
	return &OrderService{db: db, notifier: notifier}
}

type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	Notes      string `json:"notes"`
}

type CreateOrderRequest struct {
	TableID             string             `json:"table_id" binding:"required"`
	OrderType           string             `json:"order_type" binding:"required"`
	RestaurantID        *string            `json:"restaurant_id"`
	TargetKitchenID     *string            `json:"target_kitchen_id"`
	ReservationID       *string            `json:"reservation_id"`
	WaiterID            *string            `json:"waiter_id"`
	SpecialInstructions string             `json:"special_instructions"`
	Items               []OrderItemRequest `json:"items" binding:"required"`
}

// CreateOrder validates the request, resolves table/restaurant/kitchen,
// prices items from the current menu and opens the order. The order row,
// item rows and the `assigned` kitchen log commit atomically.
func (s *OrderService) CreateOrder(actor Actor, req CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, utils.NewValidationError("order must contain at least one item")
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, utils.NewValidationError("item quantity must be at least 1")
		}
	}
	if !models.ValidOrderType(req.OrderType) {
		return nil, utils.NewValidationError("unknown order type %q", req.OrderType)
	}

	var table models.Table
	if err := s.db.First(&table, "id = ?", req.TableID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewNotFoundError("table %s not found", req.TableID)
		}
		return nil, utils.NewInternalError(err)
	}
	if !table.IsActive {
		return nil, utils.NewValidationError("table %s is not active", table.TableNumber)
	}

	restaurantID := table.RestaurantID
	if req.RestaurantID != nil {
		restaurantID = *req.RestaurantID
	}
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewNotFoundError("restaurant %s not found", restaurantID)
		}
		return nil, utils.NewInternalError(err)
	}
	if !restaurant.IsActive {
		return nil, utils.NewValidationError("restaurant %s is not active", restaurant.Name)
	}

	kitchenID, err := s.resolveKitchen(req.TargetKitchenID, req.OrderType, &restaurant)
	if err != nil {
		return nil, err
	}

	var customerID *string
	if actor.Role == models.RoleCustomer {
		id := actor.ID
		customerID = &id
	}
	waiterID := req.WaiterID
	if actor.Role == models.RoleWaiter {
		id := actor.ID
		waiterID = &id
	}

	// Customer orders tied to a reservation need a confirmed one for this
	// user/table.
	if req.ReservationID != nil && actor.Role == models.RoleCustomer {
		var reservation models.Reservation
		err := s.db.Where("id = ? AND user_id = ? AND table_id = ? AND status = ?",
			*req.ReservationID, actor.ID, table.ID, models.ReservationStatusConfirmed).
			First(&reservation).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, utils.NewValidationError("no confirmed reservation for this table")
			}
			return nil, utils.NewInternalError(err)
		}
	}

	// Price every item from the current menu before the transaction opens.
	menuItems := make(map[string]models.MenuItem, len(req.Items))
	for _, item := range req.Items {
		if _, seen := menuItems[item.MenuItemID]; seen {
			continue
		}
		var menuItem models.MenuItem
		if err := s.db.First(&menuItem, "id = ?", item.MenuItemID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, utils.NewNotFoundError("menu item %s not found", item.MenuItemID)
			}
			return nil, utils.NewInternalError(err)
		}
		if !menuItem.IsAvailable {
			return nil, utils.NewValidationError("menu item %q is not available", menuItem.Name)
		}
		menuItems[item.MenuItemID] = menuItem
	}

	now := time.Now()
	order := models.Order{
		CustomerID:          customerID,
		TableID:             table.ID,
		ReservationID:       req.ReservationID,
		OrderType:           req.OrderType,
		WaiterID:            waiterID,
		RestaurantID:        restaurant.ID,
		TargetKitchenID:     &kitchenID,
		Status:              models.OrderStatusPending,
		KitchenStatus:       models.KitchenStatusPending,
		SpecialInstructions: req.SpecialInstructions,
		PlacedAt:            now,
		KitchenAssignedAt:   &now,
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, utils.NewInternalError(tx.Error)
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}

	for _, item := range req.Items {
		menuItem := menuItems[item.MenuItemID]
		orderItem := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: menuItem.ID,
			Quantity:   item.Quantity,
			UnitPrice:  menuItem.Price,
			TotalPrice: lineTotal(menuItem.Price, item.Quantity),
			Notes:      item.Notes,
			Status:     models.ItemStatusPending,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			return nil, utils.NewInternalError(err)
		}
	}

	if err := recomputeTotals(tx, &order); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}

	logRow := models.KitchenLog{
		OrderID:   order.ID,
		KitchenID: kitchenID,
		Action:    models.KitchenActionAssigned,
		Note:      fmt.Sprintf("order %s assigned on intake", order.OrderNumber),
	}
	if actor.ID != "" {
		id := actor.ID
		logRow.UserID = &id
	}
	if err := tx.Create(&logRow).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	users := s.kitchenAudience(&order)
	if order.WaiterID != nil {
		users = append(users, *order.WaiterID)
	}
	s.notifier.Fanout(EventNewOrder, orderEventPayload(&order, order.Status, actor),
		users, supervisorRoles, Draft{
			Type:    EventNewOrder,
			Title:   "New order",
			Message: fmt.Sprintf("Order %s placed for table %s", order.OrderNumber, table.TableNumber),
		})

	return s.GetOrder(order.ID)
}

// resolveKitchen implements the target-kitchen resolution chain: caller
// value, then the active bar for bar orders, then the order's own restaurant
// (itself when it has no kitchen capability).
func (s *OrderService) resolveKitchen(callerKitchen *string, orderType string, restaurant *models.Restaurant) (string, error) {
	if callerKitchen != nil {
		var kitchen models.Restaurant
		if err := s.db.First(&kitchen, "id = ?", *callerKitchen).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return "", utils.NewNotFoundError("kitchen %s not found", *callerKitchen)
			}
			return "", utils.NewInternalError(err)
		}
		if !kitchen.IsActive || !kitchen.HasKitchen {
			return "", utils.NewValidationError("restaurant %s cannot receive kitchen orders", kitchen.Name)
		}
		return kitchen.ID, nil
	}

	if orderType == models.OrderTypeBar {
		var bar models.Restaurant
		err := s.db.Where("type = ? AND is_active = ? AND has_kitchen = ?",
			"bar", true, true).First(&bar).Error
		if err == nil {
			return bar.ID, nil
		}
		if err != gorm.ErrRecordNotFound {
			return "", utils.NewInternalError(err)
		}
		// fall through: no bar configured, route to the restaurant
	}

	// A restaurant without kitchen capability is treated as its own kitchen.
	return restaurant.ID, nil
}

// GetOrder loads one order with its items.
func (s *OrderService) GetOrder(orderID string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("OrderItems").First(&order, "id = ?", orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewNotFoundError("order %s not found", orderID)
		}
		return nil, utils.NewInternalError(err)
	}
	return &order, nil
}

// ListOrders returns orders, optionally filtered by status, newest first.
func (s *OrderService) ListOrders(status string) ([]models.Order, error) {
	query := s.db.Preload("OrderItems").Order("placed_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, utils.NewInternalError(err)
	}
	return orders, nil
}

// KitchenDisplay lists the orders a kitchen is currently working, oldest
// first.
func (s *OrderService) KitchenDisplay(kitchenID string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("OrderItems").
		Where("target_kitchen_id = ? AND status IN ?", kitchenID,
			[]string{models.OrderStatusPending, models.OrderStatusPreparing, models.OrderStatusReady}).
		Order("placed_at asc").
		Find(&orders).Error; err != nil {
		return nil, utils.NewInternalError(err)
	}
	return orders, nil
}

// UpdateOrderStatus applies an explicit staff transition (preparing -> ready
// -> served, or cancellation) through the state machine. Acceptance, billing,
// payment and completion each have their own operation and cannot be reached
// from here.
func (s *OrderService) UpdateOrderStatus(actor Actor, orderID, newStatus string) (*models.Order, error) {
	switch newStatus {
	case models.OrderStatusReady, models.OrderStatusServed, models.OrderStatusCancelled:
	default:
		return nil, utils.NewConflictError("order status %s cannot be set directly", newStatus)
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, utils.NewInternalError(tx.Error)
	}

	var order models.Order
	if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewNotFoundError("order %s not found", orderID)
		}
		return nil, utils.NewInternalError(err)
	}

	if err := transitionOrder(&order, newStatus); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := recomputeTotals(tx, &order); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	s.notifyOrderEvent(EventOrderStatusUpdate, &order, order.Status, actor,
		fmt.Sprintf("Order %s is now %s", order.OrderNumber, order.Status))
	return &order, nil
}

type AddItemsRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required"`
}

// AddItems appends priced items to an existing order and reopens it to
// pending so the kitchen re-acknowledges the new work.
func (s *OrderService) AddItems(actor Actor, orderID string, req AddItemsRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, utils.NewValidationError("no items provided")
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, utils.NewValidationError("item quantity must be at least 1")
		}
	}

	menuItems := make(map[string]models.MenuItem, len(req.Items))
	for _, item := range req.Items {
		if _, seen := menuItems[item.MenuItemID]; seen {
			continue
		}
		var menuItem models.MenuItem
		if err := s.db.First(&menuItem, "id = ?", item.MenuItemID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, utils.NewNotFoundError("menu item %s not found", item.MenuItemID)
			}
			return nil, utils.NewInternalError(err)
		}
		if !menuItem.IsAvailable {
			return nil, utils.NewValidationError("menu item %q is not available", menuItem.Name)
		}
		menuItems[item.MenuItemID] = menuItem
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, utils.NewInternalError(tx.Error)
	}

	var order models.Order
	if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewNotFoundError("order %s not found", orderID)
		}
		return nil, utils.NewInternalError(err)
	}

	if err := reopenOrder(&order); err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, item := range req.Items {
		menuItem := menuItems[item.MenuItemID]
		orderItem := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: menuItem.ID,
			Quantity:   item.Quantity,
			UnitPrice:  menuItem.Price,
			TotalPrice: lineTotal(menuItem.Price, item.Quantity),
			Notes:      item.Notes,
			Status:     models.ItemStatusPending,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			return nil, utils.NewInternalError(err)
		}
	}

	if err := recomputeTotals(tx, &order); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	s.notifyOrderEvent(EventOrderUpdate, &order, order.Status, actor,
		fmt.Sprintf("Order %s has new items and is back in the queue", order.OrderNumber))
	return s.GetOrder(order.ID)
}

type UpdateItemRequest struct {
	Quantity *int    `json:"quantity"`
	Notes    *string `json:"notes"`
}

// UpdateItem edits quantity/notes of an item that is still pending.
// Once preparation has started the item is immutable.
func (s *OrderService) UpdateItem(actor Actor, orderID, itemID string, req UpdateItemRequest) (*models.OrderItem, error) {
	if req.Quantity != nil && *req.Quantity < 1 {
		return nil, utils.NewValidationError("item quantity must be at least 1")
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, utils.NewInternalError(tx.Error)
	}

	order, item, err := s.lockOrderItem(tx, orderID, itemID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if item.Status != models.ItemStatusPending {
		tx.Rollback()
		return nil, utils.NewConflictError("item can no longer be edited, preparation has started")
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
		item.TotalPrice = lineTotal(item.UnitPrice, item.Quantity)
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if err := tx.Save(item).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}

	if err := recomputeTotals(tx, order); err != nil {
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

	s.notifyOrderEvent(EventOrderItemUpdate, order, item.Status, actor,
		fmt.Sprintf("Order %s item updated", order.OrderNumber))
	return item, nil
}

// DeleteItem removes an item that is still pending. When nothing non-
// cancelled remains the order cancels itself.
func (s *OrderService) DeleteItem(actor Actor, orderID, itemID string) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return utils.NewInternalError(tx.Error)
	}

	order, item, err := s.lockOrderItem(tx, orderID, itemID)
	if err != nil {
		tx.Rollback()
		return err
	}
	if item.Status != models.ItemStatusPending {
		tx.Rollback()
		return utils.NewConflictError("item can no longer be removed, preparation has started")
	}

	if err := tx.Delete(item).Error; err != nil {
		tx.Rollback()
		return utils.NewInternalError(err)
	}

	orderCancelled, err := s.settleAfterItemRemoval(tx, order)
	if err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return utils.NewInternalError(err)
	}

	s.notifyOrderEvent(EventOrderItemDelete, order, item.Status, actor,
		fmt.Sprintf("Order %s item removed", order.OrderNumber))
	if orderCancelled {
		s.notifyOrderEvent(EventOrderStatusUpdate, order, models.OrderStatusCancelled, actor,
			fmt.Sprintf("Order %s cancelled, no items left", order.OrderNumber))
	}
	return nil
}

// CancelItem cancels an item with a reason. Allowed from pending/preparing
// only. Cancelling the last remaining item auto-cancels the order.
func (s *OrderService) CancelItem(actor Actor, orderID, itemID, reason string) (*models.OrderItem, error) {
	if reason == "" {
		return nil, utils.NewValidationError("cancellation reason is required")
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, utils.NewInternalError(tx.Error)
	}

	order, item, err := s.lockOrderItem(tx, orderID, itemID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := transitionItem(item, models.ItemStatusCancelled); err != nil {
		tx.Rollback()
		return nil, err
	}
	actorID := actor.ID
	item.CancelledByID = &actorID
	item.CancelReason = &reason
	if err := tx.Save(item).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}

	orderCancelled, err := s.settleAfterItemRemoval(tx, order)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	s.notifyOrderEvent(EventOrderItemStatusUpdate, order, item.Status, actor,
		fmt.Sprintf("Order %s item cancelled: %s", order.OrderNumber, reason))
	if orderCancelled {
		s.notifyOrderEvent(EventOrderStatusUpdate, order, models.OrderStatusCancelled, actor,
			fmt.Sprintf("Order %s cancelled, all items cancelled", order.OrderNumber))
	}
	return item, nil
}

// UpdateItemStatus moves one item through its preparation lifecycle. Accepts
// the external aliases (`accepted`, `ready_to_serve`) and stores canonical
// values. When every remaining item is ready, a preparing order moves to
// ready.
func (s *OrderService) UpdateItemStatus(actor Actor, orderID, itemID, status string) (*models.OrderItem, error) {
	canonical, ok := models.CanonicalItemStatus(status)
	if !ok {
		return nil, utils.NewValidationError("unknown item status %q", status)
	}
	if canonical == models.ItemStatusCancelled {
		return nil, utils.NewValidationError("use the cancel endpoint to cancel an item")
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, utils.NewInternalError(tx.Error)
	}

	order, item, err := s.lockOrderItem(tx, orderID, itemID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := transitionItem(item, canonical); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Save(item).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}

	orderReady := false
	if canonical == models.ItemStatusReady && order.Status == models.OrderStatusPreparing {
		var notReady int64
		if err := tx.Model(&models.OrderItem{}).
			Where("order_id = ? AND status NOT IN ?", order.ID,
				[]string{models.ItemStatusReady, models.ItemStatusCancelled}).
			Count(&notReady).Error; err != nil {
			tx.Rollback()
			return nil, utils.NewInternalError(err)
		}
		if notReady == 0 {
			if err := transitionOrder(order, models.OrderStatusReady); err != nil {
				tx.Rollback()
				return nil, err
			}
			orderReady = true
		}
	}

	if err := recomputeTotals(tx, order); err != nil {
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

	s.notifyOrderEvent(EventOrderItemStatusUpdate, order, models.ItemStatusAlias(item.Status), actor,
		fmt.Sprintf("Order %s item is %s", order.OrderNumber, item.Status))
	if orderReady {
		s.notifyOrderEvent(EventOrderStatusUpdate, order, order.Status, actor,
			fmt.Sprintf("Order %s is ready to serve", order.OrderNumber))
	}
	return item, nil
}

// lockOrderItem loads the order and one of its items inside tx.
func (s *OrderService) lockOrderItem(tx *gorm.DB, orderID, itemID string) (*models.Order, *models.OrderItem, error) {
	var order models.Order
	if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, utils.NewNotFoundError("order %s not found", orderID)
		}
		return nil, nil, utils.NewInternalError(err)
	}
	var item models.OrderItem
	if err := tx.First(&item, "id = ? AND order_id = ?", itemID, orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, utils.NewNotFoundError("item %s not found on order %s", itemID, order.OrderNumber)
		}
		return nil, nil, utils.NewInternalError(err)
	}
	return &order, &item, nil
}

// settleAfterItemRemoval recomputes totals and auto-cancels the order when
// no non-cancelled items remain. Returns whether the order was cancelled.
func (s *OrderService) settleAfterItemRemoval(tx *gorm.DB, order *models.Order) (bool, error) {
	var remaining int64
	if err := tx.Model(&models.OrderItem{}).
		Where("order_id = ? AND status != ?", order.ID, models.ItemStatusCancelled).
		Count(&remaining).Error; err != nil {
		return false, utils.NewInternalError(err)
	}

	cancelled := false
	if remaining == 0 && models.CanCancelOrder(order.Status) {
		if err := transitionOrder(order, models.OrderStatusCancelled); err != nil {
			return false, err
		}
		cancelled = true
	}

	if err := recomputeTotals(tx, order); err != nil {
		return false, err
	}
	if err := tx.Save(order).Error; err != nil {
		return false, utils.NewInternalError(err)
	}
	return cancelled, nil
}

// notifyOrderEvent fans one order event out to the order's customer, waiter
// and the staff of its current kitchen. Staff of other kitchens stay quiet.
func (s *OrderService) notifyOrderEvent(event string, order *models.Order, value string, actor Actor, message string) {
	users := s.kitchenAudience(order)
	if order.CustomerID != nil {
		users = append(users, *order.CustomerID)
	}
	if order.WaiterID != nil {
		users = append(users, *order.WaiterID)
	}
	s.notifier.Fanout(event, orderEventPayload(order, value, actor),
		users, supervisorRoles, Draft{
			Type:    event,
			Title:   "Order update",
			Message: message,
		})
}

// kitchenAudience resolves the staff user ids of the order's current kitchen.
func (s *OrderService) kitchenAudience(order *models.Order) []string {
	if order.TargetKitchenID == nil {
		return nil
	}
	ids, err := s.notifier.KitchenCohort(*order.TargetKitchenID)
	if err != nil {
		utils.ErrorLogger.Printf("resolve kitchen staff for order %s: %v", order.OrderNumber, err)
		return nil
	}
	return ids
}

// orderEventPayload carries the minimum every live event needs: order id,
// order number, the new status/action and the acting user.
func orderEventPayload(order *models.Order, value string, actor Actor) map[string]interface{} {
	return map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"status":       value,
		"actor_id":     actor.ID,
		"actor_role":   actor.Role,
	}
}
