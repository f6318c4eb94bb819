package services

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-workflow/models"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

// KitchenService implements the kitchen routing protocol: assign, accept,
// reject and transfer. Every action appends a KitchenLog row in the same
// transaction that mutates the order.
type KitchenService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewKitchenService(db *gorm.DB, notifier *NotificationService) *KitchenService {
	return &KitchenService{db: db, notifier: notifier}
}

// Assign routes the order to a kitchen and resets the routing handshake.
func (s *KitchenService) Assign(actor Actor, orderID, kitchenID string) (*models.Order, error) {
	kitchen, err := s.loadKitchen(kitchenID)
	if err != nil {
		return nil, err
	}
	if err := s.requireKitchenAccess(actor, kitchen.ID); err != nil {
		return nil, err
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

	now := time.Now()
	order.TargetKitchenID = &kitchen.ID
	order.KitchenStatus = models.KitchenStatusPending
	order.KitchenAssignedAt = &now
	if err := tx.Save(order).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}

	if err := s.appendLog(tx, order.ID, kitchen.ID, models.KitchenActionAssigned, actor,
		fmt.Sprintf("order %s assigned to %s", order.OrderNumber, kitchen.Name)); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	s.notifyKitchenAction(order, models.KitchenActionAssigned, actor)
	return order, nil
}

type AcceptRequest struct {
	EstimatedPrepMinutes *int   `json:"estimated_prep_minutes"`
	Notes                string `json:"notes"`
}

// Accept moves a pending order to preparing. Kitchen notes are appended,
// never overwritten.
func (s *KitchenService) Accept(actor Actor, kitchenID, orderID string, req AcceptRequest) (*models.Order, error) {
	if err := s.requireKitchenAccess(actor, kitchenID); err != nil {
		return nil, err
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
	if order.Status != models.OrderStatusPending {
		tx.Rollback()
		return nil, utils.NewConflictError("order %s is %s, only pending orders can be accepted",
			order.OrderNumber, order.Status)
	}

	if err := transitionOrder(order, models.OrderStatusPreparing); err != nil {
		tx.Rollback()
		return nil, err
	}
	now := time.Now()
	order.KitchenStatus = models.KitchenStatusAccepted
	order.KitchenAcceptedAt = &now
	if req.EstimatedPrepMinutes != nil {
		order.EstimatedPrepMinutes = req.EstimatedPrepMinutes
	}
	if req.Notes != "" {
		order.KitchenNotes = appendNote(order.KitchenNotes, req.Notes)
	}
	if err := recomputeTotals(tx, order); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Save(order).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}

	if err := s.appendLog(tx, order.ID, kitchenID, models.KitchenActionAccepted, actor, req.Notes); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	s.notifyKitchenAction(order, models.KitchenActionAccepted, actor)
	return order, nil
}

// Reject cancels a pending or preparing order with a mandatory reason. The
// reason is appended to the order's special instructions.
func (s *KitchenService) Reject(actor Actor, kitchenID, orderID, reason string) (*models.Order, error) {
	if reason == "" {
		return nil, utils.NewValidationError("rejection reason is required")
	}
	if err := s.requireKitchenAccess(actor, kitchenID); err != nil {
		return nil, err
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
	if order.Status != models.OrderStatusPending && order.Status != models.OrderStatusPreparing {
		tx.Rollback()
		return nil, utils.NewConflictError("order %s is %s, only pending or preparing orders can be rejected",
			order.OrderNumber, order.Status)
	}

	if err := transitionOrder(order, models.OrderStatusCancelled); err != nil {
		tx.Rollback()
		return nil, err
	}
	now := time.Now()
	order.KitchenStatus = models.KitchenStatusRejected
	order.KitchenRejectedAt = &now
	order.SpecialInstructions = appendNote(order.SpecialInstructions,
		fmt.Sprintf("kitchen rejected: %s", reason))
	if err := recomputeTotals(tx, order); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Save(order).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}

	if err := s.appendLog(tx, order.ID, kitchenID, models.KitchenActionRejected, actor, reason); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	s.notifyKitchenAction(order, models.KitchenActionRejected, actor)
	return order, nil
}

// Transfer moves the order to a different active, kitchen-capable restaurant
// and resets the routing handshake. Order status is untouched: a preparing
// order stays preparing under its new kitchen.
func (s *KitchenService) Transfer(actor Actor, orderID, toKitchenID, reason string) (*models.Order, error) {
	target, err := s.loadKitchen(toKitchenID)
	if err != nil {
		return nil, err
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
	if order.TargetKitchenID == nil {
		tx.Rollback()
		return nil, utils.NewConflictError("order %s has no kitchen to transfer from", order.OrderNumber)
	}
	fromKitchenID := *order.TargetKitchenID
	if fromKitchenID == target.ID {
		tx.Rollback()
		return nil, utils.NewValidationError("order %s is already assigned to that kitchen", order.OrderNumber)
	}
	if err := s.requireKitchenAccess(actor, fromKitchenID); err != nil {
		tx.Rollback()
		return nil, err
	}

	now := time.Now()
	order.TargetKitchenID = &target.ID
	order.KitchenStatus = models.KitchenStatusPending
	order.KitchenAssignedAt = &now
	order.KitchenAcceptedAt = nil
	order.KitchenRejectedAt = nil
	order.KitchenNotes = ""
	if err := tx.Save(order).Error; err != nil {
		tx.Rollback()
		return nil, utils.NewInternalError(err)
	}

	note := fmt.Sprintf("transferred from kitchen %s: %s", fromKitchenID, reason)
	if err := s.appendLog(tx, order.ID, target.ID, models.KitchenActionTransferred, actor, note); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	s.notifyKitchenAction(order, models.KitchenActionTransferred, actor)
	return order, nil
}

// Logs returns the append-only audit trail for one order, oldest first.
func (s *KitchenService) Logs(orderID string) ([]models.KitchenLog, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewNotFoundError("order %s not found", orderID)
		}
		return nil, utils.NewInternalError(err)
	}

	var logs []models.KitchenLog
	if err := s.db.Where("order_id = ?", orderID).
		Order("created_at asc").
		Find(&logs).Error; err != nil {
		return nil, utils.NewInternalError(err)
	}
	return logs, nil
}

// requireKitchenAccess checks that the actor is chef/bartender of the source
// kitchen. Admins and managers bypass the membership check.
func (s *KitchenService) requireKitchenAccess(actor Actor, kitchenID string) error {
	if models.IsSupervisorRole(actor.Role) {
		return nil
	}
	if !models.IsKitchenRole(actor.Role) {
		return utils.NewAuthorizationError("role %s cannot perform kitchen actions", actor.Role)
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", actor.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NewAuthorizationError("unknown acting user")
		}
		return utils.NewInternalError(err)
	}
	if user.RestaurantID == nil || *user.RestaurantID != kitchenID {
		return utils.NewAuthorizationError("user does not belong to this kitchen")
	}
	return nil
}

func (s *KitchenService) loadKitchen(kitchenID string) (*models.Restaurant, error) {
	var kitchen models.Restaurant
	if err := s.db.First(&kitchen, "id = ?", kitchenID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewNotFoundError("kitchen %s not found", kitchenID)
		}
		return nil, utils.NewInternalError(err)
	}
	if !kitchen.IsActive || !kitchen.HasKitchen {
		return nil, utils.NewValidationError("restaurant %s cannot receive kitchen orders", kitchen.Name)
	}
	return &kitchen, nil
}

func (s *KitchenService) appendLog(tx *gorm.DB, orderID, kitchenID, action string, actor Actor, note string) error {
	logRow := models.KitchenLog{
		OrderID:   orderID,
		KitchenID: kitchenID,
		Action:    action,
		Note:      note,
	}
	if actor.ID != "" {
		id := actor.ID
		logRow.UserID = &id
	}
	if err := tx.Create(&logRow).Error; err != nil {
		return utils.NewInternalError(err)
	}
	return nil
}

func (s *KitchenService) notifyKitchenAction(order *models.Order, action string, actor Actor) {
	var users []string
	if order.TargetKitchenID != nil {
		ids, err := s.notifier.KitchenCohort(*order.TargetKitchenID)
		if err != nil {
			utils.ErrorLogger.Printf("resolve kitchen staff for order %s: %v", order.OrderNumber, err)
		} else {
			users = append(users, ids...)
		}
	}
	if order.CustomerID != nil {
		users = append(users, *order.CustomerID)
	}
	if order.WaiterID != nil {
		users = append(users, *order.WaiterID)
	}
	s.notifier.Fanout(EventKitchenOrderAction, orderEventPayload(order, action, actor),
		users, supervisorRoles, Draft{
			Type:    EventKitchenOrderAction,
			Title:   "Kitchen update",
			Message: fmt.Sprintf("Order %s %s", order.OrderNumber, action),
		})
}

func loadOrder(tx *gorm.DB, orderID string) (*models.Order, error) {
	var order models.Order
	if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewNotFoundError("order %s not found", orderID)
		}
		return nil, utils.NewInternalError(err)
	}
	return &order, nil
}

func appendNote(existing, note string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return existing
	}
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}
