package services

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-workflow/models"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

// NotificationService computes audiences, persists notification rows and
// pushes live events through the injected Publisher.
type NotificationService struct {
	db        *gorm.DB
	publisher Publisher
}

func NewNotificationService(db *gorm.DB, publisher Publisher) *NotificationService {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &NotificationService{db: db, publisher: publisher}
}

// Draft carries the user-visible content of a notification before the
// audience is resolved.
type Draft struct {
	Type      string
	Title     string
	Message   string
	Payload   interface{}
	Priority  string
	ExpiresAt *time.Time
}

func (d Draft) toModel(userID string) models.Notification {
	priority := d.Priority
	if priority == "" {
		priority = models.NotificationPriorityNormal
	}
	payload := ""
	if d.Payload != nil {
		if raw, err := json.Marshal(d.Payload); err == nil {
			payload = string(raw)
		}
	}
	return models.Notification{
		UserID:    userID,
		Type:      d.Type,
		Title:     d.Title,
		Message:   d.Message,
		Payload:   payload,
		Priority:  priority,
		ExpiresAt: d.ExpiresAt,
	}
}

// CreateForUsers persists one notification per (deduplicated) user and
// pushes the matching live event to their sessions.
func (ns *NotificationService) CreateForUsers(userIDs []string, draft Draft) ([]models.Notification, error) {
	ids := dedupe(userIDs)
	if len(ids) == 0 {
		return nil, nil
	}

	notifs := make([]models.Notification, 0, len(ids))
	for _, id := range ids {
		notifs = append(notifs, draft.toModel(id))
	}
	if err := ns.db.Create(&notifs).Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	ns.publisher.Notify(draft.Type, draft.Payload, Audience{UserIDs: ids})
	return notifs, nil
}

// CreateForRole persists one notification for every active user holding the
// role. Managers and admins are always included when the target role is not
// already a supervisor role, so cross-role visibility is guaranteed.
func (ns *NotificationService) CreateForRole(role string, draft Draft) ([]models.Notification, error) {
	ids, err := ns.roleCohort(role)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	notifs := make([]models.Notification, 0, len(ids))
	for _, id := range ids {
		notifs = append(notifs, draft.toModel(id))
	}
	if err := ns.db.Create(&notifs).Error; err != nil {
		return nil, utils.NewInternalError(err)
	}

	ns.publisher.Notify(draft.Type, draft.Payload, Audience{Roles: expandRoles([]string{role})})
	return notifs, nil
}

// Fanout delivers one workflow event to explicit users plus role cohorts.
// It runs after the owning transaction has committed; failures are logged
// and swallowed so they can never undo the committed state change.
func (ns *NotificationService) Fanout(event string, payload interface{}, userIDs []string, roles []string, draft Draft) {
	recipients := append([]string(nil), userIDs...)
	for _, role := range roles {
		cohort, err := ns.roleCohort(role)
		if err != nil {
			utils.ErrorLogger.Printf("fanout %s: resolve role %s: %v", event, role, err)
			continue
		}
		recipients = append(recipients, cohort...)
	}

	recipients = dedupe(recipients)
	if len(recipients) > 0 {
		notifs := make([]models.Notification, 0, len(recipients))
		for _, id := range recipients {
			notifs = append(notifs, draft.toModel(id))
		}
		if err := ns.db.Create(&notifs).Error; err != nil {
			utils.ErrorLogger.Printf("fanout %s: persist notifications: %v", event, err)
		}
	}

	ns.publisher.Notify(event, payload, Audience{
		UserIDs: userIDs,
		Roles:   expandRoles(roles),
	})
}

// MarkRead flags one notification as read. Only the recipient may do so.
func (ns *NotificationService) MarkRead(userID, notifID string) (*models.Notification, error) {
	var notif models.Notification
	if err := ns.db.First(&notif, "id = ?", notifID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewNotFoundError("notification %s not found", notifID)
		}
		return nil, utils.NewInternalError(err)
	}
	if notif.UserID != userID {
		return nil, utils.NewAuthorizationError("notification belongs to another user")
	}
	if !notif.IsRead {
		now := time.Now()
		notif.IsRead = true
		notif.ReadAt = &now
		if err := ns.db.Save(&notif).Error; err != nil {
			return nil, utils.NewInternalError(err)
		}
	}
	return &notif, nil
}

// MarkAllRead flags every unread notification of the user as read.
func (ns *NotificationService) MarkAllRead(userID string) (int64, error) {
	now := time.Now()
	res := ns.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now})
	if res.Error != nil {
		return 0, utils.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}

func (ns *NotificationService) UnreadCount(userID string) (int64, error) {
	var count int64
	if err := ns.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, utils.NewInternalError(err)
	}
	return count, nil
}

// ListForUser returns the user's notifications, newest first.
func (ns *NotificationService) ListForUser(userID string) ([]models.Notification, error) {
	var notifs []models.Notification
	if err := ns.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifs).Error; err != nil {
		return nil, utils.NewInternalError(err)
	}
	return notifs, nil
}

// SweepExpired deletes notifications past their expiry. Idempotent and safe
// to run concurrently with everything else.
func (ns *NotificationService) SweepExpired() (int64, error) {
	res := ns.db.Where("expires_at IS NOT NULL AND expires_at <= ?", time.Now()).
		Delete(&models.Notification{})
	if res.Error != nil {
		return 0, utils.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}

// supervisorRoles is the oversight cohort included in every workflow event.
var supervisorRoles = []string{models.RoleManager, models.RoleAdmin}

// KitchenCohort resolves the active kitchen staff assigned to one kitchen.
func (ns *NotificationService) KitchenCohort(kitchenID string) ([]string, error) {
	var ids []string
	if err := ns.db.Model(&models.User{}).
		Where("restaurant_id = ? AND role IN ? AND is_active = ?",
			kitchenID, []string{models.RoleChef, models.RoleBartender}, true).
		Pluck("id", &ids).Error; err != nil {
		return nil, utils.NewInternalError(err)
	}
	return ids, nil
}

// roleCohort resolves the active users notified for a role, applying the
// supervisor inclusion rule.
func (ns *NotificationService) roleCohort(role string) ([]string, error) {
	roles := expandRoles([]string{role})
	var ids []string
	if err := ns.db.Model(&models.User{}).
		Where("role IN ? AND is_active = ?", roles, true).
		Pluck("id", &ids).Error; err != nil {
		return nil, utils.NewInternalError(err)
	}
	return ids, nil
}

// expandRoles adds manager/admin to any cohort that does not already target
// a supervisor role.
func expandRoles(roles []string) []string {
	out := append([]string(nil), roles...)
	needSupervisors := false
	for _, r := range roles {
		if !models.IsSupervisorRole(r) {
			needSupervisors = true
			break
		}
	}
	if needSupervisors {
		hasManager, hasAdmin := false, false
		for _, r := range out {
			if r == models.RoleManager {
				hasManager = true
			}
			if r == models.RoleAdmin {
				hasAdmin = true
			}
		}
		if !hasManager {
			out = append(out, models.RoleManager)
		}
		if !hasAdmin {
			out = append(out, models.RoleAdmin)
		}
	}
	return out
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
