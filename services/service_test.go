package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-workflow/models"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

// setupTestDB opens a named in-memory sqlite database so every pooled
// connection of one test sees the same data, and tests stay isolated from
// each other.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Table{},
		&models.MenuItem{},
		&models.Reservation{},
		&models.Order{},
		&models.OrderItem{},
		&models.KitchenLog{},
		&models.Bill{},
		&models.Payment{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// recordedEvent is one Publisher.Notify call captured during a test.
type recordedEvent struct {
	Event    string
	Payload  interface{}
	Audience Audience
}

// recordingPublisher captures live events instead of pushing them.
type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) Notify(event string, payload interface{}, audience Audience) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Event: event, Payload: payload, Audience: audience})
}

func (p *recordingPublisher) Events() []recordedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]recordedEvent(nil), p.events...)
}

// fixture seeds the minimum restaurant topology the workflow tests need:
// one restaurant with a kitchen, one bar, a table, two menu items and staff.
type fixture struct {
	db *gorm.DB

	restaurant models.Restaurant
	bar        models.Restaurant
	table      models.Table
	food       models.MenuItem
	drink      models.MenuItem

	waiter  models.User
	chef    models.User
	barman  models.User
	manager models.User
}

func newFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{db: db}

	f.restaurant = models.Restaurant{Name: "Main Dining", Type: "restaurant", IsActive: true, HasKitchen: true}
	if err := db.Create(&f.restaurant).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	f.bar = models.Restaurant{Name: "Lobby Bar", Type: "bar", IsActive: true, HasKitchen: true}
	if err := db.Create(&f.bar).Error; err != nil {
		t.Fatalf("seed bar: %v", err)
	}

	f.table = models.Table{RestaurantID: f.restaurant.ID, TableNumber: "T-01", IsActive: true}
	if err := db.Create(&f.table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}

	f.food = models.MenuItem{RestaurantID: f.restaurant.ID, Name: "Nasi Goreng", Price: 100, IsAvailable: true}
	f.drink = models.MenuItem{RestaurantID: f.restaurant.ID, Name: "Es Teh", Price: 50, IsAvailable: true}
	if err := db.Create(&f.food).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	if err := db.Create(&f.drink).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}

	f.waiter = f.seedUser(t, "Wati", models.RoleWaiter, nil)
	f.chef = f.seedUser(t, "Cahyo", models.RoleChef, &f.restaurant.ID)
	f.barman = f.seedUser(t, "Bram", models.RoleBartender, &f.bar.ID)
	f.manager = f.seedUser(t, "Maya", models.RoleManager, nil)
	return f
}

func (f *fixture) seedUser(t *testing.T, name, role string, restaurantID *string) models.User {
	t.Helper()
	user := models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s.%s@test.local", strings.ToLower(name), strings.ReplaceAll(t.Name(), "/", "_")),
		Role:         role,
		RestaurantID: restaurantID,
		IsActive:     true,
	}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := f.db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return user
}

func (f *fixture) waiterActor() Actor {
	return Actor{ID: f.waiter.ID, Role: f.waiter.Role}
}

func (f *fixture) chefActor() Actor {
	return Actor{ID: f.chef.ID, Role: f.chef.Role}
}

// placeOrder creates one standard dine-in order (food x1, drink x2) through
// the real service path.
func (f *fixture) placeOrder(t *testing.T, svc *OrderService) *models.Order {
	t.Helper()
	order, err := svc.CreateOrder(f.waiterActor(), CreateOrderRequest{
		TableID:   f.table.ID,
		OrderType: models.OrderTypeDineIn,
		Items: []OrderItemRequest{
			{MenuItemID: f.food.ID, Quantity: 1},
			{MenuItemID: f.drink.ID, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	return order
}

func newTestServices(t *testing.T) (*fixture, *OrderService, *KitchenService, *BillingService, *recordingPublisher) {
	t.Helper()
	db := setupTestDB(t)
	f := newFixture(t, db)
	pub := &recordingPublisher{}
	notifier := NewNotificationService(db, pub)
	return f, NewOrderService(db, notifier), NewKitchenService(db, notifier), NewBillingService(db, notifier), pub
}
