package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-workflow/models"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

// seed holds the fixture rows the HTTP tests operate on.
type seed struct {
	restaurant models.Restaurant
	bar        models.Restaurant
	table      models.Table
	food       models.MenuItem
	drink      models.MenuItem
	waiter     models.User
	chef       models.User
}

func setupTestDB(t *testing.T) (*gorm.DB, *seed) {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared",
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

	s := &seed{}
	s.restaurant = models.Restaurant{Name: "Main Dining", Type: "restaurant", IsActive: true, HasKitchen: true}
	s.bar = models.Restaurant{Name: "Lobby Bar", Type: "bar", IsActive: true, HasKitchen: true}
	if err := db.Create(&s.restaurant).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&s.bar).Error; err != nil {
		t.Fatal(err)
	}
	s.table = models.Table{RestaurantID: s.restaurant.ID, TableNumber: "T-01", IsActive: true}
	if err := db.Create(&s.table).Error; err != nil {
		t.Fatal(err)
	}
	s.food = models.MenuItem{RestaurantID: s.restaurant.ID, Name: "Nasi Goreng", Price: 100, IsAvailable: true}
	s.drink = models.MenuItem{RestaurantID: s.restaurant.ID, Name: "Es Teh", Price: 50, IsAvailable: true}
	if err := db.Create(&s.food).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&s.drink).Error; err != nil {
		t.Fatal(err)
	}

	s.waiter = seedUser(t, db, "Wati", models.RoleWaiter, nil)
	s.chef = seedUser(t, db, "Cahyo", models.RoleChef, &s.restaurant.ID)
	return db, s
}

func seedUser(t *testing.T, db *gorm.DB, name, role string, restaurantID *string) models.User {
	t.Helper()
	user := models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s.%s@test.local", strings.ToLower(name), strings.ReplaceAll(t.Name(), "/", "_")),
		Role:         role,
		RestaurantID: restaurantID,
		IsActive:     true,
	}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	return user
}

// doJSON performs one request against the router with an optional bearer
// token and decodes the envelope.
func doJSON(t *testing.T, r *gin.Engine, method, url, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		buf = bytes.NewBuffer(raw)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w.Code, resp
}

func login(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	code, resp := doJSON(t, r, "POST", "/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	if code != http.StatusOK {
		t.Fatalf("login %s failed with %d: %v", email, code, resp)
	}
	data := resp["data"].(map[string]interface{})
	return data["token"].(string)
}

func dataOf(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := resp["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}

func errorCodeOf(t *testing.T, resp map[string]interface{}) string {
	t.Helper()
	errObj, ok := resp["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no error object: %v", resp)
	}
	code, _ := errObj["code"].(string)
	return code
}
