package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-workflow/controllers"
	"github.com/yeremiapane/restaurant-workflow/models"
	"github.com/yeremiapane/restaurant-workflow/services"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

// asUser memalsukan auth middleware untuk test controller terisolasi.
func asUser(user models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Next()
	}
}

func setupOrderRouter(db *gorm.DB, user models.User) *gin.Engine {
	notifier := services.NewNotificationService(db, services.NopPublisher{})
	orderCtrl := controllers.NewOrderController(services.NewOrderService(db, notifier))

	r := gin.New()
	r.Use(asUser(user))
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.POST("/orders/:order_id/items", orderCtrl.AddItems)
	r.POST("/orders/:order_id/items/:item_id/cancel", orderCtrl.CancelItem)
	return r
}

func TestCreateAndGetOrder(t *testing.T) {
	db, s := setupTestDB(t)
	r := setupOrderRouter(db, s.waiter)

	code, resp := doJSON(t, r, "POST", "/orders", "", map[string]interface{}{
		"table_id":   s.table.ID,
		"order_type": models.OrderTypeDineIn,
		"items": []map[string]interface{}{
			{"menu_item_id": s.food.ID, "quantity": 2, "notes": "pedas"},
		},
	})
	assert.Equal(t, http.StatusCreated, code)
	created := dataOf(t, resp)
	orderID := created["id"].(string)
	assert.NotEmpty(t, created["order_number"])
	assert.InDelta(t, 200.0, created["subtotal"].(float64), 0.001)

	// waiter yang membuat tercatat di order
	assert.Equal(t, s.waiter.ID, created["waiter_id"])

	code, resp = doJSON(t, r, "GET", "/orders/"+orderID, "", nil)
	assert.Equal(t, http.StatusOK, code)
	fetched := dataOf(t, resp)
	assert.Equal(t, orderID, fetched["id"])
	items := fetched["order_items"].([]interface{})
	assert.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "pedas", item["notes"])
	assert.InDelta(t, 100.0, item["unit_price"].(float64), 0.001)
}

func TestGetOrderNotFound(t *testing.T) {
	db, s := setupTestDB(t)
	r := setupOrderRouter(db, s.waiter)

	code, resp := doJSON(t, r, "GET", "/orders/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, utils.CodeNotFound, errorCodeOf(t, resp))
}

func TestCreateOrderBadBody(t *testing.T) {
	db, s := setupTestDB(t)
	r := setupOrderRouter(db, s.waiter)

	// items wajib ada
	code, resp := doJSON(t, r, "POST", "/orders", "", map[string]interface{}{
		"table_id":   s.table.ID,
		"order_type": models.OrderTypeDineIn,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, utils.CodeValidation, errorCodeOf(t, resp))
}

func TestListOrdersFilteredByStatus(t *testing.T) {
	db, s := setupTestDB(t)
	r := setupOrderRouter(db, s.waiter)

	for i := 0; i < 2; i++ {
		code, _ := doJSON(t, r, "POST", "/orders", "", map[string]interface{}{
			"table_id":   s.table.ID,
			"order_type": models.OrderTypeDineIn,
			"items": []map[string]interface{}{
				{"menu_item_id": s.drink.ID, "quantity": 1},
			},
		})
		assert.Equal(t, http.StatusCreated, code)
	}

	code, resp := doJSON(t, r, "GET", "/orders?status=pending", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, resp["data"].([]interface{}), 2)

	code, resp = doJSON(t, r, "GET", "/orders?status=completed", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp["data"])
}

func TestCancelItemViaHTTP(t *testing.T) {
	db, s := setupTestDB(t)
	r := setupOrderRouter(db, s.waiter)

	code, resp := doJSON(t, r, "POST", "/orders", "", map[string]interface{}{
		"table_id":   s.table.ID,
		"order_type": models.OrderTypeDineIn,
		"items": []map[string]interface{}{
			{"menu_item_id": s.food.ID, "quantity": 1},
			{"menu_item_id": s.drink.ID, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusCreated, code)
	created := dataOf(t, resp)
	orderID := created["id"].(string)
	itemID := created["order_items"].([]interface{})[0].(map[string]interface{})["id"].(string)

	// tanpa alasan ditolak oleh binding
	code, resp = doJSON(t, r, "POST",
		fmt.Sprintf("/orders/%s/items/%s/cancel", orderID, itemID), "",
		map[string]string{})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, utils.CodeValidation, errorCodeOf(t, resp))

	code, resp = doJSON(t, r, "POST",
		fmt.Sprintf("/orders/%s/items/%s/cancel", orderID, itemID), "",
		map[string]string{"reason": "salah pesan"})
	assert.Equal(t, http.StatusOK, code)
	cancelled := dataOf(t, resp)
	assert.Equal(t, models.ItemStatusCancelled, cancelled["status"])
	assert.Equal(t, "salah pesan", cancelled["cancel_reason"])
}
