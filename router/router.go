package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-workflow/controllers"
	"github.com/yeremiapane/restaurant-workflow/middlewares"
	"github.com/yeremiapane/restaurant-workflow/models"
	"github.com/yeremiapane/restaurant-workflow/realtime"
	"github.com/yeremiapane/restaurant-workflow/services"
)

func SetupRouter(db *gorm.DB, hub *realtime.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Wiring: satu Publisher diinject ke notification service, semua
	// workflow service memakai fan-out yang sama.
	var publisher services.Publisher = services.NopPublisher{}
	if hub != nil {
		publisher = hub
	}
	notifier := services.NewNotificationService(db, publisher)
	orderSvc := services.NewOrderService(db, notifier)
	kitchenSvc := services.NewKitchenService(db, notifier)
	billingSvc := services.NewBillingService(db, notifier)

	userCtrl := controllers.NewUserController(db)
	orderCtrl := controllers.NewOrderController(orderSvc)
	kitchenCtrl := controllers.NewKitchenController(kitchenSvc)
	billingCtrl := controllers.NewBillingController(billingSvc)
	notifCtrl := controllers.NewNotificationController(notifier)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.POST("/login", userCtrl.Login)

	// Gateway callbacks arrive pre-verified from the payment collaborator.
	r.POST("/payments/callback/success", billingCtrl.PaymentCallbackSuccess)
	r.POST("/payments/callback/failure", billingCtrl.PaymentCallbackFailure)

	// WebSocket endpoint dengan auth via query token
	if hub != nil {
		wsCtrl := controllers.NewWSController(hub)
		ws := r.Group("/ws")
		ws.Use(middlewares.WebSocketAuthMiddleware())
		ws.GET("", wsCtrl.Connect)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)

	// ORDERS
	auth.POST("/orders", orderCtrl.CreateOrder)
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	auth.PUT("/orders/:order_id/status",
		middlewares.RequireRoles(models.RoleWaiter, models.RoleChef, models.RoleBartender),
		orderCtrl.UpdateOrderStatus)
	auth.POST("/orders/:order_id/items", orderCtrl.AddItems)
	auth.PUT("/orders/:order_id/items/:item_id/status",
		middlewares.RequireRoles(models.RoleChef, models.RoleBartender),
		orderCtrl.UpdateItemStatus)
	auth.PUT("/orders/:order_id/items/:item_id", orderCtrl.UpdateItem)
	auth.DELETE("/orders/:order_id/items/:item_id", orderCtrl.DeleteItem)
	auth.POST("/orders/:order_id/items/:item_id/cancel", orderCtrl.CancelItem)

	// KITCHEN ROUTER
	auth.POST("/kitchen/:kitchen_id/orders/:order_id/accept",
		middlewares.RequireRoles(models.RoleChef, models.RoleBartender),
		kitchenCtrl.AcceptOrder)
	auth.POST("/kitchen/:kitchen_id/orders/:order_id/reject",
		middlewares.RequireRoles(models.RoleChef, models.RoleBartender),
		kitchenCtrl.RejectOrder)
	auth.GET("/kitchen/:kitchen_id/display",
		middlewares.RequireRoles(models.RoleChef, models.RoleBartender),
		orderCtrl.GetKitchenDisplay)
	auth.POST("/orders/:order_id/assign",
		middlewares.RequireRoles(models.RoleChef, models.RoleBartender),
		kitchenCtrl.AssignOrder)
	auth.POST("/orders/:order_id/transfer",
		middlewares.RequireRoles(models.RoleChef, models.RoleBartender),
		kitchenCtrl.TransferOrder)
	auth.GET("/orders/:order_id/kitchen-logs", kitchenCtrl.GetKitchenLogs)

	// BILLING
	auth.POST("/orders/:order_id/bill",
		middlewares.RequireRoles(models.RoleWaiter),
		billingCtrl.IssueBill)
	auth.GET("/orders/:order_id/bill", billingCtrl.GetBill)
	auth.POST("/orders/:order_id/request-payment",
		middlewares.RequireRoles(models.RoleWaiter),
		billingCtrl.RequestPayment)
	auth.POST("/orders/:order_id/complete",
		middlewares.RequireRoles(models.RoleWaiter),
		billingCtrl.CompleteOrder)

	// NOTIFICATIONS
	auth.GET("/notifications", notifCtrl.GetMyNotifications)
	auth.POST("/notifications", middlewares.RequireRoles(), notifCtrl.CreateNotification)
	auth.POST("/notifications/:notif_id/read", notifCtrl.MarkRead)
	auth.POST("/notifications/read-all", notifCtrl.MarkAllRead)
	auth.GET("/notifications/unread-count", notifCtrl.UnreadCount)

	return r
}
