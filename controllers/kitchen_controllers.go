package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-workflow/services"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

type KitchenController struct {
	Kitchen *services.KitchenService
}

func NewKitchenController(kitchen *services.KitchenService) *KitchenController {
	return &KitchenController{Kitchen: kitchen}
}

// AssignOrder -> route the order to a kitchen
func (kc *KitchenController) AssignOrder(c *gin.Context) {
	var req struct {
		KitchenID string `json:"kitchen_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request body: %v", err))
		return
	}

	order, err := kc.Kitchen.Assign(actorFrom(c), c.Param("order_id"), req.KitchenID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order assigned", order)
}

// AcceptOrder -> kitchen staff mengambil order (pending -> preparing)
func (kc *KitchenController) AcceptOrder(c *gin.Context) {
	var req services.AcceptRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.RespondError(c, utils.NewValidationError("invalid request body: %v", err))
		return
	}

	order, err := kc.Kitchen.Accept(actorFrom(c), c.Param("kitchen_id"), c.Param("order_id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order accepted", order)
}

// RejectOrder -> kitchen rejects with a reason, order is cancelled
func (kc *KitchenController) RejectOrder(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request body: %v", err))
		return
	}

	order, err := kc.Kitchen.Reject(actorFrom(c), c.Param("kitchen_id"), c.Param("order_id"), req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order rejected", order)
}

// TransferOrder -> move the order to another kitchen
func (kc *KitchenController) TransferOrder(c *gin.Context) {
	var req struct {
		KitchenID string `json:"kitchen_id" binding:"required"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request body: %v", err))
		return
	}

	order, err := kc.Kitchen.Transfer(actorFrom(c), c.Param("order_id"), req.KitchenID, req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order transferred", order)
}

// GetKitchenLogs -> append-only audit trail for one order
func (kc *KitchenController) GetKitchenLogs(c *gin.Context) {
	logs, err := kc.Kitchen.Logs(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Kitchen logs", logs)
}
