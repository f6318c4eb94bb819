package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-workflow/services"
	"github.com/yeremiapane/restaurant-workflow/utils"
)

type BillingController struct {
	Billing *services.BillingService
}

func NewBillingController(billing *services.BillingService) *BillingController {
	return &BillingController{Billing: billing}
}

// IssueBill -> create the order's single bill
func (bc *BillingController) IssueBill(c *gin.Context) {
	var req services.IssueBillRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.RespondError(c, utils.NewValidationError("invalid request body: %v", err))
		return
	}

	bill, err := bc.Billing.IssueBill(actorFrom(c), c.Param("order_id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Bill issued", bill)
}

// GetBill
func (bc *BillingController) GetBill(c *gin.Context) {
	bill, err := bc.Billing.GetBill(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Bill detail", bill)
}

// RequestPayment -> billed -> payment_pending
func (bc *BillingController) RequestPayment(c *gin.Context) {
	order, err := bc.Billing.RequestPayment(actorFrom(c), c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment requested", order)
}

// PaymentCallbackSuccess -> verified success result from the gateway
func (bc *BillingController) PaymentCallbackSuccess(c *gin.Context) {
	bc.handleCallback(c, "success")
}

// PaymentCallbackFailure -> verified failure result from the gateway
func (bc *BillingController) PaymentCallbackFailure(c *gin.Context) {
	bc.handleCallback(c, "failure")
}

func (bc *BillingController) handleCallback(c *gin.Context, defaultStatus string) {
	var cb services.GatewayCallback
	if err := c.ShouldBindJSON(&cb); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid callback body: %v", err))
		return
	}
	if cb.GatewayStatus == "" {
		cb.GatewayStatus = defaultStatus
	}

	payment, err := bc.Billing.HandleGatewayCallback(cb)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment status updated", payment)
}

// CompleteOrder -> paid/served -> completed (terminal)
func (bc *BillingController) CompleteOrder(c *gin.Context) {
	order, err := bc.Billing.Complete(actorFrom(c), c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order completed", order)
}
