package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gigcampus/internal/models/request_models"
	"gigcampus/internal/services"
	"gigcampus/pkg/utils"
)

type PaymentController struct {
	orders       services.OrderService
	verification services.VerificationService
}

func NewPaymentController(orders services.OrderService, verification services.VerificationService) *PaymentController {
	return &PaymentController{
		orders:       orders,
		verification: verification,
	}
}

// CreateOrder godoc
// @Summary Create a payment order
// @Description Computes the fee split, registers an order with the payment gateway and returns checkout data
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Create Order Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/create-order [post]
func (p *PaymentController) CreateOrder(c *gin.Context) {
	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	payerID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	order, err := p.orders.CreateOrder(c.Request.Context(), payerID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order created successfully")
}

// VerifyPayment godoc
// @Summary Verify a gateway checkout callback
// @Description Validates the gateway signature and confirms the payment; project payments get a held escrow
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.VerifyPaymentRequest true "Verify Payment Request"
// @Success 200 {object} utils.APIResponse
// @Router /payments/verify [post]
func (p *PaymentController) VerifyPayment(c *gin.Context) {
	var req request_models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required payment verification data")
		return
	}

	result, err := p.verification.VerifyAndConfirm(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Payment verified successfully")
}
