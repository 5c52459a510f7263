package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gigcampus/internal/models/request_models"
	"gigcampus/internal/models/response_models"
	"gigcampus/internal/services"
	"gigcampus/pkg/utils"
)

type WithdrawalController struct {
	withdrawals services.WithdrawalService
}

func NewWithdrawalController(withdrawals services.WithdrawalService) *WithdrawalController {
	return &WithdrawalController{withdrawals: withdrawals}
}

// Withdraw godoc
// @Summary Request a payout of available balance
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/withdraw [post]
func (w *WithdrawalController) Withdraw(c *gin.Context) {
	var req request_models.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	payeeID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	withdrawal, err := w.withdrawals.RequestWithdrawal(c.Request.Context(), payeeID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.WithdrawalResponse{
		ID:        withdrawal.ID,
		Amount:    withdrawal.Amount,
		Method:    string(withdrawal.Method),
		Status:    string(withdrawal.Status),
		CreatedAt: withdrawal.CreatedAt,
	}, "Withdrawal request submitted")
}
