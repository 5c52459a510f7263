package controllers

import (
	"github.com/gin-gonic/gin"

	"gigcampus/internal/models/response_models"
	"gigcampus/internal/repositories"
	"gigcampus/pkg/utils"
)

type AdminController struct {
	payments repositories.PaymentRepository
}

func NewAdminController(payments repositories.PaymentRepository) *AdminController {
	return &AdminController{payments: payments}
}

const recentPaymentsLimit = 10

func (a *AdminController) RecentPayments(c *gin.Context) {
	payments, err := a.payments.ListRecent(c.Request.Context(), recentPaymentsLimit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	entries := make([]response_models.AdminPaymentEntry, 0, len(payments))
	for _, payment := range payments {
		entries = append(entries, response_models.AdminPaymentEntry{
			ID:        payment.ID,
			Amount:    payment.Amount,
			Status:    string(payment.Status),
			Kind:      string(payment.Kind),
			PayerID:   payment.PayerID,
			PayeeID:   payment.PayeeID,
			CreatedAt: payment.CreatedAt,
		})
	}

	utils.RespondSuccess(c, gin.H{"payments": entries}, "")
}
