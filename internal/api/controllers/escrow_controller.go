package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gigcampus/internal/models/request_models"
	"gigcampus/internal/services"
	"gigcampus/pkg/utils"
)

type EscrowController struct {
	escrows services.EscrowService
}

func NewEscrowController(escrows services.EscrowService) *EscrowController {
	return &EscrowController{escrows: escrows}
}

// ReleaseEscrow godoc
// @Summary Release escrowed funds to the payee
// @Tags Escrow
// @Accept json
// @Produce json
// @Param request body request_models.ReleaseEscrowRequest true "Release Escrow Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/release-escrow [post]
func (e *EscrowController) ReleaseEscrow(c *gin.Context) {
	var req request_models.ReleaseEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	requesterID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := e.escrows.Release(c.Request.Context(), req.EscrowID, requesterID, req.Reason); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Funds released successfully")
}

func (e *EscrowController) DisputeEscrow(c *gin.Context) {
	var req request_models.DisputeEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	requesterID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := e.escrows.Dispute(c.Request.Context(), req.EscrowID, requesterID, req.Reason); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Escrow disputed")
}

func (e *EscrowController) RefundEscrow(c *gin.Context) {
	var req request_models.RefundEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	requesterID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := e.escrows.Refund(c.Request.Context(), req.EscrowID, requesterID, req.Reason); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Escrow refunded")
}
