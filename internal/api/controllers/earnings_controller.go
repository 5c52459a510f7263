package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gigcampus/internal/services"
	"gigcampus/pkg/utils"
)

type EarningsController struct {
	earnings services.EarningsService
}

func NewEarningsController(earnings services.EarningsService) *EarningsController {
	return &EarningsController{earnings: earnings}
}

func (e *EarningsController) GetEarnings(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	summary, err := e.earnings.Summary(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "")
}
