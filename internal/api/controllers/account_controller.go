package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigcampus/internal/models/request_models"
	"gigcampus/internal/services"
	"gigcampus/pkg/utils"
)

type AccountController struct {
	accounts services.AccountService
}

func NewAccountController(accounts services.AccountService) *AccountController {
	return &AccountController{accounts: accounts}
}

// AdminLogin godoc
// @Summary Authenticate an admin and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.AdminLoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Router /auth/admin/login [post]
func (a *AccountController) AdminLogin(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accounts.AdminLogin(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}
