package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gigcampus/internal/models/request_models"
	"gigcampus/internal/services"
	"gigcampus/pkg/utils"
)

type ApplicationController struct {
	applications services.ApplicationService
}

func NewApplicationController(applications services.ApplicationService) *ApplicationController {
	return &ApplicationController{applications: applications}
}

func (a *ApplicationController) Apply(c *gin.Context) {
	var req request_models.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	studentID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	application, err := a.applications.Apply(c.Request.Context(), studentID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, application, "Application submitted")
}

func (a *ApplicationController) Accept(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid application id")
		return
	}

	requesterID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := a.applications.Accept(c.Request.Context(), requesterID, applicationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Application accepted")
}
