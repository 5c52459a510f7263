package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gigcampus/internal/models/request_models"
	"gigcampus/internal/services"
	"gigcampus/pkg/utils"
)

type ProjectController struct {
	projects services.ProjectService
}

func NewProjectController(projects services.ProjectService) *ProjectController {
	return &ProjectController{projects: projects}
}

func (p *ProjectController) CreateProject(c *gin.Context) {
	var req request_models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	clientID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	project, err := p.projects.CreateProject(c.Request.Context(), clientID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, project, "Project created successfully")
}

func (p *ProjectController) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid project id")
		return
	}

	project, err := p.projects.GetProject(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, project, "")
}
