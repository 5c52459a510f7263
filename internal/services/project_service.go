package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"gigcampus/internal/models/db_models"
	"gigcampus/internal/models/request_models"
	"gigcampus/internal/repositories"
	"gigcampus/pkg/utils"
)

type ProjectService interface {
	CreateProject(ctx context.Context, clientID uuid.UUID, req request_models.CreateProjectRequest) (*db_models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*db_models.Project, error)
}

type projectService struct {
	projects repositories.ProjectRepository
}

func NewProjectService(projects repositories.ProjectRepository) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) CreateProject(ctx context.Context, clientID uuid.UUID, req request_models.CreateProjectRequest) (*db_models.Project, error) {
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	skills, _ := json.Marshal(req.Skills)

	project := &db_models.Project{
		Title:       req.Title,
		Description: req.Description,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
		Currency:    currency,
		Category:    req.Category,
		Duration:    req.Duration,
		Skills:      skills,
		ClientID:    clientID,
		Status:      db_models.ProjectStatusActive,
		Urgent:      req.Urgent,
	}

	if err := s.projects.Insert(ctx, project); err != nil {
		return nil, fmt.Errorf("%w: create project: %v", utils.ErrDatabaseError, err)
	}

	return project, nil
}

func (s *projectService) GetProject(ctx context.Context, id uuid.UUID) (*db_models.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %s", utils.ErrNotFound, id)
	}
	return project, nil
}
