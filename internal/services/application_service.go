package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigcampus/internal/models/db_models"
	"gigcampus/internal/models/request_models"
	"gigcampus/internal/repositories"
	"gigcampus/pkg/utils"
)

type ApplicationService interface {
	Apply(ctx context.Context, studentID uuid.UUID, req request_models.ApplyRequest) (*db_models.Application, error)
	Accept(ctx context.Context, requesterID, applicationID uuid.UUID) error
}

type applicationService struct {
	db           *gorm.DB
	applications repositories.ApplicationRepository
	projects     repositories.ProjectRepository
}

func NewApplicationService(
	db *gorm.DB,
	applications repositories.ApplicationRepository,
	projects repositories.ProjectRepository,
) ApplicationService {
	return &applicationService{
		db:           db,
		applications: applications,
		projects:     projects,
	}
}

func (s *applicationService) Apply(ctx context.Context, studentID uuid.UUID, req request_models.ApplyRequest) (*db_models.Application, error) {
	project, err := s.projects.FindByID(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %s", utils.ErrNotFound, req.ProjectID)
	}
	if project.Status != db_models.ProjectStatusActive {
		return nil, fmt.Errorf("%w: project is not accepting applications", utils.ErrInvalidState)
	}
	if project.ClientID == studentID {
		return nil, fmt.Errorf("%w: cannot apply to your own project", utils.ErrValidation)
	}

	application := &db_models.Application{
		ProjectID:         req.ProjectID,
		StudentID:         studentID,
		CoverLetter:       req.CoverLetter,
		ProposedBudget:    req.ProposedBudget,
		EstimatedDuration: req.EstimatedDuration,
		Status:            db_models.ApplicationStatusPending,
	}

	if err := s.applications.Insert(ctx, application); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: already applied to this project", utils.ErrValidation)
		}
		return nil, fmt.Errorf("%w: create application: %v", utils.ErrDatabaseError, err)
	}

	return application, nil
}

// Accept is the project owner hiring a student: the application moves to
// accepted and the project to in_progress. An accepted application is the
// precondition for a project payment order.
func (s *applicationService) Accept(ctx context.Context, requesterID, applicationID uuid.UUID) error {
	application, err := s.applications.FindByID(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if application == nil {
		return fmt.Errorf("%w: application %s", utils.ErrNotFound, applicationID)
	}

	project, err := s.projects.FindByID(ctx, application.ProjectID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if project == nil {
		return fmt.Errorf("%w: project %s", utils.ErrNotFound, application.ProjectID)
	}
	if project.ClientID != requesterID {
		return utils.ErrUnauthorized
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accepted, err := s.applications.AcceptTx(tx, applicationID)
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if !accepted {
			return fmt.Errorf("%w: application is not pending", utils.ErrInvalidState)
		}

		if err := s.projects.MarkInProgressTx(tx, project.ID); err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}

		return nil
	})
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Driver-specific fallbacks: postgres 23505, sqlite "UNIQUE constraint failed".
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "UNIQUE constraint failed")
}
