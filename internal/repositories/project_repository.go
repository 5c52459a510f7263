package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigcampus/internal/models/db_models"
)

type ProjectRepository interface {
	Insert(ctx context.Context, project *db_models.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Project, error)
	MarkCompletedTx(tx *gorm.DB, id uuid.UUID, completedAt int64) error
	MarkInProgressTx(tx *gorm.DB, id uuid.UUID) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Insert(ctx context.Context, project *db_models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Project, error) {
	var project db_models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &project, nil
}

func (r *projectRepository) MarkCompletedTx(tx *gorm.DB, id uuid.UUID, completedAt int64) error {
	return tx.Model(&db_models.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       db_models.ProjectStatusCompleted,
			"completed_at": completedAt,
		}).Error
}

func (r *projectRepository) MarkInProgressTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&db_models.Project{}).
		Where("id = ?", id).
		Update("status", db_models.ProjectStatusInProgress).Error
}
