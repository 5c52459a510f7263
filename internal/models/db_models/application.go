package db_models

import "github.com/google/uuid"

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
)

// Application is a student's bid on a project. The composite unique index
// keeps one application per (project, student).
type Application struct {
	BaseModel
	ProjectID uuid.UUID `gorm:"uniqueIndex:idx_app_project_student,priority:1"`
	StudentID uuid.UUID `gorm:"uniqueIndex:idx_app_project_student,priority:2"`

	CoverLetter       string `gorm:"size:2000"`
	ProposedBudget    int64
	EstimatedDuration string `gorm:"size:32"`

	Status ApplicationStatus `gorm:"index;size:16"`

	Paid      bool `gorm:"default:false"`
	PaymentID *uuid.UUID
}
