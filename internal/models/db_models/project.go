package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProjectStatus string

const (
	ProjectStatusActive     ProjectStatus = "active"
	ProjectStatusInReview   ProjectStatus = "in_review"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

type Project struct {
	BaseModel
	Title       string `gorm:"size:200"`
	Description string `gorm:"size:2000"`

	BudgetMin int64
	BudgetMax int64
	Currency  string `gorm:"size:3;default:INR"`

	Category string         `gorm:"index;size:64"`
	Duration string         `gorm:"size:32"`
	Skills   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	ClientID uuid.UUID     `gorm:"index"`
	Status   ProjectStatus `gorm:"index;size:16"`

	Proposals   int `gorm:"default:0"`
	Views       int `gorm:"default:0"`
	CompletedAt *int64

	Featured bool `gorm:"default:false"`
	Urgent   bool `gorm:"default:false"`
}
