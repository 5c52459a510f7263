package request_models

import "github.com/google/uuid"

type ApplyRequest struct {
	ProjectID         uuid.UUID `json:"project_id" binding:"required"`
	CoverLetter       string    `json:"cover_letter" binding:"required,max=2000"`
	ProposedBudget    int64     `json:"proposed_budget" binding:"required,gt=0"`
	EstimatedDuration string    `json:"estimated_duration" binding:"required"`
}
