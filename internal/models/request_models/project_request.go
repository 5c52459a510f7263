package request_models

type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required,max=2000"`
	BudgetMin   int64    `json:"budget_min" binding:"required,gt=0"`
	BudgetMax   int64    `json:"budget_max" binding:"required,gtefield=BudgetMin"`
	Currency    string   `json:"currency" binding:"omitempty,len=3"`
	Category    string   `json:"category" binding:"required"`
	Duration    string   `json:"duration" binding:"required"`
	Skills      []string `json:"skills"`
	Urgent      bool     `json:"urgent"`
}
