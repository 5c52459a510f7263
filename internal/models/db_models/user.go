package db_models

type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeClient  UserType = "client"
)

type User struct {
	BaseModel
	ExternalUID string   `gorm:"uniqueIndex;size:128"` // subject id from the identity provider
	Email       string   `gorm:"uniqueIndex;size:255"`
	Name        string   `gorm:"size:255"`
	UserType    UserType `gorm:"index;size:16"`

	// Only set for admin accounts; regular users authenticate
	// through the identity provider.
	PasswordHash string `gorm:"size:128"`
	Role         string `gorm:"size:16;default:user"`

	// Monetary counters, whole rupees. TotalEarnings only ever grows;
	// AvailableBalance moves with escrow releases and withdrawals.
	TotalEarnings     int64 `gorm:"default:0"`
	AvailableBalance  int64 `gorm:"default:0"`
	CompletedProjects int   `gorm:"default:0"`
	ActiveProjects    int   `gorm:"default:0"`

	Verified bool `gorm:"default:false"`
	IsActive bool `gorm:"default:true"`
}
