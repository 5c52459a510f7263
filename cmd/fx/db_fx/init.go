package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gigcampus/internal/infra"
	"gigcampus/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	repositories.NewUserRepository,
	repositories.NewPaymentRepository,
	repositories.NewEscrowRepository,
	repositories.NewWithdrawalRepository,
	repositories.NewLedgerRepository,
	repositories.NewProjectRepository,
	repositories.NewApplicationRepository,
)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}
