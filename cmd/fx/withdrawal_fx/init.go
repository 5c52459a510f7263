package withdrawal_fx

import (
	"os"

	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gigcampus/internal/api/controllers"
	"gigcampus/internal/repositories"
	"gigcampus/internal/services"
)

var Module = fx.Provide(
	provideWithdrawalService,
	controllers.NewWithdrawalController,
)

func provideWithdrawalService(
	db *gorm.DB,
	users repositories.UserRepository,
	withdrawals repositories.WithdrawalRepository,
	ledger repositories.LedgerRepository,
	logger *zap.Logger,
) services.WithdrawalService {
	minimum := cast.ToInt64(os.Getenv("MIN_WITHDRAWAL"))
	if minimum == 0 {
		minimum = 100
	}
	return services.NewWithdrawalService(db, users, withdrawals, ledger,
		services.WithdrawalConfig{Minimum: minimum}, logger)
}
