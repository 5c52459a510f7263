package account_fx

import (
	"go.uber.org/fx"

	"gigcampus/internal/api/controllers"
	"gigcampus/internal/services"
)

var Module = fx.Provide(
	services.NewAccountService,
	controllers.NewAccountController,
	controllers.NewAdminController,
)
