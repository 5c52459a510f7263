package escrow_fx

import (
	"go.uber.org/fx"

	"gigcampus/internal/api/controllers"
	"gigcampus/internal/services"
)

var Module = fx.Provide(
	services.NewEscrowService,
	controllers.NewEscrowController,
)
