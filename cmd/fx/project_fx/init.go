package project_fx

import (
	"go.uber.org/fx"

	"gigcampus/internal/api/controllers"
	"gigcampus/internal/services"
)

var Module = fx.Provide(
	services.NewProjectService,
	services.NewApplicationService,
	controllers.NewProjectController,
	controllers.NewApplicationController,
)
