package controllers_fx

import (
	"go.uber.org/fx"

	"alphagate/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewCatalogController,
	controllers.NewEditorController,
	controllers.NewRosterController,
	controllers.NewStatsController,
)
