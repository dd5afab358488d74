package db_fx

import (
	"go.uber.org/fx"

	"alphagate/internal/config"
	"alphagate/internal/infra"
)

var Module = fx.Provide(
	config.Load, infra.InitPostgresql,
)
