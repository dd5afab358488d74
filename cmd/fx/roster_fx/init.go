package roster_fx

import (
	"go.uber.org/fx"

	"alphagate/internal/repositories"
	"alphagate/internal/services"
)

var Module = fx.Provide(
	provideRosterService,
)

func provideRosterService(accountRepo repositories.AccountRepository) services.RosterService {
	return services.NewRosterService(accountRepo)
}
