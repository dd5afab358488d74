package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"alphagate/internal/config"
	"alphagate/internal/repositories"
	"alphagate/internal/services"
	"alphagate/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccessGate,
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, resetTokens memcache.ResetTokenStore, cfg config.Config) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetTokens, cfg.Auth.ResetTokenTTL)
}

func provideAccessGate(accountRepo repositories.AccountRepository) services.AccessGate {
	return services.NewAccessGate(accountRepo)
}
