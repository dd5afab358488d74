package memcache_fx

import (
	"go.uber.org/fx"

	"alphagate/pkg/memcache"
)

var Module = fx.Provide(
	provideResetTokenStore,
)

func provideResetTokenStore() memcache.ResetTokenStore {
	return memcache.NewResetTokens()
}
