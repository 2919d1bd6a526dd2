package memcache_fx

import (
	"go.uber.org/fx"

	mem "selexia/pkg/memcache"
)

var Module = fx.Provide(provideOAuthStates)

func provideOAuthStates() mem.OAuthStateStore {
	return mem.NewOAuthStates()
}
