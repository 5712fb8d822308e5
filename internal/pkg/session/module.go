package session

import (
	"go.uber.org/fx"

	"github.com/mkaryagin/heartbeat/internal/config"
)

// Module provides the session store via fx.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Config *config.Config
}

func newStore(p storeParams) Store {
	return NewMemoryStore(p.Config.SessionTTL)
}
