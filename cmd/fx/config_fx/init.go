package config_fx

import (
	"go.uber.org/fx"

	"selexia/internal/config"
)

var Module = fx.Provide(config.Load)
