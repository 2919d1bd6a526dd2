package mail_fx

import (
	"go.uber.org/fx"

	"selexia/internal/services"
)

var Module = fx.Provide(services.NewSMTPMailService)
