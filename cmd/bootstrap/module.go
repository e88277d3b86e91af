package bootstrap

import (
	"cleanspace/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	PersistenceModule,
	EventsModule,
	components.UseCaseModule,
	components.HandlerModule,
	SeedModule,
)
