package bootstrap

import (
	"log/slog"

	"cleanspace/internal/infra/memory"
	"cleanspace/internal/infra/uow"
	"cleanspace/internal/pkg/clock"
	"cleanspace/internal/pkg/config"
	"cleanspace/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.UnitOfWork, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		return memory.NewStore(clk), nil
	}

	pool, err := NewDB(lc, cfg, logger)
	if err != nil {
		return nil, err
	}
	return uow.NewPostgresUoW(pool, logger), nil
}
