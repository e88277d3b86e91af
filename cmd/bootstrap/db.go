package bootstrap

import (
	"context"
	"log/slog"

	"cleanspace/internal/infra/db"
	"cleanspace/internal/infra/migrations"
	"cleanspace/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// NewDB opens the pool, migrates the schema when configured and closes the pool on stop.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.MigrateOnBoot {
		if err := migrations.Up(cfg.DB.BuildDSN(), logger); err != nil {
			cleanup()
			return nil, err
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
