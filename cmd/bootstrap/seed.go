package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"cleanspace/internal/pkg/config"
	"cleanspace/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedAdmin),
)

// SeedAdmin makes sure the configured default account exists before the server accepts logins.
func SeedAdmin(lc fx.Lifecycle, cfg config.Config, users commands.UserCommands, logger *slog.Logger) {
	if cfg.Seed.AdminEmail == "" {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, created, err := users.EnsureUser(ctx, commands.EnsureUserCommand{
				FirstName: cfg.Seed.AdminFirstName,
				LastName:  cfg.Seed.AdminLastName,
				Email:     cfg.Seed.AdminEmail,
				Password:  cfg.Seed.AdminPassword,
			})
			if err != nil {
				return fmt.Errorf("failed to seed admin user: %w", err)
			}
			logger.Info("admin user ready", "email", cfg.Seed.AdminEmail, "created", created)
			return nil
		},
	})
}
