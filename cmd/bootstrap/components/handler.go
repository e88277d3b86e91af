package components

import (
	"context"

	"cleanspace/internal/handler"
	"cleanspace/internal/handler/api"
	"cleanspace/internal/handler/middleware"
	"cleanspace/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewWorkspaceHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
		NewLoginRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, ws *api.WorkspaceHandler, res *api.ReservationHandler) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Workspace:   ws,
		Reservation: res,
	}
}

// NewLoginRateLimiter evicts idle visitors for as long as the app runs.
func NewLoginRateLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.RateLimiter {
	limiter := middleware.NewLoginRateLimiter(cfg.RateLimit)
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go limiter.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return limiter
}
