package bootstrap

import (
	"context"
	"log/slog"

	"cleanspace/internal/infra/events"
	"cleanspace/internal/pkg/config"
	"cleanspace/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher selects the broker named by EVENTS_DRIVER. Whatever the driver,
// publishing is bounded by a timeout and never fails the caller.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	var next shared.EventPublisher

	switch cfg.Events.Driver {
	case config.EventsRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.Events.RedisAddr})
		publisher := events.NewRedisPublisher(client, cfg.Events.RedisList)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					logger.Warn("redis is not reachable, events will be dropped until it is", "addr", cfg.Events.RedisAddr, "error", err)
				}
				return nil
			},
			OnStop: func(_ context.Context) error {
				return publisher.Close()
			},
		})
		next = publisher
	case config.EventsAMQP:
		publisher, err := events.DialAMQP(cfg.Events.AMQPURL, cfg.Events.AMQPQueue)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return publisher.Close()
			},
		})
		next = publisher
	default:
		next = events.NewLogPublisher(logger)
	}

	logger.Info("event publisher configured", "driver", cfg.Events.Driver)
	return events.NewInstrumented(next, cfg.Events.Driver, cfg.Events.PublishTimeout, logger), nil
}
