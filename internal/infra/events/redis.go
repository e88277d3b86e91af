package events

import (
	"context"

	"cleanspace/internal/pkg/errs"
	"cleanspace/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher pushes events onto a Redis list for workers that BRPOP it.
type RedisPublisher struct {
	client *redis.Client
	list   string
}

func NewRedisPublisher(client *redis.Client, list string) *RedisPublisher {
	return &RedisPublisher{client: client, list: list}
}

func (p *RedisPublisher) PublishReservationCreated(ctx context.Context, event shared.ReservationCreated) error {
	data, err := encode(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}
	if err := p.client.LPush(ctx, p.list, data).Err(); err != nil {
		return errs.Wrapf(err, "failed to push reservation event to %s", p.list)
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
