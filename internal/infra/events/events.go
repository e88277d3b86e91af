package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"cleanspace/internal/usecase/shared"
)

// LogPublisher is used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishReservationCreated(ctx context.Context, event shared.ReservationCreated) error {
	p.logger.DebugContext(ctx, "reservation created",
		"reservation_id", event.ReservationID,
		"workspace", event.WorkspaceName,
		"user", event.UserEmail,
		"start", event.Start,
		"end", event.End)
	return nil
}

func encode(event shared.ReservationCreated) ([]byte, error) {
	return json.Marshal(event)
}
