package events

import (
	"context"
	"log/slog"
	"time"

	"cleanspace/internal/pkg/metrics"
	"cleanspace/internal/usecase/shared"
)

// Instrumented bounds each publish with a timeout, records the outcome and
// swallows the error after logging it. A reservation is never failed because
// its notification could not be delivered.
type Instrumented struct {
	next    shared.EventPublisher
	driver  string
	timeout time.Duration
	logger  *slog.Logger
}

func NewInstrumented(next shared.EventPublisher, driver string, timeout time.Duration, logger *slog.Logger) *Instrumented {
	return &Instrumented{next: next, driver: driver, timeout: timeout, logger: logger}
}

func (p *Instrumented) PublishReservationCreated(ctx context.Context, event shared.ReservationCreated) error {
	// detached from the request so a client disconnect does not drop the event
	ctx = context.WithoutCancel(ctx)
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err := p.next.PublishReservationCreated(ctx, event)
	metrics.RecordEventPublished(p.driver, err)
	if err != nil {
		p.logger.WarnContext(ctx, "failed to publish reservation event",
			"driver", p.driver,
			"reservation_id", event.ReservationID,
			"error", err)
	}
	return nil
}
