package shared

//go:generate mockgen -source=events.go -destination=../../testutil/mock/shared/events.go -package=sharedmock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReservationCreated is published once the admitting transaction has committed.
type ReservationCreated struct {
	ReservationID uuid.UUID `json:"reservationId"`
	WorkspaceID   uuid.UUID `json:"workspaceId"`
	WorkspaceName string    `json:"workspaceName"`
	UserID        uuid.UUID `json:"userId"`
	UserEmail     string    `json:"userEmail"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	CreatedAt     time.Time `json:"createdAt"`
}

// EventPublisher delivers events after commit. A returned error is logged by the caller
// and never undoes or fails the committed operation.
type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, event ReservationCreated) error
}
