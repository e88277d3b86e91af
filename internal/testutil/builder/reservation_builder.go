//go:build unit || e2e

package builder

import (
	"time"

	"cleanspace/internal/domain/reservation"
	"cleanspace/internal/domain/schedule"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	UserID      uuid.UUID
	Start       time.Time
	Duration    time.Duration
	CreatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		WorkspaceID: uuid.New(),
		UserID:      uuid.New(),
		Start:       time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC),
		Duration:    time.Hour,
		CreatedAt:   time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) ForWorkspace(id uuid.UUID) *ReservationBuilder {
	b.WorkspaceID = id
	return b
}

func (b *ReservationBuilder) ForUser(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) At(start time.Time, d time.Duration) *ReservationBuilder {
	b.Start, b.Duration = start, d
	return b
}

func (b *ReservationBuilder) Slot() schedule.TimeSlot {
	slot, err := schedule.NewTimeSlot(b.Start, b.Duration)
	if err != nil {
		panic(err)
	}
	return slot
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.NewReservation(b.WorkspaceID, b.UserID, b.Slot())
}

func (b *ReservationBuilder) BuildPersisted() *reservation.Reservation {
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return reservation.ReconstructReservation(id, b.WorkspaceID, b.UserID, b.Slot(), b.CreatedAt)
}
