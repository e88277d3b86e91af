package reservation

import (
	"slices"
	"time"

	"cleanspace/internal/domain/schedule"

	"github.com/google/uuid"
)

// Reservation binds one user to one workspace for one time slot. It references
// both by identity only.
type Reservation struct {
	id          uuid.UUID
	workspaceID uuid.UUID
	userID      uuid.UUID
	timeSlot    schedule.TimeSlot
	createdAt   time.Time
}

func NewReservation(workspaceID, userID uuid.UUID, slot schedule.TimeSlot) *Reservation {
	return &Reservation{
		workspaceID: workspaceID,
		userID:      userID,
		timeSlot:    slot,
	}
}

func ReconstructReservation(
	id, workspaceID, userID uuid.UUID,
	slot schedule.TimeSlot,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		workspaceID: workspaceID,
		userID:      userID,
		timeSlot:    slot,
		createdAt:   createdAt,
	}
}

// Persisted returns a copy carrying the identity and timestamp assigned by storage.
func (r *Reservation) Persisted(id uuid.UUID, createdAt time.Time) *Reservation {
	cp := *r
	cp.id = id
	cp.createdAt = createdAt
	return &cp
}

func (r *Reservation) IsPersisted() bool { return r.id != uuid.Nil }

func (r *Reservation) Equal(other *Reservation) bool {
	if r == nil || other == nil || !r.IsPersisted() || !other.IsPersisted() {
		return false
	}
	return r.id == other.id
}

func (r *Reservation) ConflictsWith(slot schedule.TimeSlot) bool {
	return r.timeSlot.ConflictsWith(slot)
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) WorkspaceID() uuid.UUID      { return r.workspaceID }
func (r *Reservation) UserID() uuid.UUID           { return r.userID }
func (r *Reservation) TimeSlot() schedule.TimeSlot { return r.timeSlot }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }

func CountByWorkspace(reservations []*Reservation) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int, len(reservations))
	for _, r := range reservations {
		counts[r.workspaceID]++
	}
	return counts
}

// SortByStart orders reservations by start time, then by id for ties.
func SortByStart(reservations []*Reservation) {
	slices.SortStableFunc(reservations, func(a, b *Reservation) int {
		if c := a.timeSlot.Start().Compare(b.timeSlot.Start()); c != 0 {
			return c
		}
		return slices.Compare(a.id[:], b.id[:])
	})
}
