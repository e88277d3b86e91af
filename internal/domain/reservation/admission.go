package reservation

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrDuplicateReservation = errors.New("user has already booked during this time slot")
	ErrWorkspaceFull        = errors.New("workspace is already fully booked")
)

// Candidate describes a requested booking against a workspace of the given capacity.
type Candidate struct {
	WorkspaceID uuid.UUID
	UserID      uuid.UUID
	Capacity    int
}

// Admit decides whether the candidate may be booked given every reservation that
// conflicts with the requested slot, across all workspaces.
//
// A user may not hold two overlapping reservations anywhere, so the duplicate rule
// looks at the whole set and fires first. Capacity only counts conflicts in the
// candidate's own workspace.
func Admit(c Candidate, conflicting []*Reservation) error {
	occupied := 0
	for _, r := range conflicting {
		if r.userID == c.UserID {
			return ErrDuplicateReservation
		}
		if r.workspaceID == c.WorkspaceID {
			occupied++
		}
	}
	if occupied >= c.Capacity {
		return ErrWorkspaceFull
	}
	return nil
}
