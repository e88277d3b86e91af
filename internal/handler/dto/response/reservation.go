package response

import (
	"time"

	"cleanspace/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                uuid.UUID `json:"id"`
	WorkspaceID       uuid.UUID `json:"workspaceId"`
	UserID            uuid.UUID `json:"userId"`
	Start             time.Time `json:"start"`
	End               time.Time `json:"end"`
	DurationInMinutes int       `json:"durationInMinutes"`
	CreatedAt         time.Time `json:"createdAt"`
}

// FromReservation renders times in loc.
func FromReservation(r *reservation.Reservation, loc *time.Location) *ReservationResponse {
	slot := r.TimeSlot().In(loc)
	return &ReservationResponse{
		ID:                r.ID(),
		WorkspaceID:       r.WorkspaceID(),
		UserID:            r.UserID(),
		Start:             slot.Start(),
		End:               slot.End(),
		DurationInMinutes: int(slot.Duration().Minutes()),
		CreatedAt:         r.CreatedAt().In(loc),
	}
}

func FromReservationList(rs []*reservation.Reservation, loc *time.Location) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReservation(r, loc))
	}
	return out
}
