package request

import (
	"time"

	"cleanspace/internal/usecase/commands"
)

type CreateReservationRequest struct {
	WorkspaceName     string `json:"workspaceName" binding:"required"`
	Start             string `json:"start" binding:"required" example:"2030-01-07T11:00:00+01:00"`
	DurationInMinutes int    `json:"durationInMinutes" binding:"required,min=1"`
}

// ToCommand books on behalf of the authenticated user.
func (r *CreateReservationRequest) ToCommand(userEmail string, loc *time.Location) (commands.CreateReservationCommand, error) {
	slot, err := ParseTimeSlot(r.Start, r.DurationInMinutes, loc)
	if err != nil {
		return commands.CreateReservationCommand{}, err
	}
	return commands.CreateReservationCommand{
		WorkspaceName: r.WorkspaceName,
		UserEmail:     userEmail,
		TimeSlot:      slot,
	}, nil
}
