package request

import (
	"time"

	"cleanspace/internal/domain/schedule"
	"cleanspace/internal/domain/workspace"
	"cleanspace/internal/pkg/errs"
	"cleanspace/internal/usecase/commands"
	"cleanspace/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PropertyRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// Name, hours and capacity are validated by the use case so that errors surface in
// a fixed order; binding only checks the shape of the payload.
type CreateWorkspaceRequest struct {
	Name       string            `json:"name"`
	Open       string            `json:"open" example:"09:00"`
	Close      string            `json:"close" example:"17:00"`
	Capacity   int               `json:"capacity"`
	Properties []PropertyRequest `json:"properties" binding:"omitempty,dive"`
}

func (r *CreateWorkspaceRequest) ToCommand() commands.CreateWorkspaceCommand {
	props := make(workspace.Properties, 0, len(r.Properties))
	_ = copier.Copy(&props, &r.Properties)

	return commands.CreateWorkspaceCommand{
		Name:         r.Name,
		OpeningHours: r.openingHours(),
		Capacity:     r.Capacity,
		Properties:   props,
	}
}

// openingHours is nil when either bound is missing or malformed.
func (r *CreateWorkspaceRequest) openingHours() *schedule.OpeningHours {
	openAt, err := schedule.ParseTimeOfDay(r.Open)
	if err != nil {
		return nil
	}
	closeAt, err := schedule.ParseTimeOfDay(r.Close)
	if err != nil {
		return nil
	}
	hours := schedule.NewOpeningHours(openAt, closeAt)
	return &hours
}

type AvailableWorkspacesRequest struct {
	Start              string   `form:"start" binding:"required"`
	DurationInMinutes  int      `form:"durationInMinutes" binding:"required,min=1"`
	MinCapacity        *int     `form:"minCapacity" binding:"omitempty,min=0"`
	RequiredProperties []string `form:"requiredProperties" binding:"omitempty,dive,property"`
}

func (r *AvailableWorkspacesRequest) ToQuery(loc *time.Location) (queries.FindAvailableWorkspacesQuery, error) {
	slot, err := ParseTimeSlot(r.Start, r.DurationInMinutes, loc)
	if err != nil {
		return queries.FindAvailableWorkspacesQuery{}, err
	}

	required := make(workspace.Properties, 0, len(r.RequiredProperties))
	for _, raw := range r.RequiredProperties {
		p, err := workspace.ParseProperty(raw)
		if err != nil {
			return queries.FindAvailableWorkspacesQuery{}, errs.Mark(err, errs.ErrInvalidArgument)
		}
		required = append(required, p)
	}

	return queries.FindAvailableWorkspacesQuery{
		TimeSlot:           slot,
		MinCapacity:        r.MinCapacity,
		RequiredProperties: required,
	}, nil
}
