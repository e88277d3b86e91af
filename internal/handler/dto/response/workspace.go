package response

import (
	"cleanspace/internal/domain/workspace"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PropertyResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type WorkspaceResponse struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Open       string             `json:"open" example:"09:00:00"`
	Close      string             `json:"close" example:"17:00:00"`
	Capacity   int                `json:"capacity"`
	Properties []PropertyResponse `json:"properties"`
}

func FromWorkspace(w *workspace.Workspace) *WorkspaceResponse {
	props := make([]PropertyResponse, 0, len(w.Properties()))
	_ = copier.Copy(&props, w.Properties())

	return &WorkspaceResponse{
		ID:         w.ID(),
		Name:       w.Name(),
		Open:       w.OpeningHours().Open().String(),
		Close:      w.OpeningHours().Close().String(),
		Capacity:   w.Capacity(),
		Properties: props,
	}
}

func FromWorkspaceList(ws []*workspace.Workspace) []*WorkspaceResponse {
	out := make([]*WorkspaceResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, FromWorkspace(w))
	}
	return out
}
