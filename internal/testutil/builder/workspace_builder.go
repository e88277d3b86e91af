//go:build unit || e2e

package builder

import (
	"cleanspace/internal/domain/schedule"
	"cleanspace/internal/domain/workspace"

	"github.com/google/uuid"
)

type WorkspaceBuilder struct {
	ID         uuid.UUID
	Name       string
	Open       schedule.TimeOfDay
	Close      schedule.TimeOfDay
	NoHours    bool
	Capacity   int
	Properties workspace.Properties
}

func NewWorkspaceBuilder() *WorkspaceBuilder {
	return &WorkspaceBuilder{
		Name:     "Room A",
		Open:     schedule.MustTimeOfDay(8, 0),
		Close:    schedule.MustTimeOfDay(18, 0),
		Capacity: 2,
		Properties: workspace.Properties{
			{Key: "floor", Value: "3"},
		},
	}
}

func (b *WorkspaceBuilder) With(mutate func(*WorkspaceBuilder)) *WorkspaceBuilder {
	mutate(b)
	return b
}

func (b *WorkspaceBuilder) WithName(name string) *WorkspaceBuilder {
	b.Name = name
	return b
}

func (b *WorkspaceBuilder) WithHours(openAt, closeAt schedule.TimeOfDay) *WorkspaceBuilder {
	b.Open, b.Close = openAt, closeAt
	return b
}

func (b *WorkspaceBuilder) WithoutHours() *WorkspaceBuilder {
	b.NoHours = true
	return b
}

func (b *WorkspaceBuilder) WithCapacity(capacity int) *WorkspaceBuilder {
	b.Capacity = capacity
	return b
}

func (b *WorkspaceBuilder) WithProperties(props ...workspace.Property) *WorkspaceBuilder {
	b.Properties = props
	return b
}

func (b *WorkspaceBuilder) WithID(id uuid.UUID) *WorkspaceBuilder {
	b.ID = id
	return b
}

func (b *WorkspaceBuilder) Hours() *schedule.OpeningHours {
	if b.NoHours {
		return nil
	}
	hours := schedule.NewOpeningHours(b.Open, b.Close)
	return &hours
}

func (b *WorkspaceBuilder) Fields() workspace.Fields {
	return workspace.Fields{
		Name:         b.Name,
		OpeningHours: b.Hours(),
		Capacity:     b.Capacity,
		Properties:   b.Properties,
	}
}

// Build methods
func (b *WorkspaceBuilder) BuildDomain() (*workspace.Workspace, error) {
	return workspace.New(b.Fields())
}

// BuildPersisted skips validation and assigns an identity (random unless set).
func (b *WorkspaceBuilder) BuildPersisted() *workspace.Workspace {
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return workspace.Reconstruct(id, b.Name, schedule.NewOpeningHours(b.Open, b.Close), b.Capacity, b.Properties)
}
