package workspace

import (
	"errors"
	"strings"
	"unicode/utf8"

	"cleanspace/internal/domain/schedule"

	"github.com/google/uuid"
)

const (
	MaxNameLength = 125
	MinCapacity   = 1
)

var (
	ErrInvalidName         = errors.New("workspace name must be set and at most 125 characters")
	ErrInvalidOpeningHours = errors.New("opening hours must be set and open before they close")
	ErrInvalidCapacity     = errors.New("workspace capacity must be at least 1")
)

// Fields is the validated input for a new workspace.
type Fields struct {
	Name         string
	OpeningHours *schedule.OpeningHours
	Capacity     int
	Properties   Properties
}

type Workspace struct {
	id           uuid.UUID
	name         string
	openingHours schedule.OpeningHours
	capacity     int
	properties   Properties
}

func New(f Fields) (*Workspace, error) {
	if err := ValidateName(f.Name); err != nil {
		return nil, err
	}
	if err := ValidateOpeningHours(f.OpeningHours); err != nil {
		return nil, err
	}
	if err := ValidateCapacity(f.Capacity); err != nil {
		return nil, err
	}
	return &Workspace{
		name:         f.Name,
		openingHours: *f.OpeningHours,
		capacity:     f.Capacity,
		properties:   f.Properties.Clone(),
	}, nil
}

// Reconstruct rebuilds a persisted workspace without re-validating it.
func Reconstruct(id uuid.UUID, name string, hours schedule.OpeningHours, capacity int, props Properties) *Workspace {
	return &Workspace{
		id:           id,
		name:         name,
		openingHours: hours,
		capacity:     capacity,
		properties:   props.Clone(),
	}
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return ErrInvalidName
	}
	return nil
}

func ValidateOpeningHours(hours *schedule.OpeningHours) error {
	if hours == nil || !hours.IsValid() {
		return ErrInvalidOpeningHours
	}
	return nil
}

func ValidateCapacity(capacity int) error {
	if capacity < MinCapacity {
		return ErrInvalidCapacity
	}
	return nil
}

// WithID returns a copy carrying the identity assigned by persistence.
func (w *Workspace) WithID(id uuid.UUID) *Workspace {
	cp := *w
	cp.id = id
	cp.properties = w.properties.Clone()
	return &cp
}

func (w *Workspace) IsPersisted() bool { return w.id != uuid.Nil }

// Equal compares identities; unsaved workspaces are never equal.
func (w *Workspace) Equal(other *Workspace) bool {
	if w == nil || other == nil || !w.IsPersisted() || !other.IsPersisted() {
		return false
	}
	return w.id == other.id
}

func (w *Workspace) IsOpenWithin(slot schedule.TimeSlot) bool {
	return w.openingHours.IsOpenWithin(slot)
}

func (w *Workspace) ID() uuid.UUID                       { return w.id }
func (w *Workspace) Name() string                        { return w.name }
func (w *Workspace) OpeningHours() schedule.OpeningHours { return w.openingHours }
func (w *Workspace) Capacity() int                       { return w.capacity }
func (w *Workspace) Properties() Properties              { return w.properties.Clone() }
