package shared

import (
	"context"

	"cleanspace/internal/domain/reservation"
	"cleanspace/internal/domain/schedule"
	"cleanspace/internal/domain/user"
	"cleanspace/internal/domain/workspace"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations; all reads and the write observe one state
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Workspaces() WorkspaceRepository
	Users() UserRepository
	Reservations() ReservationRepository
}

// Find* methods report a missing row as an infra.RepositoryError of kind NOT_FOUND.
type WorkspaceRepository interface {
	Save(ctx context.Context, w *workspace.Workspace) (*workspace.Workspace, error)
	FindByName(ctx context.Context, name string) (*workspace.Workspace, error)
	// FindAll returns workspaces in creation order.
	FindAll(ctx context.Context) ([]*workspace.Workspace, error)
}

type UserRepository interface {
	Save(ctx context.Context, u *user.User) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type ReservationRepository interface {
	Save(ctx context.Context, r *reservation.Reservation) (*reservation.Reservation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*reservation.Reservation, error)
	// FindConflictingWithTimeSlot returns every reservation in any workspace whose slot overlaps slot.
	FindConflictingWithTimeSlot(ctx context.Context, slot schedule.TimeSlot) ([]*reservation.Reservation, error)
}

type PasswordEncoder interface {
	Encode(raw string) (string, error)
	Matches(raw, encoded string) bool
}
