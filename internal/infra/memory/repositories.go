package memory

import (
	"context"

	"cleanspace/internal/domain/reservation"
	"cleanspace/internal/domain/schedule"
	"cleanspace/internal/domain/user"
	"cleanspace/internal/domain/workspace"
	"cleanspace/internal/infra"

	"github.com/google/uuid"
)

type workspaceRepo struct {
	tx *memTx
}

func (r *workspaceRepo) Save(_ context.Context, w *workspace.Workspace) (*workspace.Workspace, error) {
	for _, existing := range r.tx.allWorkspaces() {
		if sameKey(existing.Name(), w.Name()) {
			return nil, infra.WrapRepoErr("workspace name already exists", nil, infra.KindDuplicateKey)
		}
	}
	saved := w.WithID(uuid.New())
	r.tx.workspaces = append(r.tx.workspaces, saved)
	return saved, nil
}

func (r *workspaceRepo) FindByName(_ context.Context, name string) (*workspace.Workspace, error) {
	for _, w := range r.tx.allWorkspaces() {
		if sameKey(w.Name(), name) {
			return w, nil
		}
	}
	return nil, infra.NotFound("workspace not found")
}

func (r *workspaceRepo) FindAll(_ context.Context) ([]*workspace.Workspace, error) {
	return r.tx.allWorkspaces(), nil
}

type userRepo struct {
	tx *memTx
}

func (r *userRepo) Save(_ context.Context, u *user.User) (*user.User, error) {
	for _, existing := range r.tx.allUsers() {
		if existing.Email().EqualFold(u.Email()) {
			return nil, infra.WrapRepoErr("user email already exists", nil, infra.KindDuplicateKey)
		}
	}
	saved := u.WithID(uuid.New())
	r.tx.users = append(r.tx.users, saved)
	return saved, nil
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.tx.allUsers() {
		if sameKey(u.Email().Value(), email) {
			return u, nil
		}
	}
	return nil, infra.NotFound("user not found")
}

type reservationRepo struct {
	tx *memTx
}

func (r *reservationRepo) Save(_ context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	if !r.workspaceExists(res.WorkspaceID()) || !r.userExists(res.UserID()) {
		return nil, infra.WrapRepoErr("reservation references unknown workspace or user", nil, infra.KindForeignKeyViolated)
	}
	saved := res.Persisted(uuid.New(), r.tx.store.clock.Now())
	r.tx.reservations = append(r.tx.reservations, saved)
	return saved, nil
}

func (r *reservationRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*reservation.Reservation, error) {
	out := []*reservation.Reservation{}
	for _, res := range r.tx.allReservations() {
		if res.UserID() == userID {
			out = append(out, res)
		}
	}
	reservation.SortByStart(out)
	return out, nil
}

func (r *reservationRepo) FindConflictingWithTimeSlot(_ context.Context, slot schedule.TimeSlot) ([]*reservation.Reservation, error) {
	out := []*reservation.Reservation{}
	for _, res := range r.tx.allReservations() {
		if res.ConflictsWith(slot) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *reservationRepo) workspaceExists(id uuid.UUID) bool {
	for _, w := range r.tx.allWorkspaces() {
		if w.ID() == id {
			return true
		}
	}
	return false
}

func (r *reservationRepo) userExists(id uuid.UUID) bool {
	for _, u := range r.tx.allUsers() {
		if u.ID() == id {
			return true
		}
	}
	return false
}
