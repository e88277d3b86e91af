package memory

import (
	"context"
	"strings"
	"sync"

	"cleanspace/internal/domain/reservation"
	"cleanspace/internal/domain/user"
	"cleanspace/internal/domain/workspace"
	"cleanspace/internal/pkg/clock"
	"cleanspace/internal/usecase/shared"
)

// Store keeps every aggregate in process memory. Units of work are serialized
// behind a single lock; writes are staged and applied only when fn succeeds.
type Store struct {
	mu    sync.RWMutex
	clock clock.Clock

	workspaces   []*workspace.Workspace
	users        []*user.User
	reservations []*reservation.Reservation
}

func NewStore(clk clock.Clock) *Store {
	return &Store{clock: clk}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// WithinReadOnly shares the lock with other readers; writes attempted here are discarded.
func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(ctx, &memTx{store: s})
}

type memTx struct {
	store *Store

	workspaces   []*workspace.Workspace
	users        []*user.User
	reservations []*reservation.Reservation
}

func (t *memTx) Workspaces() shared.WorkspaceRepository     { return &workspaceRepo{tx: t} }
func (t *memTx) Users() shared.UserRepository               { return &userRepo{tx: t} }
func (t *memTx) Reservations() shared.ReservationRepository { return &reservationRepo{tx: t} }

func (t *memTx) commit() {
	t.store.workspaces = append(t.store.workspaces, t.workspaces...)
	t.store.users = append(t.store.users, t.users...)
	t.store.reservations = append(t.store.reservations, t.reservations...)
}

func (t *memTx) allWorkspaces() []*workspace.Workspace {
	return concat(t.store.workspaces, t.workspaces)
}

func (t *memTx) allUsers() []*user.User {
	return concat(t.store.users, t.users)
}

func (t *memTx) allReservations() []*reservation.Reservation {
	return concat(t.store.reservations, t.reservations)
}

func concat[T any](committed, staged []T) []T {
	out := make([]T, 0, len(committed)+len(staged))
	out = append(out, committed...)
	return append(out, staged...)
}

func sameKey(a, b string) bool {
	return strings.EqualFold(a, b)
}
