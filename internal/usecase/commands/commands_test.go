//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cleanspace/internal/domain/schedule"
	"cleanspace/internal/domain/user"
	"cleanspace/internal/domain/workspace"
	"cleanspace/internal/infra"
	"cleanspace/internal/infra/memory"
	"cleanspace/internal/pkg/clock"
	"cleanspace/internal/testutil/builder"
	"cleanspace/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

var monday = time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func slot(t *testing.T, hour, minute, minutes int) schedule.TimeSlot {
	t.Helper()
	ts, err := schedule.NewTimeSlotMinutes(at(hour, minute), minutes)
	require.NoError(t, err)
	return ts
}

func newStore() *memory.Store {
	return memory.NewStore(clock.NewMockClock(monday))
}

func seedWorkspace(t *testing.T, store *memory.Store, b *builder.WorkspaceBuilder) *workspace.Workspace {
	t.Helper()
	ws, err := b.BuildDomain()
	require.NoError(t, err)

	var saved *workspace.Workspace
	require.NoError(t, store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		saved, err = tx.Workspaces().Save(ctx, ws)
		return err
	}))
	return saved
}

func seedUser(t *testing.T, store *memory.Store, email string) *user.User {
	t.Helper()
	u, err := builder.NewUserBuilder().WithEmail(email).BuildDomain()
	require.NoError(t, err)

	var saved *user.User
	require.NoError(t, store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		saved, err = tx.Users().Save(ctx, u)
		return err
	}))
	return saved
}

// brokenUoW fails every unit of work with a storage error.
type brokenUoW struct{}

var errStorageDown = infra.WrapRepoErr("storage unavailable", context.DeadlineExceeded, infra.KindDBFailure)

func (brokenUoW) Within(context.Context, func(context.Context, shared.Tx) error) error {
	return errStorageDown
}

func (brokenUoW) WithinReadOnly(context.Context, func(context.Context, shared.Tx) error) error {
	return errStorageDown
}
