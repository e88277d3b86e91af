//go:build unit

package workspace_test

import (
	"strings"
	"testing"

	"cleanspace/internal/domain/schedule"
	"cleanspace/internal/domain/workspace"
	"cleanspace/internal/testutil/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.WorkspaceBuilder)
	errIs  error
}

func TestWorkspace(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewWorkspaceBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, uuid.Nil, actual.ID())
		assert.False(t, actual.IsPersisted())
		assert.Equal(t, "Room A", actual.Name())
		assert.Equal(t, 2, actual.Capacity())
		assert.Equal(t, "08:00:00", actual.OpeningHours().Open().String())
		assert.Equal(t, "18:00:00", actual.OpeningHours().Close().String())
		if diff := cmp.Diff(workspace.Properties{{Key: "floor", Value: "3"}}, actual.Properties()); diff != "" {
			t.Errorf("properties mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.WorkspaceBuilder) { b.WithName("   ") },
				errIs:  workspace.ErrInvalidName,
			},
			{
				name:   "empty name",
				mutate: func(b *builder.WorkspaceBuilder) { b.WithName("") },
				errIs:  workspace.ErrInvalidName,
			},
			{
				name:   "maximum length name",
				mutate: func(b *builder.WorkspaceBuilder) { b.WithName(strings.Repeat("a", workspace.MaxNameLength)) },
			},
			{
				name:   "name too long",
				mutate: func(b *builder.WorkspaceBuilder) { b.WithName(strings.Repeat("a", workspace.MaxNameLength+1)) },
				errIs:  workspace.ErrInvalidName,
			},
			{
				name:   "multibyte name counted in characters",
				mutate: func(b *builder.WorkspaceBuilder) { b.WithName(strings.Repeat("会", workspace.MaxNameLength)) },
			},
		})
	})

	t.Run("opening hours validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing hours",
				mutate: func(b *builder.WorkspaceBuilder) { b.WithoutHours() },
				errIs:  workspace.ErrInvalidOpeningHours,
			},
			{
				name: "open equals close",
				mutate: func(b *builder.WorkspaceBuilder) {
					b.WithHours(schedule.MustTimeOfDay(9, 0), schedule.MustTimeOfDay(9, 0))
				},
				errIs: workspace.ErrInvalidOpeningHours,
			},
			{
				name: "open after close",
				mutate: func(b *builder.WorkspaceBuilder) {
					b.WithHours(schedule.MustTimeOfDay(18, 0), schedule.MustTimeOfDay(9, 0))
				},
				errIs: workspace.ErrInvalidOpeningHours,
			},
		})
	})

	t.Run("capacity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum capacity",
				mutate: func(b *builder.WorkspaceBuilder) { b.WithCapacity(workspace.MinCapacity) },
			},
			{
				name:   "zero capacity",
				mutate: func(b *builder.WorkspaceBuilder) { b.WithCapacity(0) },
				errIs:  workspace.ErrInvalidCapacity,
			},
			{
				name:   "negative capacity",
				mutate: func(b *builder.WorkspaceBuilder) { b.WithCapacity(-3) },
				errIs:  workspace.ErrInvalidCapacity,
			},
		})
	})
}

func TestWorkspace_Equal(t *testing.T) {
	a, err := builder.NewWorkspaceBuilder().BuildDomain()
	require.NoError(t, err)
	b, err := builder.NewWorkspaceBuilder().BuildDomain()
	require.NoError(t, err)

	assert.False(t, a.Equal(b), "unsaved workspaces are never equal")
	assert.False(t, a.Equal(a), "unsaved workspace is not equal to itself")

	id := uuid.New()
	savedA, savedB := a.WithID(id), b.WithID(id)
	assert.True(t, savedA.Equal(savedB))
	assert.False(t, savedA.Equal(b.WithID(uuid.New())))
	assert.Equal(t, uuid.Nil, a.ID(), "WithID must not modify the receiver")
}

func TestWorkspace_PropertiesAreCopied(t *testing.T) {
	props := workspace.Properties{{Key: "projector", Value: "yes"}}
	w := builder.NewWorkspaceBuilder().WithProperties(props...).BuildPersisted()

	got := w.Properties()
	got[0].Value = "no"
	assert.Equal(t, "yes", w.Properties()[0].Value)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewWorkspaceBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
