package queries

//go:generate mockgen -source=workspace.go -destination=../../testutil/mock/queries/workspace.go -package=queriesmock

import (
	"context"

	"cleanspace/internal/domain/reservation"
	"cleanspace/internal/domain/schedule"
	"cleanspace/internal/domain/workspace"
	"cleanspace/internal/pkg/metrics"
	"cleanspace/internal/usecase/shared"
)

type FindAvailableWorkspacesQuery struct {
	TimeSlot           schedule.TimeSlot
	MinCapacity        *int
	RequiredProperties workspace.Properties
}

type WorkspaceQueries interface {
	FindAvailable(ctx context.Context, q FindAvailableWorkspacesQuery) ([]*workspace.Workspace, error)
	FindAll(ctx context.Context) ([]*workspace.Workspace, error)
}

type workspaceQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewWorkspaceQueries(uow shared.UnitOfWork) WorkspaceQueries {
	return &workspaceQueriesImpl{uow: uow}
}

// FindAvailable returns the workspaces matching the filters that still have a free
// seat during the slot, in creation order. Opening hours are not considered, and a
// minimum capacity of zero or below filters nothing.
func (w *workspaceQueriesImpl) FindAvailable(ctx context.Context, q FindAvailableWorkspacesQuery) ([]*workspace.Workspace, error) {
	var available []*workspace.Workspace
	err := w.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		all, err := tx.Workspaces().FindAll(ctx)
		if err != nil {
			return err
		}
		conflicting, err := tx.Reservations().FindConflictingWithTimeSlot(ctx, q.TimeSlot)
		if err != nil {
			return err
		}

		available = workspace.SelectAvailable(all, workspace.Criteria{
			MinCapacity:        q.MinCapacity,
			RequiredProperties: q.RequiredProperties,
		}, reservation.CountByWorkspace(conflicting))
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordAvailabilityQuery(len(available))
	return available, nil
}

func (w *workspaceQueriesImpl) FindAll(ctx context.Context) ([]*workspace.Workspace, error) {
	var all []*workspace.Workspace
	err := w.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		all, err = tx.Workspaces().FindAll(ctx)
		return err
	})
	return all, err
}
