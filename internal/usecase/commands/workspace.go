package commands

//go:generate mockgen -source=workspace.go -destination=../../testutil/mock/commands/workspace.go -package=commandsmock

import (
	"context"
	"log/slog"

	"cleanspace/internal/domain/schedule"
	"cleanspace/internal/domain/workspace"
	"cleanspace/internal/infra"
	"cleanspace/internal/pkg/errs"
	"cleanspace/internal/pkg/metrics"
	"cleanspace/internal/usecase/shared"
)

type CreateWorkspaceCommand struct {
	Name         string
	OpeningHours *schedule.OpeningHours
	Capacity     int
	Properties   workspace.Properties
}

type WorkspaceCommands interface {
	CreateWorkspace(ctx context.Context, cmd CreateWorkspaceCommand) (*workspace.Workspace, error)
}

type workspaceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewWorkspaceCommands(uow shared.UnitOfWork) WorkspaceCommands {
	return &workspaceCommandsImpl{uow: uow}
}

// CreateWorkspace validates in a fixed order: name, uniqueness, opening hours, capacity.
func (w *workspaceCommandsImpl) CreateWorkspace(ctx context.Context, cmd CreateWorkspaceCommand) (*workspace.Workspace, error) {
	if err := workspace.ValidateName(cmd.Name); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}

	var created *workspace.Workspace
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Workspaces().FindByName(ctx, cmd.Name)
		switch {
		case err == nil:
			return duplicateWorkspace(cmd.Name)
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		if err := workspace.ValidateOpeningHours(cmd.OpeningHours); err != nil {
			return errs.Mark(err, errs.ErrInvalidOpeningHours)
		}
		if err := workspace.ValidateCapacity(cmd.Capacity); err != nil {
			return errs.Mark(err, errs.ErrInvalidArgument)
		}

		ws, err := workspace.New(workspace.Fields{
			Name:         cmd.Name,
			OpeningHours: cmd.OpeningHours,
			Capacity:     cmd.Capacity,
			Properties:   cmd.Properties,
		})
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidArgument)
		}

		created, err = tx.Workspaces().Save(ctx, ws)
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return duplicateWorkspace(cmd.Name)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWorkspaceCreated()
	slog.InfoContext(ctx, "workspace created", "workspace_id", created.ID(), "name", created.Name())
	return created, nil
}

func duplicateWorkspace(name string) error {
	return errs.Mark(errs.Newf("workspace %q already exists", name), errs.ErrDuplicateWorkspace)
}
