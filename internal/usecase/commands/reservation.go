package commands

//go:generate mockgen -source=reservation.go -destination=../../testutil/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"log/slog"

	"cleanspace/internal/domain/reservation"
	"cleanspace/internal/domain/schedule"
	"cleanspace/internal/domain/user"
	"cleanspace/internal/domain/workspace"
	"cleanspace/internal/infra"
	"cleanspace/internal/pkg/errs"
	"cleanspace/internal/pkg/metrics"
	"cleanspace/internal/usecase/shared"
)

var errWorkspaceClosed = errs.New("requested time slot is outside the workspace opening hours")

type CreateReservationCommand struct {
	WorkspaceName string
	UserEmail     string
	TimeSlot      schedule.TimeSlot
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, cmd CreateReservationCommand) (*reservation.Reservation, error)
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
}

func NewReservationCommands(uow shared.UnitOfWork, publisher shared.EventPublisher) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		publisher: publisher,
	}
}

// CreateReservation runs every lookup, the admission decision and the save inside one
// unit of work, so two concurrent requests can never both see the last free seat.
func (r *reservationCommandsImpl) CreateReservation(ctx context.Context, cmd CreateReservationCommand) (*reservation.Reservation, error) {
	var (
		saved *reservation.Reservation
		ws    *workspace.Workspace
		u     *user.User
	)

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ws, err = tx.Workspaces().FindByName(ctx, cmd.WorkspaceName)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("workspace %q not found", cmd.WorkspaceName), errs.ErrWorkspaceNotFound)
			}
			return err
		}

		u, err = tx.Users().FindByEmail(ctx, cmd.UserEmail)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("user %q not found", cmd.UserEmail), errs.ErrInvalidArgument)
			}
			return err
		}

		if !ws.IsOpenWithin(cmd.TimeSlot) {
			return errs.Mark(errWorkspaceClosed, errs.ErrInvalidArgument)
		}

		conflicting, err := tx.Reservations().FindConflictingWithTimeSlot(ctx, cmd.TimeSlot)
		if err != nil {
			return err
		}

		if err := reservation.Admit(reservation.Candidate{
			WorkspaceID: ws.ID(),
			UserID:      u.ID(),
			Capacity:    ws.Capacity(),
		}, conflicting); err != nil {
			return markAdmission(err)
		}

		saved, err = tx.Reservations().Save(ctx, reservation.NewReservation(ws.ID(), u.ID(), cmd.TimeSlot))
		return err
	})
	metrics.RecordAdmission(admissionOutcome(err))
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "reservation created",
		"reservation_id", saved.ID(),
		"workspace", ws.Name(),
		"user_id", u.ID())

	if err := r.publisher.PublishReservationCreated(ctx, shared.ReservationCreated{
		ReservationID: saved.ID(),
		WorkspaceID:   ws.ID(),
		WorkspaceName: ws.Name(),
		UserID:        u.ID(),
		UserEmail:     u.Email().Value(),
		Start:         saved.TimeSlot().Start(),
		End:           saved.TimeSlot().End(),
		CreatedAt:     saved.CreatedAt(),
	}); err != nil {
		slog.WarnContext(ctx, "reservation event not published",
			"reservation_id", saved.ID(),
			"error", err)
	}

	return saved, nil
}

func markAdmission(err error) error {
	switch err {
	case reservation.ErrDuplicateReservation:
		return errs.Mark(err, errs.ErrDuplicateReservation)
	case reservation.ErrWorkspaceFull:
		return errs.Mark(err, errs.ErrWorkspaceFull)
	default:
		return err
	}
}

func admissionOutcome(err error) string {
	switch errs.Kind(err) {
	case nil:
		if err != nil {
			return metrics.OutcomeError
		}
		return metrics.OutcomeAdmitted
	case errs.ErrDuplicateReservation:
		return metrics.OutcomeDuplicate
	case errs.ErrWorkspaceFull:
		return metrics.OutcomeFull
	case errs.ErrWorkspaceNotFound:
		return metrics.OutcomeWorkspaceNotFound
	default:
		return metrics.OutcomeRejected
	}
}
