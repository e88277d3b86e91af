package queries

//go:generate mockgen -source=reservation.go -destination=../../testutil/mock/queries/reservation.go -package=queriesmock

import (
	"context"
	"strings"

	"cleanspace/internal/domain/reservation"
	"cleanspace/internal/infra"
	"cleanspace/internal/pkg/errs"
	"cleanspace/internal/usecase/shared"
)

type FindUserReservationsQuery struct {
	UserEmail string
}

type ReservationQueries interface {
	FindByUser(ctx context.Context, q FindUserReservationsQuery) ([]*reservation.Reservation, error)
}

type reservationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{uow: uow}
}

// FindByUser lists the user's reservations ordered by start time.
func (r *reservationQueriesImpl) FindByUser(ctx context.Context, q FindUserReservationsQuery) ([]*reservation.Reservation, error) {
	email := strings.TrimSpace(q.UserEmail)
	if email == "" {
		return nil, errs.Mark(errs.New("user email must be set"), errs.ErrInvalidArgument)
	}

	var result []*reservation.Reservation
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByEmail(ctx, email)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("user %q not found", email), errs.ErrInvalidArgument)
			}
			return err
		}

		result, err = tx.Reservations().FindByUserID(ctx, u.ID())
		return err
	})
	if err != nil {
		return nil, err
	}

	reservation.SortByStart(result)
	return result, nil
}
