package repository

import (
	"context"

	"cleanspace/internal/domain/reservation"
	"cleanspace/internal/domain/schedule"
	"cleanspace/internal/infra"
	"cleanspace/internal/infra/db"
	"cleanspace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertReservation = `
INSERT INTO reservations (workspace_id, user_id, start_time, duration)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

	selectReservationColumns = `SELECT id, workspace_id, user_id, start_time, duration, created_at FROM reservations`

	selectReservationsByUser = selectReservationColumns + `
WHERE user_id = $1
ORDER BY start_time, id`

	// half-open overlap with [$1, $2)
	selectConflictingReservations = selectReservationColumns + `
WHERE start_time < $2 AND start_time + duration > $1
ORDER BY start_time, id`
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	slot := res.TimeSlot()

	var (
		id        uuid.UUID
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, insertReservation,
		res.WorkspaceID(),
		res.UserID(),
		pgconv.TimeToPgtype(slot.Start()),
		pgconv.DurationToInterval(slot.Duration()),
	).Scan(&id, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return res.Persisted(id, pgconv.TimeFromPgtype(createdAt)), nil
}

func (r *ReservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*reservation.Reservation, error) {
	return r.query(ctx, selectReservationsByUser, userID)
}

func (r *ReservationRepository) FindConflictingWithTimeSlot(ctx context.Context, slot schedule.TimeSlot) ([]*reservation.Reservation, error) {
	return r.query(ctx, selectConflictingReservations,
		pgconv.TimeToPgtype(slot.Start()),
		pgconv.TimeToPgtype(slot.End()),
	)
}

type reservationRow struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	UserID      uuid.UUID
	StartTime   pgtype.Timestamptz
	Duration    pgtype.Interval
	CreatedAt   pgtype.Timestamptz
}

func (r *ReservationRepository) query(ctx context.Context, sql string, args ...any) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByPos[reservationRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}

	out := make([]*reservation.Reservation, 0, len(records))
	for _, rec := range records {
		res, err := toReservation(rec)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation row", err)
		}
		out = append(out, res)
	}
	return out, nil
}

func toReservation(rec reservationRow) (*reservation.Reservation, error) {
	d, err := pgconv.DurationFromInterval(rec.Duration)
	if err != nil {
		return nil, err
	}
	slot, err := schedule.NewTimeSlot(pgconv.TimeFromPgtype(rec.StartTime), d)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(rec.ID, rec.WorkspaceID, rec.UserID, slot, pgconv.TimeFromPgtype(rec.CreatedAt)), nil
}
