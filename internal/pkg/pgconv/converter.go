package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"cleanspace/internal/domain/schedule"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrNullValue            = errors.New("unexpected NULL value")
	ErrCalendarIntervalUsed = errors.New("interval with a month component cannot be converted to a duration")
)

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

// DurationToInterval stores durations as pure-microsecond intervals so arithmetic
// like start_time + duration never depends on calendar rules.
func DurationToInterval(d time.Duration) pgtype.Interval {
	return pgtype.Interval{Microseconds: d.Microseconds(), Valid: true}
}

// DurationFromInterval counts a day as 24 hours. Months have no fixed length and are rejected.
func DurationFromInterval(iv pgtype.Interval) (time.Duration, error) {
	if !iv.Valid {
		return 0, ErrNullValue
	}
	if iv.Months != 0 {
		return 0, ErrCalendarIntervalUsed
	}
	return time.Duration(iv.Days)*24*time.Hour + time.Duration(iv.Microseconds)*time.Microsecond, nil
}

func TimeOfDayToPgtype(t schedule.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Offset().Microseconds(), Valid: true}
}

func TimeOfDayFromPgtype(pt pgtype.Time) (schedule.TimeOfDay, error) {
	if !pt.Valid {
		return schedule.TimeOfDay{}, ErrNullValue
	}
	return schedule.TimeOfDayFromOffset(time.Duration(pt.Microseconds) * time.Microsecond)
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
