package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

const day = 24 * time.Hour

// TimeOfDay is a wall-clock offset from midnight in [00:00, 24:00).
type TimeOfDay struct {
	offset time.Duration
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{
		offset: time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second,
	}, nil
}

func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, 0)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayFromOffset is used by persistence adapters that store times as an offset from midnight.
func TimeOfDayFromOffset(offset time.Duration) (TimeOfDay, error) {
	if offset < 0 || offset >= day {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{offset: offset}, nil
}

// TimeOfDayOf returns the wall-clock time of t in t's own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{
		offset: time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
			time.Duration(s)*time.Second + time.Duration(t.Nanosecond()),
	}
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
}

func (t TimeOfDay) Offset() time.Duration { return t.offset }

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.offset < other.offset }

func (t TimeOfDay) After(other TimeOfDay) bool { return t.offset > other.offset }

func (t TimeOfDay) String() string {
	return time.Time{}.Add(t.offset).Format("15:04:05")
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
