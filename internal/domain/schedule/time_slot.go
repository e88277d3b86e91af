package schedule

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidTimeSlot = errors.New("time slot duration must be positive")

// MaxMinutes is the longest duration in minutes that fits in a time.Duration.
const MaxMinutes = math.MaxInt64 / int64(time.Minute)

// TimeSlot is the half-open interval [start, start+duration).
type TimeSlot struct {
	start    time.Time
	duration time.Duration
}

func NewTimeSlot(start time.Time, duration time.Duration) (TimeSlot, error) {
	if duration <= 0 {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, duration: duration}, nil
}

func NewTimeSlotMinutes(start time.Time, minutes int) (TimeSlot, error) {
	if int64(minutes) > MaxMinutes {
		return TimeSlot{}, fmt.Errorf("%w: %d minutes is out of range", ErrInvalidTimeSlot, minutes)
	}
	return NewTimeSlot(start, time.Duration(minutes)*time.Minute)
}

func (ts TimeSlot) Start() time.Time        { return ts.start }
func (ts TimeSlot) Duration() time.Duration { return ts.duration }

func (ts TimeSlot) End() time.Time {
	return ts.start.Add(ts.duration)
}

// ConflictsWith reports whether the two slots share any instant. A slot ending
// exactly when the other starts does not conflict.
func (ts TimeSlot) ConflictsWith(other TimeSlot) bool {
	return ts.start.Before(other.End()) && ts.End().After(other.start)
}

func (ts TimeSlot) In(loc *time.Location) TimeSlot {
	return TimeSlot{start: ts.start.In(loc), duration: ts.duration}
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.End().Format(time.RFC3339))
}
