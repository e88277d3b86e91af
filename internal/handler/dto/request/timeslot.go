package request

import (
	"time"

	"cleanspace/internal/domain/schedule"
	"cleanspace/internal/pkg/errs"
)

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTimeSlot reads start either as RFC 3339 or as a wall-clock time without an
// offset. The result is expressed in loc so opening hours compare against local time.
func ParseTimeSlot(start string, durationInMinutes int, loc *time.Location) (schedule.TimeSlot, error) {
	t, err := parseStart(start, loc)
	if err != nil {
		return schedule.TimeSlot{}, err
	}
	slot, err := schedule.NewTimeSlotMinutes(t, durationInMinutes)
	if err != nil {
		return schedule.TimeSlot{}, errs.Mark(err, errs.ErrInvalidArgument)
	}
	return slot, nil
}

func parseStart(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.Mark(errs.Newf("invalid start time %q", s), errs.ErrInvalidArgument)
}
