package schedule

import "time"

// OpeningHours is the daily window during which a workspace can be booked.
type OpeningHours struct {
	open  TimeOfDay
	close TimeOfDay
}

func NewOpeningHours(openAt, closeAt TimeOfDay) OpeningHours {
	return OpeningHours{open: openAt, close: closeAt}
}

func (oh OpeningHours) Open() TimeOfDay  { return oh.open }
func (oh OpeningHours) Close() TimeOfDay { return oh.close }

func (oh OpeningHours) IsValid() bool {
	return oh.open.Before(oh.close)
}

func (oh OpeningHours) Duration() time.Duration {
	return oh.close.offset - oh.open.offset
}

// IsOpenWithin compares wall-clock times only: the start must be strictly after opening
// and the end strictly before closing. Dates are ignored, so a slot ending on a later day
// passes as long as both times of day fall inside the window.
func (oh OpeningHours) IsOpenWithin(slot TimeSlot) bool {
	start, end := slot.Start(), slot.End().In(slot.Start().Location())
	return oh.open.Before(TimeOfDayOf(start)) && oh.close.After(TimeOfDayOf(end))
}
