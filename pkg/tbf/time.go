package tbf

import (
	"time"

	"github.com/yatrago/yatrago/pkg/util"
)

const WallClockFormat = "15:04"

// ProjectTimeOnDate parses a "HH:mm" wall clock string onto the given
// calendar date. All times are naive local wall clock, no timezone
// conversion happens.
func ProjectTimeOnDate(date time.Time, wallClock string) (time.Time, error) {
	parsed, err := time.Parse(WallClockFormat, wallClock)
	if err != nil {
		return time.Time{}, err
	}

	return util.AddTimeToDate(date, parsed), nil
}

// DayWindow returns the [00:00, next day 00:00) window around a date, used
// to scope booking queries to a single journey instance.
func DayWindow(date time.Time) (time.Time, time.Time) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	return dayStart, dayStart.AddDate(0, 0, 1)
}
