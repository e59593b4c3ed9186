package agentconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

var ErrInvalidTimezone = errors.New("invalid timezone")

// ParseClock parses "HH:MM" into minutes since midnight
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// WeekdayOf maps a time.Weekday onto a schedule key
func WeekdayOf(d time.Weekday) Weekday {
	switch d {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// Location loads the configured timezone, UTC when unset
func (b BusinessHours) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, b.Timezone, err)
	}
	return loc, nil
}

// IsOpen reports whether the agent is available at t.
// Disabled business hours mean always available; inactive or missing days are closed.
func (b BusinessHours) IsOpen(t time.Time) (bool, error) {
	if !b.Enabled {
		return true, nil
	}
	loc, err := b.Location()
	if err != nil {
		return false, err
	}
	local := t.In(loc)

	day, ok := b.Schedule[WeekdayOf(local.Weekday())]
	if !ok || !day.Active {
		return false, nil
	}
	start, err := ParseClock(day.Start)
	if err != nil {
		return false, err
	}
	end, err := ParseClock(day.End)
	if err != nil {
		return false, err
	}

	now := local.Hour()*60 + local.Minute()
	return now >= start && now < end, nil
}
