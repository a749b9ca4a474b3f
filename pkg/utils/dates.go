package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of date-only fields.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// Clock yields the current time in the clinic's time zone. A zero Clock
// uses time.Now in UTC.
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

// NewClock returns a clock for the given location backed by time.Now.
func NewClock(loc *time.Location) Clock {
	return Clock{Location: loc, Now: time.Now}
}

func (c Clock) now() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}

// Today returns the clinic's current calendar day as a calendar date.
func (c Clock) Today() time.Time {
	return CalendarDate(c.now())
}

// CalendarDate strips the clock from t, keeping t's calendar day, and
// anchors it at UTC midnight. Every date-only column holds values of this
// shape so equality and range comparisons are zone independent.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts "YYYY-MM-DD" or a full RFC 3339 timestamp and returns
// the calendar date it names.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return CalendarDate(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// FormatDate renders a calendar date as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateRange is a half-open interval [From, To) of calendar dates.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether the calendar date d falls in the range.
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.From) && d.Before(r.To)
}

// DayRange covers a single day.
func DayRange(year, month, day int) (DateRange, error) {
	from := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if from.Year() != year || int(from.Month()) != month || from.Day() != day {
		return DateRange{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return DateRange{From: from, To: from.AddDate(0, 0, 1)}, nil
}

// MonthRange covers a whole calendar month.
func MonthRange(year, month int) (DateRange, error) {
	if month < 1 || month > 12 {
		return DateRange{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{From: from, To: from.AddDate(0, 1, 0)}, nil
}

// YearRange covers a whole calendar year.
func YearRange(year int) DateRange {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{From: from, To: from.AddDate(1, 0, 0)}
}
