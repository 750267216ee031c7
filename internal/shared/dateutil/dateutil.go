// Package dateutil converts between wire strings and the gorm date and
// clock column types.
package dateutil

import (
	"fmt"
	"strings"
	"time"

	"go-hrfine/internal/shared/apperror"

	"gorm.io/datatypes"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

func ParseDate(field, s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return datatypes.Date{}, apperror.Invalid("%s must be a date in YYYY-MM-DD format", field)
	}
	return datatypes.Date(t), nil
}

// ParseDatePtr treats nil and blank as "no date".
func ParseDatePtr(field string, s *string) (*datatypes.Date, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	d, err := ParseDate(field, *s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

func FormatDatePtr(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := FormatDate(*d)
	return &s
}

// Day truncates t to its calendar date in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateOf returns the stored date as UTC midnight so dates compare by day.
func DateOf(d datatypes.Date) time.Time {
	y, m, day := time.Time(d).Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// ParseClock accepts HH:MM or HH:MM:SS.
func ParseClock(field, s string) (datatypes.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", ClockLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
		}
	}
	return 0, apperror.Invalid("%s must be a time in HH:MM format", field)
}

// FormatClock renders a clock time as HH:MM.
func FormatClock(t datatypes.Time) string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// Clock reads the current time in the business timezone.
type Clock struct {
	Loc *time.Location
	Now func() time.Time
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Loc: loc, Now: time.Now}
}

// Time returns now in the clock's location.
func (c Clock) Time() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	if c.Loc == nil {
		return now()
	}
	return now().In(c.Loc)
}

// Today is the current calendar day in the clock's location, stored as UTC
// midnight like every other parsed date.
func (c Clock) Today() datatypes.Date {
	y, m, d := c.Time().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
