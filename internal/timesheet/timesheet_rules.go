package timesheet

import (
	"strings"
	"time"

	"go-hrfine/internal/shared/dateutil"
	timesheeterrors "go-hrfine/internal/timesheet/errors"

	"gorm.io/datatypes"
)

// backfillWeeks is how many full weeks before the current one may still be
// stamped.
const backfillWeeks = 2

var overtimeStart = datatypes.NewTime(18, 0, 0, 0)

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return dateutil.Day(t).AddDate(0, 0, -offset)
}

// Window returns the first and last stamp dates accepted when today is the
// current date.
func Window(today datatypes.Date) (from, to time.Time) {
	to = dateutil.DateOf(today)
	return WeekStart(to).AddDate(0, 0, -7*backfillWeeks), to
}

// TotalTime renders end-start as HH:MM. Spans past midnight are rejected.
func TotalTime(start, end datatypes.Time) (string, error) {
	if end <= start {
		return "", timesheeterrors.ErrInvalidTimeRange
	}
	return dateutil.FormatClock(end - start), nil
}

// validate applies the stamp rules in order and fills TotalTime. The first
// broken rule is returned.
func validate(ts *TimeStamp, today datatypes.Date) error {
	from, to := Window(today)
	day := dateutil.DateOf(ts.StampDate)
	if day.Before(from) {
		return timesheeterrors.ErrStampTooOld.Withf(
			"Timestamps older than %s are not allowed.", from.Format(dateutil.DateLayout))
	}
	if day.After(to) {
		return timesheeterrors.ErrStampInFuture.Withf(
			"Future timestamps beyond %s are not allowed.", to.Format(dateutil.DateLayout))
	}

	total, err := TotalTime(ts.StartTime, ts.EndTime)
	if err != nil {
		return err
	}

	if ts.Disbursement {
		if ts.StampDetails == nil || strings.TrimSpace(*ts.StampDetails) == "" {
			return timesheeterrors.ErrDetailsRequired
		}
		if !ts.OverTime && !ts.TravelExpenses {
			return timesheeterrors.ErrDisbursementReason
		}
	}
	if (ts.OverTime || ts.TravelExpenses) && ts.StartTime < overtimeStart && ts.EndTime < overtimeStart {
		return timesheeterrors.ErrOvertimeWindow
	}

	ts.TotalTime = total
	return nil
}
