package dateutil_test

import (
	"testing"
	"time"

	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/dateutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := dateutil.ParseDate("stamp_date", " 2025-03-07 ")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-07", dateutil.FormatDate(d))

	_, err = dateutil.ParseDate("stamp_date", "07/03/2025")
	assert.Equal(t, "stamp_date must be a date in YYYY-MM-DD format", apperror.ToHTTP(err).Message)

	blank := "  "
	p, err := dateutil.ParseDatePtr("date_birth", &blank)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Nil(t, dateutil.FormatDatePtr(nil))
}

func TestParseClock(t *testing.T) {
	for _, in := range []string{"18:05", "18:05:00"} {
		c, err := dateutil.ParseClock("start_time", in)
		require.NoError(t, err, in)
		assert.Equal(t, "18:05", dateutil.FormatClock(c))
	}

	_, err := dateutil.ParseClock("end_time", "6pm")
	assert.Equal(t, "end_time must be a time in HH:MM format", apperror.ToHTTP(err).Message)
}

func TestClockToday_UsesLocation(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*3600)
	// 20:00 UTC on the 1st is already the 2nd in Bangkok.
	c := dateutil.Clock{Loc: bangkok, Now: func() time.Time {
		return time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	}}

	today := c.Today()
	assert.Equal(t, "2025-03-02", dateutil.FormatDate(today))
	assert.Equal(t, time.UTC, time.Time(today).Location())
	assert.Equal(t, bangkok, c.Time().Location())
}

func TestDateOf(t *testing.T) {
	d, err := dateutil.ParseDate("d", "2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), dateutil.DateOf(d))
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		dateutil.Day(time.Date(2025, 1, 31, 13, 45, 0, 0, time.UTC)))
}
