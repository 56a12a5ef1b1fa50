package quota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedCounter(limit int, at time.Time) *Counter {
	c := NewCounter(limit)
	c.now = func() time.Time { return at }
	return c
}

func TestCounter_CheckAndRecord(t *testing.T) {
	c := fixedCounter(100, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	assert.True(t, c.Check(100))
	assert.False(t, c.Check(101))

	c.Record(60, "videos.list")
	assert.Equal(t, 60, c.Used())
	assert.True(t, c.Check(40))
	assert.False(t, c.Check(41))
}

func TestCounter_DayRollover(t *testing.T) {
	at := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)
	c := fixedCounter(10, at)
	c.Record(10, "videos.list")
	assert.False(t, c.Check(1))

	// Next Pacific-Time day resets the budget.
	at = at.Add(24 * time.Hour)
	c.now = func() time.Time { return at }
	assert.True(t, c.Check(10))
	assert.Equal(t, 0, c.Used())
}

func TestCounter_PacificDayBoundary(t *testing.T) {
	// 07:30 UTC is still the previous day in Pacific Time (midnight PT is
	// 07:00 or 08:00 UTC depending on DST), so usage at 06:59 UTC and 07:30
	// UTC the same UTC morning may or may not share a budget; what must hold
	// is that two instants on the same Pacific date share one.
	c := fixedCounter(10, time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))
	c.Record(5, "videos.list")

	c.now = func() time.Time { return time.Date(2025, 6, 2, 2, 0, 0, 0, time.UTC) } // still June 1 in PT
	assert.Equal(t, 5, c.Used())
}
