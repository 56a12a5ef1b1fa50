// Package quota tracks daily usage of the metered video platform API.
package quota

import (
	"log"
	"sync"
	"time"

	"forkful/internal/port"
)

// Counter implements port.QuotaService with a mutex-guarded daily budget.
// The platform resets quotas at midnight Pacific Time, so days are keyed in
// that zone regardless of server locale. Counters are injected explicitly
// into whatever calls the metered API; there is no package-level instance.
type Counter struct {
	mu         sync.Mutex
	dailyLimit int
	day        string
	used       int
	loc        *time.Location
	now        func() time.Time
}

var _ port.QuotaService = (*Counter)(nil)

// NewCounter creates a Counter with the given daily unit budget.
func NewCounter(dailyLimit int) *Counter {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		// No tzdata on the host; PST without DST is the closest stand-in.
		loc = time.FixedZone("PST", -8*3600)
	}
	return &Counter{
		dailyLimit: dailyLimit,
		loc:        loc,
		now:        time.Now,
	}
}

// Check reports whether units more can be spent today.
func (c *Counter) Check(units int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollover()
	return c.used+units <= c.dailyLimit
}

// Record charges units against today's budget, attributed to op.
func (c *Counter) Record(units int, op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollover()
	c.used += units
	log.Printf("quota.Counter: %s used %d units (%d/%d today)", op, units, c.used, c.dailyLimit)
}

// Used returns today's consumed units.
func (c *Counter) Used() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollover()
	return c.used
}

// rollover resets the count when the Pacific-Time date has changed.
// Callers must hold c.mu.
func (c *Counter) rollover() {
	today := c.now().In(c.loc).Format("2006-01-02")
	if c.day != today {
		c.day = today
		c.used = 0
	}
}
