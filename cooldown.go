package embedo

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// cooldowns limits every user to one command per period.
type cooldowns struct {
	mu       sync.Mutex
	period   time.Duration
	limiters map[string]*rate.Limiter
}

func newCooldowns(period time.Duration) *cooldowns {
	return &cooldowns{
		period:   period,
		limiters: make(map[string]*rate.Limiter),
	}
}

// allow reports whether user may issue a command now and, if so,
// starts their cooldown.
func (c *cooldowns) allow(user string) bool {
	if c.period <= 0 {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	lim, ok := c.limiters[user]
	if !ok {
		lim = rate.NewLimiter(rate.Every(c.period), 1)
		c.limiters[user] = lim
	}
	return lim.Allow()
}

// sweep forgets users whose cooldown has fully elapsed and returns how
// many were removed.
func (c *cooldowns) sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for user, lim := range c.limiters {
		if lim.Tokens() >= 1 {
			delete(c.limiters, user)
			removed++
		}
	}
	return removed
}

func (c *cooldowns) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.limiters)
}
