package clock

import (
	"sync"
	"time"
)

// DateLayout is how auction dates are stored; lexicographic order matches
// chronological order.
const DateLayout = "2006-01-02"

// Clock supplies the current wall-clock time in the fixed operating timezone.
// Business logic never reads the system clock directly.
type Clock interface {
	Now() time.Time
}

// ZoneClock is the production clock: system time converted to a fixed zone.
type ZoneClock struct {
	loc *time.Location
}

// NewZoneClock returns a clock pinned to the given location.
func NewZoneClock(loc *time.Location) *ZoneClock {
	return &ZoneClock{loc: loc}
}

// FixedOffset builds a DST-free location at the given offset from UTC.
func FixedOffset(name string, offsetMinutes int) *time.Location {
	return time.FixedZone(name, offsetMinutes*60)
}

func (c *ZoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// DateOf formats a time as an auction date string.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// Fake is a settable clock for tests.
type Fake struct {
	mu sync.Mutex
	t  time.Time
}

// NewFake returns a fake clock frozen at the given time.
func NewFake(t time.Time) *Fake {
	return &Fake{t: t}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

// Set moves the fake clock to an absolute time.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = t
}

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}
