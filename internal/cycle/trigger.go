package cycle

import "time"

// trigger is a repeating callback together with its schedule.
type trigger struct {
	interval time.Duration
	deadline time.Time
	fire     func(now time.Time)
}

func (t *trigger) start(now time.Time) {
	t.deadline = now.Add(t.interval)
}

// setInterval restarts the trigger from now.
func (t *trigger) setInterval(d time.Duration, now time.Time) {
	t.interval = d
	t.start(now)
}

// poll fires the callback once if the deadline has passed. Missed periods
// are dropped rather than replayed.
func (t *trigger) poll(now time.Time) bool {
	if now.Before(t.deadline) {
		return false
	}
	t.deadline = now.Add(t.interval)
	t.fire(now)
	return true
}
