package scheduler

import (
	"context"
	"time"
)

// DefaultInterval is the tick period of a Loop. Browsers clamp a zero-delay
// interval to roughly this value.
const DefaultInterval = 4 * time.Millisecond

// Loop ticks a Manual in real time. Every, Clear and the tasks themselves all
// run on the goroutine that calls Run. Other goroutines hand work to the loop
// with Post.
type Loop struct {
	Interval time.Duration

	// OnTick is called after each tick, on the loop goroutine.
	OnTick func()

	manual Manual
	posts  chan func()
}

// NewLoop creates a Loop ticking at the given interval. A non-positive
// interval selects DefaultInterval.
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		Interval: interval,
		posts:    make(chan func(), 64),
	}
}

// Every implements the Scheduler interface. It must only be called from the
// loop goroutine, or before Run is called.
func (l *Loop) Every(task func()) TaskID {
	return l.manual.Every(task)
}

// Clear implements the Scheduler interface. The same restrictions as Every
// apply.
func (l *Loop) Clear(id TaskID) {
	l.manual.Clear(id)
}

// Active returns the number of running tasks.
func (l *Loop) Active() int {
	return l.manual.Active()
}

// Post queues fn to run on the loop goroutine. It blocks if the queue is full
// and returns false if ctx is done first.
func (l *Loop) Post(ctx context.Context, fn func()) bool {
	select {
	case l.posts <- fn:
		return true
	case <-ctx.Done():
		return false
	}
}

// Run ticks the loop until ctx is done. Posted functions run between ticks.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-l.posts:
			fn()
		case <-ticker.C:
			l.manual.Tick()
			if l.OnTick != nil {
				l.OnTick()
			}
		}
	}
}
