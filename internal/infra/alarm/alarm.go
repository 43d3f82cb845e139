// Package alarm provides the jittered one-shot flush timer.
package alarm

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"pushkit/config"
	"pushkit/internal/util"
)

// Alarm fires once after a random interval drawn uniformly from [min, max].
// Enable arms it only when disarmed, so repeated signals never double-schedule.
type Alarm struct {
	logger *slog.Logger
	min    time.Duration
	max    time.Duration
	jitter func(n int64) int64

	mu    sync.Mutex
	timer *time.Timer
	fired chan struct{}
	due   time.Time
	gen   uint64
}

// New creates an alarm from the flush interval bounds
func New(cfg *config.Config, logger *slog.Logger) *Alarm {
	return NewWithBounds(cfg.Flush.MinInterval, cfg.Flush.MaxInterval, logger)
}

// NewWithBounds creates an alarm with explicit bounds
func NewWithBounds(minInterval, maxInterval time.Duration, logger *slog.Logger) *Alarm {
	if maxInterval < minInterval {
		maxInterval = minInterval
	}

	return &Alarm{
		logger: logger,
		min:    minInterval,
		max:    maxInterval,
		jitter: rand.Int64N,
		fired:  make(chan struct{}, 1),
	}
}

// Enable arms the alarm unless it is already armed. It reports whether it armed.
func (a *Alarm) Enable() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		return false
	}

	delay := a.nextDelay()
	a.gen++
	gen := a.gen
	a.due = time.Now().Add(delay)
	a.timer = time.AfterFunc(delay, func() { a.fire(gen) })
	a.logger.Debug("Flush alarm armed", slog.String("in", util.FormatDuration(delay)))

	return true
}

// Disable cancels a pending alarm.
func (a *Alarm) Disable() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
		a.due = time.Time{}
	}
}

// Armed reports whether a fire is pending and when.
func (a *Alarm) Armed() (time.Time, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.due, a.timer != nil
}

// Fired delivers one value per fire.
func (a *Alarm) Fired() <-chan struct{} {
	return a.fired
}

func (a *Alarm) fire(gen uint64) {
	a.mu.Lock()
	// A stale timer that lost the race with Disable/Enable must not fire.
	if gen != a.gen || a.timer == nil {
		a.mu.Unlock()

		return
	}
	a.timer = nil
	a.due = time.Time{}
	a.mu.Unlock()

	select {
	case a.fired <- struct{}{}:
	default:
	}
}

func (a *Alarm) nextDelay() time.Duration {
	span := int64(a.max - a.min)
	if span <= 0 {
		return a.min
	}

	return a.min + time.Duration(a.jitter(span+1))
}
