// This file is part of Padrelay.
//
// Padrelay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padrelay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padrelay.  If not, see <https://www.gnu.org/licenses/>.

package ticker

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/padrelay/curated"
)

// DefaultPeriod is sixty ticks per second.
const DefaultPeriod = time.Second / 60

// InvalidPeriod is returned by NewScheduler() when the period is not positive.
const InvalidPeriod = "ticker: invalid period (%v)"

// how often the measured rate is updated
const measurementPeriod = time.Second

// Scheduler is a fixed period tick source with any number of subscribers.
type Scheduler struct {
	period time.Duration

	crit sync.Mutex
	subs []chan time.Time

	started  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
	stopped  chan struct{}

	// the measured number of ticks per second
	measured atomic.Value // float32
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(period time.Duration) (*Scheduler, error) {
	if period <= 0 {
		return nil, curated.Errorf(InvalidPeriod, period)
	}

	sch := &Scheduler{
		period:  period,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	sch.measured.Store(float32(0.0))

	return sch, nil
}

// PeriodFromRate converts a number of ticks per second to a period suitable
// for NewScheduler().
func PeriodFromRate(hz float64) (time.Duration, error) {
	if hz <= 0 {
		return 0, curated.Errorf(InvalidPeriod, hz)
	}
	return time.Duration(float64(time.Second) / hz), nil
}

// Period returns the period of the scheduler.
func (sch *Scheduler) Period() time.Duration {
	return sch.period
}

// Subscribe returns a new tick channel. Subscribing after Start() has been
// called is allowed. The new subscriber will receive the next tick.
func (sch *Scheduler) Subscribe() <-chan time.Time {
	c := make(chan time.Time, 1)
	sch.crit.Lock()
	sch.subs = append(sch.subs, c)
	sch.crit.Unlock()
	return c
}

// Start the scheduler. Calling Start() more than once has no effect.
func (sch *Scheduler) Start() {
	if !sch.started.CompareAndSwap(false, true) {
		return
	}
	go sch.run()
}

// Stop the scheduler. No more ticks will be sent once Stop() has returned.
// It is safe to call Stop() more than once and to call it without having
// called Start().
func (sch *Scheduler) Stop() {
	sch.stopOnce.Do(func() {
		close(sch.stop)
	})
	if sch.started.Load() {
		<-sch.stopped
	}
}

// Measured returns the number of ticks per second measured over the most
// recent measurement period. Returns zero until the first measurement has
// been made.
func (sch *Scheduler) Measured() float32 {
	return sch.measured.Load().(float32)
}

func (sch *Scheduler) run() {
	defer close(sch.stopped)

	pulse := time.NewTicker(sch.period)
	defer pulse.Stop()

	measureTime := time.Now()
	measureCt := 0

	for {
		select {
		case <-sch.stop:
			return
		case t := <-pulse.C:
			sch.crit.Lock()
			for _, c := range sch.subs {
				deliver(c, t)
			}
			sch.crit.Unlock()

			measureCt++
			if e := t.Sub(measureTime); e >= measurementPeriod {
				sch.measured.Store(float32(float64(measureCt) / e.Seconds()))
				measureTime = t
				measureCt = 0
			}
		}
	}
}

// deliver the tick to the channel without blocking. if the channel already
// has a pending tick then it is replaced.
func deliver(c chan time.Time, t time.Time) {
	select {
	case c <- t:
		return
	default:
	}

	// channel is full. remove the stale tick. the subscriber may have taken
	// it in the meantime so this must not block either
	select {
	case <-c:
	default:
	}

	select {
	case c <- t:
	default:
	}
}
