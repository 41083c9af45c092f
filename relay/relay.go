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

package relay

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/jetsetilly/padrelay/buffer"
	"github.com/jetsetilly/padrelay/curated"
	"github.com/jetsetilly/padrelay/events"
	"github.com/jetsetilly/padrelay/logger"
	"github.com/jetsetilly/padrelay/metrics"
	"github.com/jetsetilly/padrelay/shutdown"
	"github.com/jetsetilly/padrelay/source"
	"github.com/jetsetilly/padrelay/ticker"
	"github.com/jetsetilly/padrelay/transport"
)

// Error patterns returned by Run().
const (
	// a loop could not be joined cleanly. always fatal
	JoinError = "relay: join: %v"

	// the relay could not start. the socket transport could not accept a
	// client for example
	StartupError = "relay: startup: %v"
)

// Config for a Relay. Token and Buffer must be the same instances that were
// given to the transport.
type Config struct {
	// tick period for polling and draining. zero means ticker.DefaultPeriod
	Period time.Duration

	Token  *shutdown.Token
	Buffer *buffer.Buffer

	// Metrics can be nil
	Metrics *metrics.Relay
}

// Relay joins a source to a transport.
type Relay struct {
	cfg Config
	src source.Source
	tr  transport.Transport

	// instance IDs of attached devices. only used when the source does not
	// implement source.Counter
	attached map[uint32]struct{}
}

// New is the preferred method of initialisation for the Relay type. A nil
// Token or Buffer in the Config is replaced with a new instance.
func New(cfg Config, src source.Source, tr transport.Transport) *Relay {
	if cfg.Period == 0 {
		cfg.Period = ticker.DefaultPeriod
	}
	if cfg.Token == nil {
		cfg.Token = shutdown.NewToken()
	}
	if cfg.Buffer == nil {
		cfg.Buffer = buffer.NewBuffer()
	}
	return &Relay{
		cfg:      cfg,
		src:      src,
		tr:       tr,
		attached: make(map[uint32]struct{}),
	}
}

// Token returns the shutdown token used by the relay.
func (r *Relay) Token() *shutdown.Token {
	return r.cfg.Token
}

// Buffer returns the event buffer used by the relay.
func (r *Relay) Buffer() *buffer.Buffer {
	return r.cfg.Buffer
}

// Run the relay until the shutdown token has been set. Must be called from
// the goroutine that created the source.
//
// Errors from transport loops are logged and end the relay but are not
// returned, with two exceptions: a failure to start is returned as a
// StartupError and a loop that panicked is returned as a JoinError. A panic
// in the source is also returned as a JoinError once the transport loops
// have been joined.
func (r *Relay) Run() error {
	sch, err := ticker.NewScheduler(r.cfg.Period)
	if err != nil {
		return curated.Errorf(StartupError, err)
	}

	loops := r.tr.Loops()

	// one subscription per loop. subscriptions must be made before the
	// scheduler is started
	ticks := make([]<-chan time.Time, len(loops))
	for i := range loops {
		ticks[i] = sch.Subscribe()
	}
	sourceTicks := sch.Subscribe()

	logger.Logf(logger.Allow, "relay", "%s transport with %d loops at %s per tick", r.tr.Name(), len(loops), sch.Period())

	results := make([]error, len(loops))

	var wg sync.WaitGroup
	for i, l := range loops {
		wg.Add(1)
		go func(i int, l transport.Loop) {
			defer wg.Done()
			results[i] = r.runLoop(i, l, ticks[i])
		}(i, l)
	}

	sch.Start()
	srcErr := r.runSource(sourceTicks)
	sch.Stop()

	wg.Wait()

	logger.Logf(logger.Allow, "relay", "shutdown: %s", r.cfg.Token.Reason())
	logger.Logf(logger.Allow, "relay", "measured rate: %.2f ticks per second", sch.Measured())

	if err := r.tr.Close(); err != nil {
		logger.Logf(logger.Allow, "relay", "closing transport: %v", err)
	}
	if err := r.src.Close(); err != nil {
		logger.Logf(logger.Allow, "relay", "closing source: %v", err)
	}

	if srcErr != nil {
		return srcErr
	}

	return r.result(results)
}

// runLoop runs a transport loop and recovers from any panic. the token is set
// when the loop ends with an error
func (r *Relay) runLoop(i int, l transport.Loop, ticks <-chan time.Time) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = curated.Errorf(JoinError, fmt.Sprintf("%s loop %d: %v", r.tr.Name(), i, p))
			logger.Logf(logger.Allow, "relay", "%v\n%s", err, debug.Stack())
			r.cfg.Token.Set(err.Error())
		}
	}()

	err = l(ticks)
	if err != nil {
		r.cfg.Token.Set(err.Error())
	}

	return err
}

// runSource polls the source on every tick until the token is set. a panic
// in the source sets the token so that the transport loops end
func (r *Relay) runSource(ticks <-chan time.Time) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = curated.Errorf(JoinError, fmt.Sprintf("source: %v", p))
			logger.Logf(logger.Allow, "relay", "%v\n%s", err, debug.Stack())
			r.cfg.Token.Set(err.Error())
		}
	}()

	for {
		select {
		case <-ticks:
			if r.cfg.Token.IsSet() {
				return nil
			}
			r.poll()
		case <-r.cfg.Token.Done():
			return nil
		}
	}
}

func (r *Relay) poll() {
	evs := r.src.Poll()
	if len(evs) == 0 {
		return
	}

	r.cfg.Buffer.PushBatch(evs)

	m := r.cfg.Metrics
	if m == nil {
		return
	}

	m.Polled(len(evs))
	m.Pending(r.cfg.Buffer.Len())
	m.Devices(r.devices(evs))
}

// devices returns the number of attached devices after the batch. sources
// that keep their own record are asked directly. otherwise the count is
// taken from the added and removed events in the batch
func (r *Relay) devices(evs []events.ControllerEvent) int {
	if c, ok := r.src.(source.Counter); ok {
		return c.Devices()
	}

	for _, ev := range evs {
		switch ev := ev.(type) {
		case events.ControllerAdded:
			r.attached[ev.DeviceID] = struct{}{}
		case events.ControllerRemoved:
			delete(r.attached, ev.DeviceID)
		}
	}

	return len(r.attached)
}

// result decides what Run() returns from the results of the loops
func (r *Relay) result(results []error) error {
	var startup error

	for _, err := range results {
		if err == nil {
			continue
		}
		if curated.Has(err, JoinError) {
			return err
		}
		if curated.Has(err, transport.AcceptError) || curated.Has(err, transport.BindError) {
			if startup == nil {
				startup = curated.Errorf(StartupError, err)
			}
			continue
		}
		logger.Diagnosticf("relay", "transport error: %v", err)
	}

	return startup
}
