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

// Package metrics counts the activity of the relay with Prometheus counters.
//
// A nil *Relay is valid and every method does nothing. Components hold a
// *Relay that is nil unless the user asked for metrics on the command line.
package metrics

import (
	"errors"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jetsetilly/padrelay/curated"
	"github.com/jetsetilly/padrelay/logger"
)

// ServeError is returned by Serve() when the metrics address cannot be bound.
const ServeError = "metrics: %v"

// Relay is the collection of relay metrics.
type Relay struct {
	registry *prometheus.Registry

	polled  prometheus.Counter
	drained prometheus.Counter
	written *prometheus.CounterVec
	dropped *prometheus.CounterVec
	pending prometheus.Gauge
	devices prometheus.Gauge
}

// NewRelay is the preferred method of initialisation for the Relay type. The
// metrics are registered with a new registry, not the global default.
func NewRelay() *Relay {
	m := &Relay{
		registry: prometheus.NewRegistry(),
		polled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padrelay_events_polled_total",
			Help: "Total events returned by the input source.",
		}),
		drained: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padrelay_events_drained_total",
			Help: "Total events removed from the event buffer by a transport.",
		}),
		written: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "padrelay_records_written_total",
			Help: "Total records written to a consumer.",
		}, []string{"transport"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "padrelay_records_dropped_total",
			Help: "Total records not written because the consumer failed.",
		}, []string{"transport"}),
		pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "padrelay_buffer_pending",
			Help: "Number of events in the event buffer after the most recent push.",
		}),
		devices: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "padrelay_devices_attached",
			Help: "Number of controllers currently attached.",
		}),
	}

	m.registry.MustRegister(m.polled, m.drained, m.written, m.dropped, m.pending, m.devices)

	return m
}

// Polled adds to the number of events returned by the source.
func (m *Relay) Polled(n int) {
	if m == nil {
		return
	}
	m.polled.Add(float64(n))
}

// Drained adds to the number of events drained from the buffer.
func (m *Relay) Drained(n int) {
	if m == nil {
		return
	}
	m.drained.Add(float64(n))
}

// Written adds to the number of records written by the named transport.
func (m *Relay) Written(transport string, n int) {
	if m == nil {
		return
	}
	m.written.WithLabelValues(transport).Add(float64(n))
}

// Dropped adds to the number of records dropped by the named transport.
func (m *Relay) Dropped(transport string, n int) {
	if m == nil {
		return
	}
	m.dropped.WithLabelValues(transport).Add(float64(n))
}

// Pending sets the number of events waiting in the buffer.
func (m *Relay) Pending(n int) {
	if m == nil {
		return
	}
	m.pending.Set(float64(n))
}

// Devices sets the number of attached controllers.
func (m *Relay) Devices(n int) {
	if m == nil {
		return
	}
	m.devices.Set(float64(n))
}

// Gather returns the current value of every metric. Useful for testing.
func (m *Relay) Gather() (map[string]float64, error) {
	mfs, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	vals := make(map[string]float64)
	for _, mf := range mfs {
		for _, mt := range mf.GetMetric() {
			name := mf.GetName()
			for _, l := range mt.GetLabel() {
				name += "/" + l.GetValue()
			}
			switch {
			case mt.GetCounter() != nil:
				vals[name] = mt.GetCounter().GetValue()
			case mt.GetGauge() != nil:
				vals[name] = mt.GetGauge().GetValue()
			}
		}
	}

	return vals, nil
}

// Serve the metrics over HTTP on the address. The server runs in its own
// goroutine until Close() is called on the returned server. The Addr field of
// the returned server is the address actually bound, which is useful if the
// port in the address argument was zero.
func (m *Relay) Serve(address string) (*http.Server, error) {
	l, err := net.Listen("tcp", address)
	if err != nil {
		return nil, curated.Errorf(ServeError, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: l.Addr().String(), Handler: mux}

	go func() {
		err := srv.Serve(l)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logf(logger.Allow, "metrics", "%v", err)
		}
	}()

	logger.Logf(logger.Allow, "metrics", "serving on %s/metrics", l.Addr())

	return srv, nil
}
