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

package transport

import (
	"time"

	"github.com/jetsetilly/padrelay/shutdown"
)

// Loop is a single tick driven loop of a transport. It should return nil when
// the shutdown token has been set and an error if the loop ended because of a
// failure.
type Loop func(ticks <-chan time.Time) error

// Transport is implemented by the Socket and Console types.
type Transport interface {
	// Name of the transport. Used in log entries and metrics.
	Name() string

	// Loops returns the list of loops that make up the transport. Each loop
	// will be run in its own goroutine.
	Loops() []Loop

	// Close releases any I/O handles owned by the transport. It is safe to
	// call Close() more than once.
	Close() error
}

// tickLoop calls f() on every tick until the token is set or f() returns an
// error. the token is checked before f() is called.
func tickLoop(token *shutdown.Token, ticks <-chan time.Time, f func() error) error {
	for !token.IsSet() {
		select {
		case <-ticks:
			if token.IsSet() {
				return nil
			}
			if err := f(); err != nil {
				return err
			}
		case <-token.Done():
			return nil
		}
	}
	return nil
}
