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

package source

import (
	"github.com/jetsetilly/padrelay/events"
)

// Source is the interface to the input subsystem.
type Source interface {
	// Poll returns all events observed since the previous call. It must not
	// block. Must only be called from the thread that created the Source.
	Poll() []events.ControllerEvent

	// Close releases all devices and the input subsystem.
	Close() error
}

// Counter is implemented by sources that keep a record of open devices.
type Counter interface {
	// Devices returns the number of open devices.
	Devices() int
}

// Func adapts a function to the Source interface. Close() does nothing.
type Func func() []events.ControllerEvent

// Poll implements the Source interface.
func (f Func) Poll() []events.ControllerEvent {
	return f()
}

// Close implements the Source interface.
func (f Func) Close() error {
	return nil
}

// Script is a Source that returns a predefined list of batches, one batch per
// call to Poll(). Once the list has been exhausted Poll() returns nothing.
// Useful for testing and for running the relay without a controller.
type Script struct {
	Batches [][]events.ControllerEvent
	next    int
}

// Poll implements the Source interface.
func (s *Script) Poll() []events.ControllerEvent {
	if s.next >= len(s.Batches) {
		return nil
	}
	b := s.Batches[s.next]
	s.next++
	return b
}

// Close implements the Source interface.
func (s *Script) Close() error {
	return nil
}

// Exhausted returns true if every batch has been returned by Poll().
func (s *Script) Exhausted() bool {
	return s.next >= len(s.Batches)
}
