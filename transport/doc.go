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

// Package transport sends the contents of the event buffer to a consumer.
//
// There are two transports. The Socket transport accepts a single TCP client
// and streams records to it. The Console transport writes records to an
// io.Writer (normally stdout) and reads commands from an io.Reader (normally
// stdin).
//
// A transport is made up of one or more loops. Each loop is run in its own
// goroutine by the relay and is given its own tick channel. Every loop checks
// the shutdown token at the top of each tick and returns when it is set. A
// loop that fails sets the shutdown token before returning the error so that
// every other loop in the process also stops.
//
// Records are written with a single Write() call each and are not buffered
// between ticks.
package transport
