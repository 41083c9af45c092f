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

// Package relay joins a source.Source to a transport.Transport.
//
// The source is polled on the goroutine that calls Run(). Every poll pushes
// the new events onto the event buffer and every tick of a transport loop
// drains the buffer. All loops are driven by the same ticker.Scheduler.
//
// Run() returns when the shutdown token has been set and every transport loop
// has ended. The token is set by a transport when the consumer goes away, by
// the console's exit command or by the caller (usually on receipt of an
// interrupt signal).
//
// Because the source is polled on the calling goroutine, Run() must be called
// from the main thread when the source is SDL.
package relay
