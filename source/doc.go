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

// Package source defines the interface to the input subsystem that produces
// controller events.
//
// A Source is polled once per tick. Poll() must not block and returns every
// event observed since the previous call. Most input subsystems (SDL in
// particular) require that they are only ever used from one thread. Poll()
// must therefore only ever be called from the thread that created the Source.
// The relay package guarantees this by calling Poll() from the goroutine that
// calls relay.Run(), which the padrelay command locks to the main thread.
//
// The Registry type is the device bookkeeping shared by implementations. It
// maps the instance ID of a device to the open device and its button layout
// and is used to normalise raw button events. A Registry is owned by a single
// Source and is never seen by the relay.
//
// The SDL implementation is in the sdlsource sub-package.
package source
