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

// Package buffer implements the Event Buffer. The buffer sits between the
// source of controller events and the transport that sends them. There is
// one producer and one consumer.
//
// Push() and PushBatch() append to the tail of the buffer. DrainAll() removes
// the entire contents in one operation and returns them in the order they
// were pushed. The lock is only ever held for the append or for swapping the
// backing slice. No I/O is ever performed while holding the lock and no
// reference to the internal storage ever escapes the lock: the slice returned
// by DrainAll() belongs to the caller.
package buffer

import (
	"sync"

	"github.com/jetsetilly/padrelay/events"
)

// initial capacity of the backing slice. sixty events per tick is plenty for
// a controller being used normally
const initialCap = 64

// Buffer is the shared, lock protected list of pending events.
type Buffer struct {
	crit    sync.Mutex
	pending []events.ControllerEvent
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer() *Buffer {
	return &Buffer{
		pending: make([]events.ControllerEvent, 0, initialCap),
	}
}

// Push appends an event to the buffer.
func (b *Buffer) Push(ev events.ControllerEvent) {
	b.crit.Lock()
	b.pending = append(b.pending, ev)
	b.crit.Unlock()
}

// PushBatch appends every event in the list to the buffer. The whole batch
// is appended under the same lock so a batch is never split between drains.
func (b *Buffer) PushBatch(evs []events.ControllerEvent) {
	if len(evs) == 0 {
		return
	}
	b.crit.Lock()
	b.pending = append(b.pending, evs...)
	b.crit.Unlock()
}

// DrainAll removes and returns the entire contents of the buffer in push
// order. Returns an empty list if the buffer is empty. Never blocks for
// longer than it takes to swap the backing slice.
func (b *Buffer) DrainAll() []events.ControllerEvent {
	b.crit.Lock()
	defer b.crit.Unlock()

	if len(b.pending) == 0 {
		return []events.ControllerEvent{}
	}

	drained := b.pending
	b.pending = make([]events.ControllerEvent, 0, max(initialCap, len(drained)))

	return drained
}

// Len returns the number of pending events.
func (b *Buffer) Len() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return len(b.pending)
}
