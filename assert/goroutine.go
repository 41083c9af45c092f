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

// Package assert contains functions that help check assumptions about the
// running program that the type system can't express.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GetGoroutineID returns the ID of the current goroutine.
//
// The ID is taken from the first line of the stack trace. It is not fast and
// should not be used in performance critical code.
func GetGoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that first calls Check(). Subsequent calls to
// Check() report whether they are from the same goroutine. The zero value is
// ready to use.
type Owner struct {
	id atomic.Uint64
}

// Check returns true if the calling goroutine is the owner. The first caller
// becomes the owner.
func (o *Owner) Check() bool {
	id := GetGoroutineID()
	if o.id.CompareAndSwap(0, id) {
		return true
	}
	return o.id.Load() == id
}

// ID returns the ID of the owning goroutine or zero if there is no owner yet.
func (o *Owner) ID() uint64 {
	return o.id.Load()
}
