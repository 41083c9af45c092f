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

// Package shutdown implements the cooperative cancellation token shared by
// every loop in the relay.
//
// A Token is created once, before any goroutine is started, and a pointer to
// it is given to every component that needs it. It starts in the clear state.
// Any participant may set it. Once set it never returns to the clear state.
//
// Loops check the token at the top of every tick and return when it is set.
// There is no locking: the token is a single atomic value with no other
// state attached to it.
package shutdown

import (
	"sync"
	"sync/atomic"
)

// Token is the shutdown flag. The zero value is a clear token ready for use
// but NewToken() should be preferred.
type Token struct {
	set atomic.Bool

	// closed when the token is set so that goroutines that are blocked in
	// something other than a tick can select on it
	done     chan struct{}
	doneOnce sync.Once

	// the reason given by the first call to Set()
	reason atomic.Value // string
}

// NewToken is the preferred method of initialisation for the Token type.
func NewToken() *Token {
	return &Token{
		done: make(chan struct{}),
	}
}

// Set the token. The reason is recorded the first time the token is set and
// ignored on subsequent calls. Returns true if this call changed the state of
// the token.
func (tk *Token) Set(reason string) bool {
	if !tk.set.CompareAndSwap(false, true) {
		return false
	}
	tk.reason.Store(reason)
	tk.doneOnce.Do(func() {
		if tk.done != nil {
			close(tk.done)
		}
	})
	return true
}

// IsSet returns true if the token has been set.
func (tk *Token) IsSet() bool {
	return tk.set.Load()
}

// Reason returns the reason given by the first call to Set(). Returns the
// empty string if the token is clear.
func (tk *Token) Reason() string {
	if r, ok := tk.reason.Load().(string); ok {
		return r
	}
	return ""
}

// Done returns a channel that is closed when the token is set. Returns nil
// (which blocks forever in a select) if the token was not created with
// NewToken().
func (tk *Token) Done() <-chan struct{} {
	return tk.done
}
