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

package shutdown_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/padrelay/shutdown"
	"github.com/jetsetilly/padrelay/test"
)

func TestToken(t *testing.T) {
	tk := shutdown.NewToken()
	test.ExpectFailure(t, tk.IsSet())
	test.ExpectEquality(t, tk.Reason(), "")

	test.ExpectSuccess(t, tk.Set("first"))
	test.ExpectSuccess(t, tk.IsSet())

	// setting again is allowed but changes nothing
	test.ExpectFailure(t, tk.Set("second"))
	test.ExpectSuccess(t, tk.IsSet())
	test.ExpectEquality(t, tk.Reason(), "first")

	select {
	case <-tk.Done():
	default:
		t.Errorf("done channel should be closed")
	}
}

func TestTokenConcurrentSet(t *testing.T) {
	tk := shutdown.NewToken()

	var wg sync.WaitGroup
	var crit sync.Mutex
	changed := 0

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tk.Set("concurrent") {
				crit.Lock()
				changed++
				crit.Unlock()
			}
		}()
	}
	wg.Wait()

	// exactly one goroutine changed the state
	test.ExpectEquality(t, changed, 1)
	test.ExpectSuccess(t, tk.IsSet())
}

func TestTokenDone(t *testing.T) {
	tk := shutdown.NewToken()

	go func() {
		time.Sleep(10 * time.Millisecond)
		tk.Set("timer")
	}()

	select {
	case <-tk.Done():
	case <-time.After(time.Second):
		t.Fatalf("done channel was not closed")
	}
}

func TestZeroToken(t *testing.T) {
	var tk shutdown.Token
	test.ExpectFailure(t, tk.IsSet())
	tk.Set("zero")
	test.ExpectSuccess(t, tk.IsSet())
	test.ExpectSuccess(t, tk.Done() == nil)
}
