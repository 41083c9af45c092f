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

package logger_test

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/jetsetilly/padrelay/logger"
	"github.com/jetsetilly/padrelay/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for exactly the correct number of entries is okay
	tw.Clear()
	logger.Tail(tw, 2)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))

	// denied entries are never made
	tw.Clear()
	logger.Log(logger.Deny, "test3", "denied")
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))
}

func TestRepeat(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Log(logger.Allow, "socket", "write failed")
	logger.Log(logger.Allow, "socket", "write failed")
	logger.Log(logger.Allow, "socket", "write failed")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("socket: write failed (repeat x3)\n"))
}

func TestEcho(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Logf(logger.Allow, "relay", "tick %d", 1)
	logger.SetEcho(tw, true)
	defer logger.SetEcho(nil, false)
	logger.Logf(logger.Allow, "relay", "tick %d", 2)
	test.ExpectSuccess(t, tw.Compare("relay: tick 1\nrelay: tick 2\n"))

	tw.Clear()
	c := logger.NewColorizer(tw)
	logger.SetEcho(c, false)
	logger.Log(logger.Allow, "relay", "coloured")
	test.ExpectSuccess(t, tw.Compare("\033[36mrelay\033[0m: coloured\n"))
}

func TestDiagnostic(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}
	logger.SetDiagnostic(tw)
	defer logger.SetDiagnostic(os.Stderr)

	// ordinary entries are not diagnostics
	logger.Log(logger.Allow, "relay", "quiet")
	test.ExpectSuccess(t, tw.Compare(""))

	logger.Diagnosticf("relay", "transport error: %s", "consumer gone")
	test.ExpectSuccess(t, tw.Compare("* relay: transport error: consumer gone\n"))

	// diagnostics are also in the log
	lw := &test.Writer{}
	logger.Write(lw)
	test.ExpectSuccess(t, lw.Compare("relay: quiet\nrelay: transport error: consumer gone\n"))

	// when echo is on the entry is echoed and not written to the diagnostic
	// writer as well
	tw.Clear()
	ew := &test.Writer{}
	logger.SetEcho(ew, false)
	defer logger.SetEcho(nil, false)
	logger.Diagnostic("console", "end of input")
	test.ExpectSuccess(t, tw.Compare(""))
	test.ExpectSuccess(t, ew.Compare("console: end of input\n"))
}

func TestBounded(t *testing.T) {
	logger.Clear()

	// many goroutines writing at once
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				logger.Log(logger.Allow, fmt.Sprintf("g%d", i), fmt.Sprintf("%d", j))
			}
		}(i)
	}
	wg.Wait()

	var n int
	logger.BorrowLog(func(e []logger.Entry) {
		n = len(e)
	})
	test.ExpectEquality(t, n, 256)
}
