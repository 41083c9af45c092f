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
	"bufio"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/padrelay/buffer"
	"github.com/jetsetilly/padrelay/curated"
	"github.com/jetsetilly/padrelay/events"
	"github.com/jetsetilly/padrelay/logger"
	"github.com/jetsetilly/padrelay/metrics"
	"github.com/jetsetilly/padrelay/shutdown"
)

// Error patterns for the console transport.
const (
	ConsoleWriteError = "console: write: %v"
	ConsoleReadError  = "console: read: %v"
)

// ExitCommand is the only command understood by the console transport.
const ExitCommand = "exit"

// a line read from the console input. err is non-nil if reading failed,
// including io.EOF
type consoleLine struct {
	text string
	err  error
}

// Console writes records to an output stream and accepts commands from an
// input stream. Usually these are stdout and stdin.
type Console struct {
	token *shutdown.Token
	buf   *buffer.Buffer

	// Metrics is nil unless metrics have been requested
	Metrics *metrics.Relay

	in  io.Reader
	out *bufio.Writer

	// lines from the input stream are delivered one at a time
	lines      chan consoleLine
	readerOnce sync.Once
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(token *shutdown.Token, buf *buffer.Buffer, in io.Reader, out io.Writer) *Console {
	return &Console{
		token: token,
		buf:   buf,
		in:    in,
		out:   bufio.NewWriter(out),
		lines: make(chan consoleLine, 1),
	}
}

// Name implements the Transport interface.
func (con *Console) Name() string {
	return "console"
}

// Loops implements the Transport interface. There are two loops, one for
// writing and one for reading.
func (con *Console) Loops() []Loop {
	return []Loop{con.RunWriter, con.RunReader}
}

// RunWriter writes records on every tick until the token is set.
func (con *Console) RunWriter(ticks <-chan time.Time) error {
	return tickLoop(con.token, ticks, con.WriteTick)
}

// RunReader handles at most one line of input on every tick until the token
// is set.
func (con *Console) RunReader(ticks <-chan time.Time) error {
	con.startReader()
	return tickLoop(con.token, ticks, con.ReadTick)
}

// WriteTick drains the event buffer and writes one record per event. The
// output is flushed after every record. A failed write sets the token.
func (con *Console) WriteTick() error {
	evs := con.buf.DrainAll()
	con.Metrics.Drained(len(evs))

	for i, ev := range evs {
		err := con.write(ev)
		if err != nil {
			con.Metrics.Written(con.Name(), i)
			con.Metrics.Dropped(con.Name(), len(evs)-i)
			con.token.Set(err.Error())
			logger.Logf(logger.Allow, "console", "%d records dropped", len(evs)-i)
			return err
		}
	}

	con.Metrics.Written(con.Name(), len(evs))

	return nil
}

func (con *Console) write(ev events.ControllerEvent) error {
	n, err := events.Encode(con.out, ev)
	if err != nil {
		return curated.Errorf(ConsoleWriteError, err)
	}
	if n == 0 {
		return curated.Errorf(ConsoleWriteError, io.ErrShortWrite)
	}
	if err := con.out.Flush(); err != nil {
		return curated.Errorf(ConsoleWriteError, err)
	}
	return nil
}

// ReadTick takes at most one line of input, without blocking. A read error,
// including the end of the input stream, sets the token.
func (con *Console) ReadTick() error {
	select {
	case l := <-con.lines:
		if l.err != nil {
			if errors.Is(l.err, io.EOF) {
				con.token.Set("console: end of input")
				logger.Diagnostic("console", "end of input")
				return nil
			}
			err := curated.Errorf(ConsoleReadError, l.err)
			con.token.Set(err.Error())
			return err
		}
		if con.HandleLine(l.text) {
			con.token.Set("console: exit command")
			logger.Log(logger.Allow, "console", "exit command")
		}
	default:
	}
	return nil
}

// HandleLine returns true if the line is the exit command. Surrounding
// whitespace is ignored. Any other line is ignored.
func (con *Console) HandleLine(line string) bool {
	return strings.TrimSpace(line) == ExitCommand
}

// the reader goroutine is not joined. a blocking read of the input stream
// cannot be interrupted and the goroutine ends when the process ends.
func (con *Console) startReader() {
	con.readerOnce.Do(func() {
		go func() {
			r := bufio.NewReader(con.in)
			for {
				s, err := r.ReadString('\n')
				if len(s) > 0 {
					if !con.deliver(consoleLine{text: s}) {
						return
					}
				}
				if err != nil {
					con.deliver(consoleLine{err: err})
					return
				}
			}
		}()
	})
}

// deliver returns false if the token was set before the line could be
// delivered.
func (con *Console) deliver(l consoleLine) bool {
	select {
	case con.lines <- l:
		return true
	case <-con.token.Done():
		return false
	}
}

// Close implements the Transport interface. Any remaining output is flushed.
// The input and output streams are not closed.
func (con *Console) Close() error {
	if err := con.out.Flush(); err != nil {
		return curated.Errorf(ConsoleWriteError, err)
	}
	return nil
}
