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
	"errors"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/padrelay/buffer"
	"github.com/jetsetilly/padrelay/curated"
	"github.com/jetsetilly/padrelay/events"
	"github.com/jetsetilly/padrelay/logger"
	"github.com/jetsetilly/padrelay/metrics"
	"github.com/jetsetilly/padrelay/shutdown"
)

// DefaultAddress is the address the socket transport listens on if no other
// address is specified.
const DefaultAddress = "127.0.0.1:50404"

// Error patterns for the socket transport.
const (
	BindError   = "socket: bind: %v"
	AcceptError = "socket: accept: %v"
	WriteError  = "socket: write: %v"
	ZeroWrite   = "socket: write: zero length write"
	NotAccepted = "socket: no client"
)

// State of the socket transport.
type State int32

// List of valid State values.
const (
	WaitingForClient State = iota
	Connected
	Closed
)

func (s State) String() string {
	switch s {
	case WaitingForClient:
		return "waiting for client"
	case Connected:
		return "connected"
	case Closed:
		return "closed"
	}
	return "unknown state"
}

// SocketOptions are the optional settings for the socket transport.
type SocketOptions struct {
	// the maximum time to wait for a client. zero means wait forever
	AcceptTimeout time.Duration

	// if non-zero the maximum time written data may remain unacknowledged
	// by the client before the connection is considered dead. only
	// supported on linux
	UserTimeout time.Duration
}

// Socket is a TCP server that accepts exactly one client and streams
// records to it. Once the client has gone the socket is closed and the
// shutdown token is set. There is no reconnection.
type Socket struct {
	token *shutdown.Token
	buf   *buffer.Buffer
	opts  SocketOptions

	// Metrics is nil unless metrics have been requested
	Metrics *metrics.Relay

	listener *net.TCPListener

	// the connected client. out is the same as conn except during testing
	conn net.Conn
	out  io.Writer

	state atomic.Int32

	closeOnce sync.Once
}

// NewSocket is the preferred method of initialisation for the Socket type. The
// address is bound immediately. A bind failure is a fatal startup error.
func NewSocket(token *shutdown.Token, buf *buffer.Buffer, address string, opts SocketOptions) (*Socket, error) {
	addr, err := net.ResolveTCPAddr("tcp", address)
	if err != nil {
		return nil, curated.Errorf(BindError, err)
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return nil, curated.Errorf(BindError, err)
	}

	s := &Socket{
		token:    token,
		buf:      buf,
		opts:     opts,
		listener: l,
	}
	s.state.Store(int32(WaitingForClient))

	logger.Logf(logger.Allow, "socket", "listening on %s", l.Addr())

	return s, nil
}

// Name implements the Transport interface.
func (s *Socket) Name() string {
	return "socket"
}

// Addr returns the address the socket is listening on.
func (s *Socket) Addr() net.Addr {
	return s.listener.Addr()
}

// State returns the current state of the socket.
func (s *Socket) State() State {
	return State(s.state.Load())
}

// Accept waits for a client to connect. The listener is closed once the
// client has connected or once accepting has failed. If the shutdown token is
// set while waiting then Accept() returns nil and the socket is closed.
func (s *Socket) Accept() error {
	if s.opts.AcceptTimeout > 0 {
		if err := s.listener.SetDeadline(time.Now().Add(s.opts.AcceptTimeout)); err != nil {
			return curated.Errorf(AcceptError, err)
		}
	}

	// unblock the call to AcceptTCP() if the token is set while waiting
	waiting := make(chan bool)
	defer close(waiting)
	go func() {
		select {
		case <-s.token.Done():
			s.listener.Close()
		case <-waiting:
		}
	}()

	conn, err := s.listener.AcceptTCP()
	s.listener.Close()

	if err != nil {
		s.state.Store(int32(Closed))
		if s.token.IsSet() {
			logger.Log(logger.Allow, "socket", "stopped waiting for client")
			return nil
		}
		return curated.Errorf(AcceptError, err)
	}

	if s.opts.UserTimeout > 0 {
		if err := setUserTimeout(conn, s.opts.UserTimeout); err != nil {
			logger.Logf(logger.Allow, "socket", "user timeout not set: %v", err)
		}
	}

	s.conn = conn
	s.out = conn
	s.state.Store(int32(Connected))

	logger.Logf(logger.Allow, "socket", "client connected from %s", conn.RemoteAddr())

	return nil
}

// Tick drains the event buffer and writes one record per event to the
// client. A failed or zero length write closes the socket and sets the
// shutdown token. Events in the batch after the failed write are dropped.
func (s *Socket) Tick() error {
	if s.State() != Connected {
		return curated.Errorf(NotAccepted)
	}

	evs := s.buf.DrainAll()
	s.Metrics.Drained(len(evs))

	for i, ev := range evs {
		n, err := events.Encode(s.out, ev)
		if err == nil && n == 0 {
			err = curated.Errorf(ZeroWrite)
		} else if err != nil {
			err = curated.Errorf(WriteError, err)
		}

		if err != nil {
			s.Metrics.Written(s.Name(), i)
			s.fail(err, len(evs)-i)
			return err
		}
	}

	s.Metrics.Written(s.Name(), len(evs))

	return nil
}

// fail moves the socket to the Closed state and sets the token.
func (s *Socket) fail(err error, dropped int) {
	s.state.Store(int32(Closed))
	s.token.Set(err.Error())
	if dropped > 0 {
		logger.Logf(logger.Allow, "socket", "%d records dropped", dropped)
		s.Metrics.Dropped(s.Name(), dropped)
	}
	s.Close()
}

// Loops implements the Transport interface. There is one loop. The loop
// waits for a client before it starts waiting on ticks.
func (s *Socket) Loops() []Loop {
	return []Loop{
		func(ticks <-chan time.Time) error {
			if err := s.Accept(); err != nil {
				s.token.Set(err.Error())
				return err
			}
			if s.State() != Connected {
				return nil
			}
			return tickLoop(s.token, ticks, s.Tick)
		},
	}
}

// Close implements the Transport interface.
func (s *Socket) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.state.Store(int32(Closed))
		s.listener.Close()
		if s.conn != nil {
			err = s.conn.Close()
			if errors.Is(err, net.ErrClosed) {
				err = nil
			}
		}
	})
	return err
}
