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

package transport_test

import (
	"net"
	"testing"
	"time"

	"github.com/jetsetilly/padrelay/test"
	"github.com/jetsetilly/padrelay/transport"
)

func TestSocketUserTimeout(t *testing.T) {
	s, _, _ := newSocket(t, transport.SocketOptions{UserTimeout: 1500 * time.Millisecond})

	done := make(chan error)
	go func() {
		done <- s.Accept()
	}()

	conn, err := net.Dial("tcp", s.Addr().String())
	test.DemandSuccess(t, err)
	defer conn.Close()
	test.DemandSuccess(t, <-done)

	v, err := s.UserTimeout()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, 1500*time.Millisecond)
}
