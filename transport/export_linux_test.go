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
	"net"
	"time"

	"golang.org/x/sys/unix"
)

// UserTimeout returns the TCP_USER_TIMEOUT value of the client connection.
func (s *Socket) UserTimeout() (time.Duration, error) {
	raw, err := s.conn.(*net.TCPConn).SyscallConn()
	if err != nil {
		return 0, err
	}

	var v int
	var opErr error
	err = raw.Control(func(fd uintptr) {
		v, opErr = unix.GetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_USER_TIMEOUT)
	})
	if err != nil {
		return 0, err
	}

	return time.Duration(v) * time.Millisecond, opErr
}
