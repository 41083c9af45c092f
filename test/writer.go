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

package test

import (
	"io"
	"sync"
)

// Writer is an implementation of the io.Writer interface. It should be used to
// capture output and to compare with predefined strings. It is safe to write
// to from one goroutine while reading from another.
type Writer struct {
	crit   sync.Mutex
	buffer []byte
}

func (tw *Writer) Write(p []byte) (n int, err error) {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	tw.buffer = append(tw.buffer, p...)
	return len(p), nil
}

// Clear string empties the write buffer.
func (tw *Writer) Clear() {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	tw.buffer = tw.buffer[:0]
}

// Compare buffered output with predefined/example string.
func (tw *Writer) Compare(s string) bool {
	return s == tw.String()
}

// String returns the current contents of writer's buffer.
func (tw *Writer) String() string {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return string(tw.buffer)
}

// FailingWriter is an implementation of the io.Writer interface that fails
// after a set number of successful writes. The Zero field controls how the
// failure is reported: if Zero is true then the failing Write() returns a
// count of zero and no error, otherwise the Err field is returned.
type FailingWriter struct {
	Writer

	// number of writes that will succeed
	Succeed int

	Zero bool
	Err  error

	count int
}

func (fw *FailingWriter) Write(p []byte) (n int, err error) {
	fw.count++
	if fw.count > fw.Succeed {
		if fw.Zero {
			return 0, nil
		}
		if fw.Err == nil {
			return 0, io.ErrClosedPipe
		}
		return 0, fw.Err
	}
	return fw.Writer.Write(p)
}
