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

package source_test

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/padrelay/events"
	"github.com/jetsetilly/padrelay/layout"
	"github.com/jetsetilly/padrelay/logger"
	"github.com/jetsetilly/padrelay/source"
	"github.com/jetsetilly/padrelay/test"
)

type handle struct {
	closed int
}

func (h *handle) Close() error {
	h.closed++
	return nil
}

var switchPro = layout.ID{Vendor: 0x057e, Product: 0x2009}
var xbox = layout.ID{Vendor: 0x045e, Product: 0x028e}

func TestRegistry(t *testing.T) {
	reg := source.NewRegistry(layout.NewDefaultTable())

	ha := &handle{}
	d := reg.Add(1, "Pro Controller", switchPro, ha)
	test.ExpectEquality(t, d.Layout.Name, "Nintendo Switch Pro Controller")

	hb := &handle{}
	d = reg.Add(2, "Xbox 360 Controller", xbox, hb)
	test.ExpectEquality(t, d.Layout, layout.Generic)
	test.ExpectEquality(t, reg.Len(), 2)

	// remapped for switch pro
	ev := reg.Button(10, 1, events.A, true)
	test.ExpectEquality(t, ev, events.ButtonPress{Timestamp: 10, DeviceID: 1, Button: events.B, Pressed: true})

	// unchanged for xbox
	ev = reg.Button(11, 2, events.A, true)
	test.ExpectEquality(t, ev, events.ButtonPress{Timestamp: 11, DeviceID: 2, Button: events.A, Pressed: true})

	// removing closes the handle
	test.ExpectSuccess(t, reg.Remove(1))
	test.ExpectEquality(t, ha.closed, 1)
	test.ExpectFailure(t, reg.Remove(1))
	test.ExpectEquality(t, ha.closed, 1)

	_, ok := reg.Lookup(1)
	test.ExpectFailure(t, ok)

	reg.CloseAll()
	test.ExpectEquality(t, hb.closed, 1)
	test.ExpectEquality(t, reg.Len(), 0)
}

// a button event that arrives after its device has been removed must not
// cause a failure. the generic layout is used and a diagnostic is logged
func TestUnknownDevice(t *testing.T) {
	logger.Clear()
	dw := &test.Writer{}
	logger.SetDiagnostic(dw)
	defer logger.SetDiagnostic(os.Stderr)

	reg := source.NewRegistry(layout.NewDefaultTable())

	reg.Add(1, "Pro Controller", switchPro, nil)
	reg.Remove(1)

	ev := reg.Button(20, 1, events.A, false)
	test.ExpectEquality(t, ev, events.ButtonPress{Timestamp: 20, DeviceID: 1, Button: events.A, Pressed: false})

	tw := &test.Writer{}
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "unknown device [1]"))

	// the user sees it too
	test.ExpectSuccess(t, strings.HasPrefix(dw.String(), "* source: button event for unknown device [1]"))
}

func TestReplace(t *testing.T) {
	reg := source.NewRegistry(nil)

	ha := &handle{}
	reg.Add(1, "first", xbox, ha)
	hb := &handle{}
	d := reg.Add(1, "second", switchPro, hb)

	// nil table means generic layout for everything
	test.ExpectEquality(t, d.Layout, layout.Generic)
	test.ExpectEquality(t, ha.closed, 1)
	test.ExpectEquality(t, hb.closed, 0)
	test.ExpectEquality(t, reg.Len(), 1)
}

func TestScript(t *testing.T) {
	s := &source.Script{
		Batches: [][]events.ControllerEvent{
			{events.ControllerAdded{DeviceID: 1}},
			nil,
			{events.ButtonPress{DeviceID: 1}, events.ControllerRemoved{DeviceID: 1}},
		},
	}

	var src source.Source = s
	test.ExpectEquality(t, len(src.Poll()), 1)
	test.ExpectEquality(t, len(src.Poll()), 0)
	test.ExpectFailure(t, s.Exhausted())
	test.ExpectEquality(t, len(src.Poll()), 2)
	test.ExpectSuccess(t, s.Exhausted())
	test.ExpectEquality(t, len(src.Poll()), 0)
	test.ExpectSuccess(t, src.Close())

	n := 0
	src = source.Func(func() []events.ControllerEvent {
		n++
		return nil
	})
	src.Poll()
	src.Poll()
	test.ExpectEquality(t, n, 2)
}
