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

package sdlsource

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/padrelay/events"
	"github.com/jetsetilly/padrelay/test"
)

func TestRawButtons(t *testing.T) {
	test.ExpectEquality(t, len(buttons), events.NumButtons)

	// spot check against the SDL constants
	b, ok := buttonFromRaw(uint8(sdl.CONTROLLER_BUTTON_A))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, events.A)

	b, ok = buttonFromRaw(uint8(sdl.CONTROLLER_BUTTON_DPAD_RIGHT))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, events.DPadRight)

	b, ok = buttonFromRaw(uint8(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, events.RightShoulder)

	_, ok = buttonFromRaw(255)
	test.ExpectFailure(t, ok)
}

func TestRawAxes(t *testing.T) {
	test.ExpectEquality(t, len(axes), events.NumAxes)

	a, ok := axisFromRaw(uint8(sdl.CONTROLLER_AXIS_LEFTX))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, events.LeftX)

	a, ok = axisFromRaw(uint8(sdl.CONTROLLER_AXIS_TRIGGERRIGHT))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, events.TriggerRight)

	_, ok = axisFromRaw(6)
	test.ExpectFailure(t, ok)
}
