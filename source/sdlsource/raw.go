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
	"github.com/jetsetilly/padrelay/events"
)

// SDL numbers axes and buttons in the same order as the events package.
// they're listed explicitly so that a change to either list doesn't go
// unnoticed. values are those of the SDL_GameControllerAxis and
// SDL_GameControllerButton enumerations

var axes = map[uint8]events.AxisKind{
	0: events.LeftX,
	1: events.LeftY,
	2: events.RightX,
	3: events.RightY,
	4: events.TriggerLeft,
	5: events.TriggerRight,
}

var buttons = map[uint8]events.ButtonKind{
	0:  events.A,
	1:  events.B,
	2:  events.X,
	3:  events.Y,
	4:  events.Back,
	5:  events.Guide,
	6:  events.Start,
	7:  events.LeftStick,
	8:  events.RightStick,
	9:  events.LeftShoulder,
	10: events.RightShoulder,
	11: events.DPadUp,
	12: events.DPadDown,
	13: events.DPadLeft,
	14: events.DPadRight,
	15: events.Misc1,
	16: events.Paddle1,
	17: events.Paddle2,
	18: events.Paddle3,
	19: events.Paddle4,
	20: events.Touchpad,
}

func axisFromRaw(raw uint8) (events.AxisKind, bool) {
	a, ok := axes[raw]
	return a, ok
}

func buttonFromRaw(raw uint8) (events.ButtonKind, bool) {
	b, ok := buttons[raw]
	return b, ok
}
