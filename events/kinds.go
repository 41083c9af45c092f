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

package events

import (
	"github.com/jetsetilly/padrelay/curated"
)

// Error patterns returned by the parsing functions.
const (
	UnknownAxis   = "events: unknown axis: %v"
	UnknownButton = "events: unknown button: %v"
)

// AxisKind identifies a thumbstick axis or a trigger.
type AxisKind int

// List of valid AxisKind values.
const (
	LeftX AxisKind = iota
	LeftY
	RightX
	RightY
	TriggerLeft
	TriggerRight
)

var axisNames = [...]string{
	LeftX:        "LeftX",
	LeftY:        "LeftY",
	RightX:       "RightX",
	RightY:       "RightY",
	TriggerLeft:  "TriggerLeft",
	TriggerRight: "TriggerRight",
}

// NumAxes is the number of valid AxisKind values.
const NumAxes = len(axisNames)

func (a AxisKind) String() string {
	if a < 0 || int(a) >= NumAxes {
		return "UnknownAxis"
	}
	return axisNames[a]
}

// IsTrigger returns true if the axis is one of the two analogue triggers.
func (a AxisKind) IsTrigger() bool {
	return a == TriggerLeft || a == TriggerRight
}

// MarshalText implements the encoding.TextMarshaler interface.
func (a AxisKind) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= NumAxes {
		return nil, curated.Errorf(UnknownAxis, int(a))
	}
	return []byte(axisNames[a]), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (a *AxisKind) UnmarshalText(text []byte) error {
	v, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAxis returns the AxisKind with the specified name. Names are case
// sensitive and are the same as the constant names.
func ParseAxis(s string) (AxisKind, error) {
	for i, n := range axisNames {
		if n == s {
			return AxisKind(i), nil
		}
	}
	return 0, curated.Errorf(UnknownAxis, s)
}

// ButtonKind identifies a controller button.
type ButtonKind int

// List of valid ButtonKind values. The A, B, X and Y buttons are named by
// their position on an Xbox style controller. Controllers with a different
// arrangement are remapped by the source before the event reaches the relay.
const (
	A ButtonKind = iota
	B
	X
	Y
	Back
	Guide
	Start
	LeftStick
	RightStick
	LeftShoulder
	RightShoulder
	DPadUp
	DPadDown
	DPadLeft
	DPadRight
	Misc1
	Paddle1
	Paddle2
	Paddle3
	Paddle4
	Touchpad
)

var buttonNames = [...]string{
	A:             "A",
	B:             "B",
	X:             "X",
	Y:             "Y",
	Back:          "Back",
	Guide:         "Guide",
	Start:         "Start",
	LeftStick:     "LeftStick",
	RightStick:    "RightStick",
	LeftShoulder:  "LeftShoulder",
	RightShoulder: "RightShoulder",
	DPadUp:        "DPadUp",
	DPadDown:      "DPadDown",
	DPadLeft:      "DPadLeft",
	DPadRight:     "DPadRight",
	Misc1:         "Misc1",
	Paddle1:       "Paddle1",
	Paddle2:       "Paddle2",
	Paddle3:       "Paddle3",
	Paddle4:       "Paddle4",
	Touchpad:      "Touchpad",
}

// NumButtons is the number of valid ButtonKind values.
const NumButtons = len(buttonNames)

func (b ButtonKind) String() string {
	if b < 0 || int(b) >= NumButtons {
		return "UnknownButton"
	}
	return buttonNames[b]
}

// MarshalText implements the encoding.TextMarshaler interface.
func (b ButtonKind) MarshalText() ([]byte, error) {
	if b < 0 || int(b) >= NumButtons {
		return nil, curated.Errorf(UnknownButton, int(b))
	}
	return []byte(buttonNames[b]), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (b *ButtonKind) UnmarshalText(text []byte) error {
	v, err := ParseButton(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ParseButton returns the ButtonKind with the specified name. Names are case
// sensitive and are the same as the constant names.
func ParseButton(s string) (ButtonKind, error) {
	for i, n := range buttonNames {
		if n == s {
			return ButtonKind(i), nil
		}
	}
	return 0, curated.Errorf(UnknownButton, s)
}
