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

import "fmt"

// Kind is the tag that identifies the type of a ControllerEvent in a record.
type Kind string

// List of valid Kind values.
const (
	KindControllerAdded   Kind = "ControllerAdded"
	KindControllerRemoved Kind = "ControllerRemoved"
	KindAxisMotion        Kind = "AxisMotion"
	KindButtonPress       Kind = "ButtonPress"
)

// ControllerEvent is implemented by all event types.
type ControllerEvent interface {
	fmt.Stringer

	// the type tag used in records
	Kind() Kind

	// timestamp of the event as reported by the input subsystem. the value
	// is in milliseconds and wraps around at 2^32
	Time() uint32

	// the instance ID of the device the event originated from
	Device() uint32
}

// ControllerAdded is sent when a device has been attached.
type ControllerAdded struct {
	Timestamp uint32
	DeviceID  uint32
}

// Kind implements the ControllerEvent interface.
func (ev ControllerAdded) Kind() Kind { return KindControllerAdded }

// Time implements the ControllerEvent interface.
func (ev ControllerAdded) Time() uint32 { return ev.Timestamp }

// Device implements the ControllerEvent interface.
func (ev ControllerAdded) Device() uint32 { return ev.DeviceID }

func (ev ControllerAdded) String() string {
	return fmt.Sprintf("%s [%d] @ %d", ev.Kind(), ev.DeviceID, ev.Timestamp)
}

// ControllerRemoved is sent when a device has been detached.
type ControllerRemoved struct {
	Timestamp uint32
	DeviceID  uint32
}

// Kind implements the ControllerEvent interface.
func (ev ControllerRemoved) Kind() Kind { return KindControllerRemoved }

// Time implements the ControllerEvent interface.
func (ev ControllerRemoved) Time() uint32 { return ev.Timestamp }

// Device implements the ControllerEvent interface.
func (ev ControllerRemoved) Device() uint32 { return ev.DeviceID }

func (ev ControllerRemoved) String() string {
	return fmt.Sprintf("%s [%d] @ %d", ev.Kind(), ev.DeviceID, ev.Timestamp)
}

// AxisMotion is sent when a thumbstick or trigger has moved. The range of
// Value for thumbsticks is the full int16 range. Triggers range from zero to
// math.MaxInt16.
type AxisMotion struct {
	Timestamp uint32
	DeviceID  uint32
	Axis      AxisKind
	Value     int16
}

// Kind implements the ControllerEvent interface.
func (ev AxisMotion) Kind() Kind { return KindAxisMotion }

// Time implements the ControllerEvent interface.
func (ev AxisMotion) Time() uint32 { return ev.Timestamp }

// Device implements the ControllerEvent interface.
func (ev AxisMotion) Device() uint32 { return ev.DeviceID }

func (ev AxisMotion) String() string {
	return fmt.Sprintf("%s [%d] @ %d: %s=%d", ev.Kind(), ev.DeviceID, ev.Timestamp, ev.Axis, ev.Value)
}

// ButtonPress is sent when a button changes state. Pressed is true when the
// button has been pushed down and false when it has been released.
type ButtonPress struct {
	Timestamp uint32
	DeviceID  uint32
	Button    ButtonKind
	Pressed   bool
}

// Kind implements the ControllerEvent interface.
func (ev ButtonPress) Kind() Kind { return KindButtonPress }

// Time implements the ControllerEvent interface.
func (ev ButtonPress) Time() uint32 { return ev.Timestamp }

// Device implements the ControllerEvent interface.
func (ev ButtonPress) Device() uint32 { return ev.DeviceID }

func (ev ButtonPress) String() string {
	return fmt.Sprintf("%s [%d] @ %d: %s=%v", ev.Kind(), ev.DeviceID, ev.Timestamp, ev.Button, ev.Pressed)
}
