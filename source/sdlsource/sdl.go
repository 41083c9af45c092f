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

// Package sdlsource implements the source.Source interface with SDL's game
// controller subsystem.
//
// SDL must be initialised, polled and shut down from the same thread. In
// practice this must be the main thread of the process. New() must be called
// from the same goroutine that will call Poll() and Close() and that
// goroutine must be locked to the main thread with runtime.LockOSThread().
// Calls to Poll() from any other goroutine are reported in the log.
package sdlsource

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/padrelay/assert"
	"github.com/jetsetilly/padrelay/curated"
	"github.com/jetsetilly/padrelay/events"
	"github.com/jetsetilly/padrelay/layout"
	"github.com/jetsetilly/padrelay/logger"
	"github.com/jetsetilly/padrelay/source"
)

// InitError is returned by New() when SDL cannot be initialised.
const InitError = "sdl: %v"

// SDL is the SDL implementation of the source.Source interface.
type SDL struct {
	registry *source.Registry

	// the goroutine that is allowed to call Poll()
	owner assert.Owner

	// only log the first thread violation
	violation bool
}

// New is the preferred method of initialisation for the SDL type. The layout
// table is used to rename the buttons of specific controller models.
func New(table *layout.Table) (*SDL, error) {
	// without this hint events are only received while a window owned by
	// the process has focus. we never have a window
	sdl.SetHint(sdl.HINT_JOYSTICK_ALLOW_BACKGROUND_EVENTS, "1")

	if err := sdl.Init(sdl.INIT_EVENTS | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER); err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	var v sdl.Version
	sdl.GetVersion(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	src := &SDL{
		registry: source.NewRegistry(table),
	}
	src.owner.Check()

	// devices that are already attached will be announced by the first
	// Poll() with CONTROLLERDEVICEADDED events
	logger.Logf(logger.Allow, "sdl", "%d joysticks attached", sdl.NumJoysticks())

	return src, nil
}

// Poll implements the source.Source interface.
func (src *SDL) Poll() []events.ControllerEvent {
	if !src.owner.Check() && !src.violation {
		src.violation = true
		logger.Logf(logger.Allow, "sdl", "Poll() called from goroutine %d. owner is %d", assert.GetGoroutineID(), src.owner.ID())
	}

	var evs []events.ControllerEvent

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.ControllerDeviceEvent:
			switch ev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				// for added events Which is the device index and not the
				// instance ID
				id, ok := src.open(int(ev.Which))
				if ok {
					evs = append(evs, events.ControllerAdded{Timestamp: ev.Timestamp, DeviceID: id})
				}
			case sdl.CONTROLLERDEVICEREMOVED:
				id := uint32(ev.Which)
				if !src.registry.Remove(id) {
					logger.Diagnosticf("sdl", "removed device [%d] was not registered", id)
				}
				evs = append(evs, events.ControllerRemoved{Timestamp: ev.Timestamp, DeviceID: id})
			}

		case *sdl.ControllerAxisEvent:
			axis, ok := axisFromRaw(ev.Axis)
			if !ok {
				logger.Logf(logger.Allow, "sdl", "unrecognised axis (%d)", ev.Axis)
				continue // for loop
			}
			evs = append(evs, events.AxisMotion{
				Timestamp: ev.Timestamp,
				DeviceID:  uint32(ev.Which),
				Axis:      axis,
				Value:     ev.Value,
			})

		case *sdl.ControllerButtonEvent:
			button, ok := buttonFromRaw(ev.Button)
			if !ok {
				logger.Logf(logger.Allow, "sdl", "unrecognised button (%d)", ev.Button)
				continue // for loop
			}
			evs = append(evs, src.registry.Button(ev.Timestamp, uint32(ev.Which), button, ev.Type == sdl.CONTROLLERBUTTONDOWN))
		}
	}

	return evs
}

// Devices implements the source.Counter interface.
func (src *SDL) Devices() int {
	return src.registry.Len()
}

// open the device with the device index and add it to the registry. returns
// the instance ID of the device. the boolean return value is false if the
// instance ID could not be determined.
func (src *SDL) open(index int) (uint32, bool) {
	instance := sdl.JoystickGetDeviceInstanceID(index)
	if instance < 0 {
		logger.Logf(logger.Allow, "sdl", "no instance for device index %d: %v", index, sdl.GetError())
		return 0, false
	}
	id := uint32(instance)

	// the device is announced even if it can't be opened. without an open
	// handle SDL will not send events for the device so nothing more will
	// be heard from it
	pad := sdl.GameControllerOpen(index)
	if pad == nil {
		logger.Logf(logger.Allow, "sdl", "cannot open device [%d]: %v", id, sdl.GetError())
		return id, true
	}

	model := layout.ID{
		Vendor:  uint16(pad.Vendor()),
		Product: uint16(pad.Product()),
	}

	d := src.registry.Add(id, pad.Name(), model, closer{pad})
	logger.Logf(logger.Allow, "sdl", "opened %s", d)

	return id, true
}

// Close implements the source.Source interface.
func (src *SDL) Close() error {
	src.registry.CloseAll()
	sdl.Quit()
	return nil
}

// closer adapts sdl.GameController to the io.Closer interface
type closer struct {
	pad *sdl.GameController
}

func (c closer) Close() error {
	c.pad.Close()
	return nil
}
