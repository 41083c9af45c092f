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

package source

import (
	"fmt"
	"io"
	"sort"

	"github.com/jetsetilly/padrelay/events"
	"github.com/jetsetilly/padrelay/layout"
	"github.com/jetsetilly/padrelay/logger"
)

// Device is an entry in the Registry.
type Device struct {
	InstanceID uint32
	Name       string
	Model      layout.ID
	Layout     *layout.Layout

	// the open device. closed when the device is removed from the registry.
	// can be nil
	handle io.Closer
}

func (d *Device) String() string {
	return fmt.Sprintf("%s [%d] (%s, %s layout)", d.Name, d.InstanceID, d.Model, d.Layout)
}

// Registry of open devices keyed by instance ID. The registry is not safe for
// concurrent use. It should only be used by the goroutine that polls the
// Source that owns it.
type Registry struct {
	table   *layout.Table
	devices map[uint32]*Device
}

// NewRegistry is the preferred method of initialisation for the Registry type.
// The table is used to find the layout of newly added devices. It can be nil
// in which case every device will use the Generic layout.
func NewRegistry(table *layout.Table) *Registry {
	return &Registry{
		table:   table,
		devices: make(map[uint32]*Device),
	}
}

// Add a device to the registry. If a device with the same instance ID is
// already registered it is closed and replaced.
func (r *Registry) Add(instanceID uint32, name string, model layout.ID, handle io.Closer) *Device {
	if old, ok := r.devices[instanceID]; ok {
		logger.Logf(logger.Allow, "source", "replacing registered device %s", old)
		r.close(old)
	}

	d := &Device{
		InstanceID: instanceID,
		Name:       name,
		Model:      model,
		Layout:     r.table.Resolve(model),
		handle:     handle,
	}
	r.devices[instanceID] = d

	return d
}

// Remove device from registry and close it. Returns false if the device was
// not registered.
func (r *Registry) Remove(instanceID uint32) bool {
	d, ok := r.devices[instanceID]
	if !ok {
		return false
	}
	delete(r.devices, instanceID)
	r.close(d)
	return true
}

// Lookup returns the registered device with the instance ID.
func (r *Registry) Lookup(instanceID uint32) (*Device, bool) {
	d, ok := r.devices[instanceID]
	return d, ok
}

// Len returns the number of registered devices.
func (r *Registry) Len() int {
	return len(r.devices)
}

// Button normalises a raw button event. The raw button is renamed according
// to the layout of the device. If the device is not registered, which can
// happen when a button event is still queued after the device has been
// removed, then the Generic layout is used.
func (r *Registry) Button(timestamp uint32, instanceID uint32, raw events.ButtonKind, pressed bool) events.ButtonPress {
	l := layout.Generic
	if d, ok := r.devices[instanceID]; ok {
		l = d.Layout
	} else {
		logger.Diagnosticf("source", "button event for unknown device [%d]. using generic layout", instanceID)
	}

	return events.ButtonPress{
		Timestamp: timestamp,
		DeviceID:  instanceID,
		Button:    l.Map(raw),
		Pressed:   pressed,
	}
}

// CloseAll closes and removes every device in the registry.
func (r *Registry) CloseAll() {
	ids := make([]uint32, 0, len(r.devices))
	for id := range r.devices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		r.Remove(id)
	}
}

func (r *Registry) close(d *Device) {
	if d.handle == nil {
		return
	}
	if err := d.handle.Close(); err != nil {
		logger.Logf(logger.Allow, "source", "closing %s: %v", d, err)
	}
}
