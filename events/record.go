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
	"bytes"
	"encoding/json"
	"io"

	"github.com/jetsetilly/padrelay/curated"
)

// Error patterns for record handling.
const (
	RecordError   = "record: %v"
	UnknownKind   = "record: unknown kind: %v"
	MissingField  = "record: %v is missing field %s"
	UnhandledType = "record: unhandled event type %T"
)

// record is the on-the-wire representation of an event. the kind specific
// fields are pointers so that zero values are still written while fields
// that don't belong to the kind are omitted.
type record struct {
	Kind      Kind        `json:"kind"`
	Timestamp uint32      `json:"timestamp"`
	DeviceID  uint32      `json:"device_id"`
	Axis      *AxisKind   `json:"axis,omitempty"`
	Value     *int16      `json:"value,omitempty"`
	Button    *ButtonKind `json:"button,omitempty"`
	Pressed   *bool       `json:"pressed,omitempty"`
}

// Marshal returns the record for the event, including the terminating
// newline character.
func Marshal(ev ControllerEvent) ([]byte, error) {
	rec := record{
		Kind:      ev.Kind(),
		Timestamp: ev.Time(),
		DeviceID:  ev.Device(),
	}

	switch ev := ev.(type) {
	case ControllerAdded, ControllerRemoved:
	case AxisMotion:
		rec.Axis = &ev.Axis
		rec.Value = &ev.Value
	case ButtonPress:
		rec.Button = &ev.Button
		rec.Pressed = &ev.Pressed
	default:
		return nil, curated.Errorf(UnhandledType, ev)
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return nil, curated.Errorf(RecordError, err)
	}

	return append(b, '\n'), nil
}

// Encode writes the record for the event to the io.Writer with a single call
// to Write(). The number of bytes written is returned so that callers can
// detect a short or zero length write.
func Encode(w io.Writer, ev ControllerEvent) (int, error) {
	b, err := Marshal(ev)
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}

// Decode parses a single record. Leading and trailing white space, including
// the newline terminator, is ignored.
func Decode(line []byte) (ControllerEvent, error) {
	var rec record

	dec := json.NewDecoder(bytes.NewReader(bytes.TrimSpace(line)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return nil, curated.Errorf(RecordError, err)
	}

	switch rec.Kind {
	case KindControllerAdded:
		return ControllerAdded{Timestamp: rec.Timestamp, DeviceID: rec.DeviceID}, nil

	case KindControllerRemoved:
		return ControllerRemoved{Timestamp: rec.Timestamp, DeviceID: rec.DeviceID}, nil

	case KindAxisMotion:
		if rec.Axis == nil {
			return nil, curated.Errorf(MissingField, rec.Kind, "axis")
		}
		if rec.Value == nil {
			return nil, curated.Errorf(MissingField, rec.Kind, "value")
		}
		return AxisMotion{
			Timestamp: rec.Timestamp,
			DeviceID:  rec.DeviceID,
			Axis:      *rec.Axis,
			Value:     *rec.Value,
		}, nil

	case KindButtonPress:
		if rec.Button == nil {
			return nil, curated.Errorf(MissingField, rec.Kind, "button")
		}
		if rec.Pressed == nil {
			return nil, curated.Errorf(MissingField, rec.Kind, "pressed")
		}
		return ButtonPress{
			Timestamp: rec.Timestamp,
			DeviceID:  rec.DeviceID,
			Button:    *rec.Button,
			Pressed:   *rec.Pressed,
		}, nil
	}

	return nil, curated.Errorf(UnknownKind, rec.Kind)
}
