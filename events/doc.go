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

// Package events defines the normalised controller events that are relayed
// by padrelay and the line based record format used to transmit them.
//
// Every event satisfies the ControllerEvent interface. There are four
// concrete types: ControllerAdded, ControllerRemoved, AxisMotion and
// ButtonPress. Events are plain values and are safe to copy between
// goroutines.
//
// A record is a single JSON object terminated by a newline character. The
// kind field names the event type and the remaining fields are the fields
// of that type. For example:
//
//	{"kind":"ButtonPress","timestamp":13,"device_id":1,"button":"A","pressed":true}
//
// Marshal() and Encode() produce records. Decode() parses a record back into
// a ControllerEvent.
package events
