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

package layout

import (
	"fmt"

	"github.com/jetsetilly/padrelay/events"
)

// ID identifies a model of controller by the USB vendor and product IDs.
type ID struct {
	Vendor  uint16
	Product uint16
}

func (id ID) String() string {
	return fmt.Sprintf("%04x:%04x", id.Vendor, id.Product)
}

// Layout describes how the buttons of one model of controller are renamed.
// Buttons not mentioned in the layout are unchanged.
type Layout struct {
	Name    string
	buttons map[events.ButtonKind]events.ButtonKind
}

// NewLayout is the preferred method of initialisation for the Layout type. The
// remap argument is copied.
func NewLayout(name string, remap map[events.ButtonKind]events.ButtonKind) *Layout {
	l := &Layout{
		Name:    name,
		buttons: make(map[events.ButtonKind]events.ButtonKind, len(remap)),
	}
	for k, v := range remap {
		l.buttons[k] = v
	}
	return l
}

func (l *Layout) String() string {
	return l.Name
}

// Map returns the button that should be sent for the button reported by the
// controller.
func (l *Layout) Map(b events.ButtonKind) events.ButtonKind {
	if l == nil {
		return b
	}
	if m, ok := l.buttons[b]; ok {
		return m
	}
	return b
}

// Generic is the layout used for controllers that have no entry in the
// table. No buttons are renamed.
var Generic = NewLayout("Generic", nil)

// Table of layouts. A Table is not safe for concurrent modification. It
// should be fully populated before it is given to a source.
type Table struct {
	layouts map[ID]*Layout
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		layouts: make(map[ID]*Layout),
	}
}

// list of built-in layouts
var (
	switchProID = ID{Vendor: 0x057e, Product: 0x2009}

	switchPro = NewLayout("Nintendo Switch Pro Controller", map[events.ButtonKind]events.ButtonKind{
		events.A: events.B,
		events.B: events.A,
		events.X: events.Y,
		events.Y: events.X,
	})
)

// NewDefaultTable returns a table containing the built-in layouts.
func NewDefaultTable() *Table {
	t := NewTable()
	t.Add(switchProID, switchPro)
	return t
}

// Add a layout to the table, replacing any existing layout with the same ID.
func (t *Table) Add(id ID, l *Layout) {
	t.layouts[id] = l
}

// Len returns the number of layouts in the table.
func (t *Table) Len() int {
	return len(t.layouts)
}

// Lookup returns the layout for the ID. The second return value is false if
// there is no entry in the table.
func (t *Table) Lookup(id ID) (*Layout, bool) {
	l, ok := t.layouts[id]
	return l, ok
}

// Resolve returns the layout for the ID or the Generic layout if there is no
// entry in the table.
func (t *Table) Resolve(id ID) *Layout {
	if t == nil {
		return Generic
	}
	if l, ok := t.layouts[id]; ok {
		return l
	}
	return Generic
}
