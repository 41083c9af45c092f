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

// Package layout maps the buttons reported by a controller to the buttons
// sent by the relay.
//
// Buttons are named by their position on an Xbox style controller. Some
// controllers label those positions differently. The Nintendo Switch Pro
// Controller for example has the A button where an Xbox controller has the B
// button. A Layout describes how to rename the buttons for one model of
// controller.
//
// Layouts are kept in a Table and are found by the vendor and product ID of
// the USB device. Controllers that are not in the table use the Generic
// layout, which changes nothing. Looking up a controller never fails.
//
// Additional layouts can be loaded from a YAML file:
//
//	layouts:
//	  - name: Nintendo Switch Pro Controller
//	    vendor: 0x057e
//	    product: 0x2009
//	    buttons:
//	      A: B
//	      B: A
//	      X: Y
//	      Y: X
//
// A layout in the file replaces any layout in the table with the same ID.
package layout
