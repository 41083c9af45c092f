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

// Package prefs holds typed preference values and stores them on disk.
//
// Values are registered with a Disk instance under a key. Save() writes all
// registered values to the file and Load() reads them back. Entries in the
// file that have not been registered are preserved on Save().
//
// Values can also be specified on the command line as a prefs string. For
// example:
//
//	-prefs "relay.rate::120; socket.addr::0.0.0.0:50404"
//
// The string is pushed onto the command line stack with
// PushCommandLineStack(). Values on the top of the stack take priority over
// values on disk when Load() is called. Each value on the stack is used only
// once.
package prefs
