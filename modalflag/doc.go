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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each of which can have its own set of flags.
//
// Arguments are supplied with NewArgs() and the first layer is parsed with
// Parse(). If sub-modes have been added with AddSubModes() then the first
// non-flag argument is compared against the list of sub-modes. The first
// sub-mode in the list is the default and is selected if the argument does
// not match any sub-mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SOCKET", "CONSOLE")
//
//	r, err := md.Parse()
//	switch r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "SOCKET":
//		md.NewMode()
//		addr := md.AddString("addr", "127.0.0.1:50404", "listen address")
//		...
//	}
//
// Flags for the mode are added after the call to NewMode() and parsed with
// another call to Parse(). Mode comparisons are case insensitive. The path of
// modes that have been selected is returned by Path().
package modalflag
