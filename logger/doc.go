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

// Package logger is the central log for padrelay. Every package that needs to
// report something that isn't an error that must be returned to the caller
// writes to this log.
//
// Entries are made with the Log() and Logf() functions. Every entry has a tag
// and a detail string. The tag is normally the name of the package or the
// component making the entry:
//
//	logger.Log(logger.Allow, "socket", "client connected")
//	logger.Logf(logger.Allow, "sdl", "opened %s", name)
//
// The log is bounded. When the maximum number of entries has been reached the
// oldest entries are forgotten. Consecutive identical entries are merged and
// a repeat count is shown instead.
//
// The log can be echoed to an io.Writer as entries are made with SetEcho().
// The Colorizer type can be used to add colour to echoed output.
//
// All functions in the package are safe to call from any goroutine.
package logger
