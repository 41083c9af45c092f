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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is what identifies the
// error and packages usually export their patterns as constants:
//
//	const AcceptError = "socket: accept: %v"
//
//	err := curated.Errorf(AcceptError, err)
//	if curated.Is(err, AcceptError) {
//		...
//	}
//
// The Has() function is similar to Is() but checks if a pattern occurs
// somewhere in the error chain. A chain is made by passing one error as a
// placeholder value to another:
//
//	e := curated.Errorf("console: read: %v", io.EOF)
//	f := curated.Errorf("relay: transport: %v", e)
//
//	curated.Is(f, "console: read: %v")  // false
//	curated.Has(f, "console: read: %v") // true
//
// The Error() function for curated errors normalises the chain so that
// duplicate adjacent parts are removed. This means that functions can wrap
// errors without worrying whether the error has already been wrapped with
// the same prefix:
//
//	relay: relay: accept failed
//
// is printed as:
//
//	relay: accept failed
//
// Curated errors also implement Unwrap() so that the standard errors.Is()
// and errors.As() functions can see uncurated errors (io.EOF, net.OpError,
// etc.) that have been used as placeholder values.
package curated
