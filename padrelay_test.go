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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/padrelay/test"
)

// run tests in a directory with a local resource directory so that the
// user's preferences are not used
func localResources(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	test.DemandSuccess(t, os.Mkdir(".padrelay", 0700))
	return dir
}

func TestExitValues(t *testing.T) {
	localResources(t)

	test.ExpectEquality(t, launch([]string{"version"}), 0)
	test.ExpectEquality(t, launch([]string{"-help"}), 0)

	// unknown flag for the default mode
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}), exitModeError)

	// invalid rate is found before any device is opened
	test.ExpectEquality(t, launch([]string{"console", "-rate", "0"}), exitModeError)

	// invalid address
	test.ExpectEquality(t, launch([]string{"socket", "-addr", "not an address"}), exitModeError)
}

func TestSavePrefs(t *testing.T) {
	dir := localResources(t)

	// the invalid rate stops the relay but the preferences have been saved
	// by then
	test.ExpectEquality(t, launch([]string{"socket", "-saveprefs", "-addr", "127.0.0.1:0", "-prefs", "relay.rate::0"}), exitModeError)

	data, err := os.ReadFile(filepath.Join(dir, ".padrelay", "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), `*** do not edit this file by hand ***
layouts.path :: 
relay.rate :: 0.000
socket.accepttimeout :: 0s
socket.addr :: 127.0.0.1:0
socket.usertimeout :: 0s
`)
}
