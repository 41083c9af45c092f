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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/padrelay/prefs"
	"github.com/jetsetilly/padrelay/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+expected)
}

func TestTypes(t *testing.T) {
	var b prefs.Bool
	test.ExpectEquality(t, b.String(), "false")
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectEquality(t, b.Get(), prefs.Value(true))
	test.ExpectSuccess(t, b.Set("foo"))
	test.ExpectEquality(t, b.String(), "false")
	test.ExpectSuccess(t, b.Set(" TRUE "))
	test.ExpectEquality(t, b.String(), "true")
	test.ExpectFailure(t, b.Set(10))

	var i prefs.Int
	test.ExpectEquality(t, i.String(), "0")
	test.ExpectSuccess(t, i.Set("120"))
	test.ExpectEquality(t, i.Get(), prefs.Value(120))
	test.ExpectFailure(t, i.Set("foo"))
	test.ExpectEquality(t, i.Get(), prefs.Value(120))

	var f prefs.Float
	test.ExpectEquality(t, f.String(), "0.000")
	test.ExpectSuccess(t, f.Set("59.94"))
	test.ExpectEquality(t, f.String(), "59.940")
	test.ExpectSuccess(t, f.Set(60))
	test.ExpectEquality(t, f.Get(), prefs.Value(60.0))

	var s prefs.String
	test.ExpectSuccess(t, s.Set(" 127.0.0.1:50404 "))
	test.ExpectEquality(t, s.String(), "127.0.0.1:50404")
	test.ExpectSuccess(t, s.Reset())
	test.ExpectEquality(t, s.String(), "")

	var d prefs.Duration
	test.ExpectEquality(t, d.String(), "0s")
	test.ExpectSuccess(t, d.Set("1.5s"))
	test.ExpectEquality(t, d.Get(), prefs.Value(1500*time.Millisecond))
	test.ExpectSuccess(t, d.Set(time.Minute))
	test.ExpectEquality(t, d.String(), "1m0s")
	test.ExpectFailure(t, d.Set("soon"))
}

func TestHook(t *testing.T) {
	var i prefs.Int
	var seen prefs.Value
	i.SetHookPost(func(v prefs.Value) error {
		seen = v
		return nil
	})
	test.ExpectSuccess(t, i.Set(10))
	test.ExpectEquality(t, seen, prefs.Value(10))
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var rate prefs.Float
	var addr prefs.String
	var verbose prefs.Bool
	test.ExpectSuccess(t, dsk.Add("relay.rate", &rate))
	test.ExpectSuccess(t, dsk.Add("socket.addr", &addr))
	test.ExpectSuccess(t, dsk.Add("log.verbose", &verbose))
	test.ExpectFailure(t, dsk.Add("relay.rate", &rate))
	test.ExpectFailure(t, dsk.Add("bad::key", &rate))

	// missing file is not an error
	test.ExpectSuccess(t, dsk.Load())

	test.ExpectSuccess(t, rate.Set(120))
	test.ExpectSuccess(t, addr.Set("[::1]:50404"))
	test.ExpectSuccess(t, dsk.Save())
	cmpFile(t, fn, "log.verbose :: false\nrelay.rate :: 120.000\nsocket.addr :: [::1]:50404\n")

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, addr.String(), "")

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, rate.Get(), prefs.Value(120.0))
	test.ExpectEquality(t, addr.String(), "[::1]:50404")

	// a second disk with fewer entries preserves the entries it doesn't know
	// about
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var rate2 prefs.Float
	test.ExpectSuccess(t, dsk2.Add("relay.rate", &rate2))
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectSuccess(t, rate2.Set(30))
	test.ExpectSuccess(t, dsk2.Save())
	cmpFile(t, fn, "log.verbose :: false\nrelay.rate :: 30.000\nsocket.addr :: [::1]:50404\n")
}

func TestDiskCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var rate prefs.Float
	test.ExpectSuccess(t, dsk.Add("relay.rate", &rate))
	test.ExpectSuccess(t, rate.Set(60))
	test.ExpectSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("relay.rate::30; other::value")
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, rate.Get(), prefs.Value(30.0))

	// command line value has been used but the other has not
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::value")

	// value from disk is used once the command line group has gone
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, rate.Get(), prefs.Value(60.0))
}

func TestNotPrefsFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("hello world\n"), 0600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dsk.Load())

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}
