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

package relay

import (
	"time"

	"github.com/jetsetilly/padrelay/curated"
	"github.com/jetsetilly/padrelay/paths"
	"github.com/jetsetilly/padrelay/prefs"
	"github.com/jetsetilly/padrelay/ticker"
	"github.com/jetsetilly/padrelay/transport"
)

// PrefsError is the pattern for errors with the preferences file.
const PrefsError = "relay: preferences: %v"

// DefaultRate is the default number of ticks per second.
const DefaultRate = 60.0

// Preferences for the relay. Values are stored in the "preferences" file in
// the resource directory and can be overridden with a prefs string on the
// command line.
type Preferences struct {
	dsk *prefs.Disk

	// ticks per second
	Rate prefs.Float

	Address       prefs.String
	AcceptTimeout prefs.Duration
	UserTimeout   prefs.Duration

	// path to the layouts file. an empty string means the default path
	Layouts prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from disk before returning.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", "preferences")
	if err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	for _, err := range []error{
		p.dsk.Add("relay.rate", &p.Rate),
		p.dsk.Add("socket.addr", &p.Address),
		p.dsk.Add("socket.accepttimeout", &p.AcceptTimeout),
		p.dsk.Add("socket.usertimeout", &p.UserTimeout),
		p.dsk.Add("layouts.path", &p.Layouts),
	} {
		if err != nil {
			return nil, curated.Errorf(PrefsError, err)
		}
	}

	if err := p.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Rate.Set(DefaultRate)
	p.Address.Set(transport.DefaultAddress)
	p.AcceptTimeout.Set(time.Duration(0))
	p.UserTimeout.Set(time.Duration(0))
	p.Layouts.Set("")
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if err := p.dsk.Load(); err != nil {
		return curated.Errorf(PrefsError, err)
	}
	return nil
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if err := p.dsk.Save(); err != nil {
		return curated.Errorf(PrefsError, err)
	}
	return nil
}

// Period returns the tick period for the Rate preference.
func (p *Preferences) Period() (time.Duration, error) {
	return ticker.PeriodFromRate(p.Rate.Get().(float64))
}
