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
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/jetsetilly/padrelay/curated"
	"github.com/jetsetilly/padrelay/events"
)

// Error patterns for layout loading.
const (
	LoadError     = "layout: %v"
	InvalidLayout = "layout: %s: %v"
)

type fileEntry struct {
	Name    string            `yaml:"name"`
	Vendor  uint16            `yaml:"vendor"`
	Product uint16            `yaml:"product"`
	Buttons map[string]string `yaml:"buttons"`
}

type file struct {
	Layouts []fileEntry `yaml:"layouts"`
}

// LoadYAML reads layouts from the io.Reader and adds them to the table. If
// any entry is invalid then no layouts are added.
func LoadYAML(r io.Reader, t *Table) error {
	var f file

	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := dec.Decode(&f); err != nil {
		// an empty file is not an error
		if errors.Is(err, io.EOF) {
			return nil
		}
		return curated.Errorf(LoadError, err)
	}

	ids := make([]ID, 0, len(f.Layouts))
	layouts := make([]*Layout, 0, len(f.Layouts))

	for _, e := range f.Layouts {
		if e.Name == "" {
			return curated.Errorf(InvalidLayout, ID{Vendor: e.Vendor, Product: e.Product}, "missing name")
		}

		remap := make(map[events.ButtonKind]events.ButtonKind, len(e.Buttons))
		for from, to := range e.Buttons {
			bf, err := events.ParseButton(from)
			if err != nil {
				return curated.Errorf(InvalidLayout, e.Name, err)
			}
			bt, err := events.ParseButton(to)
			if err != nil {
				return curated.Errorf(InvalidLayout, e.Name, err)
			}
			remap[bf] = bt
		}

		ids = append(ids, ID{Vendor: e.Vendor, Product: e.Product})
		layouts = append(layouts, NewLayout(e.Name, remap))
	}

	for i := range ids {
		t.Add(ids[i], layouts[i])
	}

	return nil
}

// LoadFile is like LoadYAML() but reads from the named file. A file that does
// not exist is not an error and the table is left unchanged.
func LoadFile(filename string, t *Table) error {
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return curated.Errorf(LoadError, err)
	}
	defer f.Close()

	return LoadYAML(f, t)
}
