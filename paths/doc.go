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

// Package paths contains functions to prepare paths to padrelay resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following will return the
// path to the layouts file:
//
//	pth, err := paths.ResourcePath("", "layouts.yaml")
//
// If a directory named ".padrelay" is present in the program's current
// directory then that is used as the base path. Otherwise the user's config
// directory, as returned by os.UserConfigDir(), is used. On a modern Linux
// system the path in the example above would be:
//
//	/home/user/.config/padrelay/layouts.yaml
//
// The existence of the resource is not checked and directories are not
// created.
package paths
