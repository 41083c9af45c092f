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

// Package statsview serves runtime statistics over HTTP. The server is only
// available when padrelay is built with the statsview build tag:
//
//	go build -tags statsview
//
// Graphical statistics are then viewable at:
//
//	localhost:12600/debug/statsview
//
// With pprof statistics at:
//
//	localhost:12600/debug/pprof/
//
// Underlying functionality is provided by github.com/go-echarts/statsview.
package statsview

// Address of the statsview server.
const Address = "localhost:12600"

const url = "/debug/statsview"
