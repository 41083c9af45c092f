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

// Package ticker provides the fixed period pacing signal shared by every loop
// in the relay.
//
// A single Scheduler drives any number of subscribers. Each subscriber has
// its own channel with a capacity of one. If a subscriber is still busy with
// the previous tick when the next one fires then the pending tick is replaced
// with the newer one. Ticks are never queued so a slow subscriber can never
// fall more than one tick behind or cause memory to grow.
//
//	sched, _ := ticker.NewScheduler(ticker.DefaultPeriod)
//	ticks := sched.Subscribe()
//	sched.Start()
//	defer sched.Stop()
//
//	for range ticks {
//		...
//	}
//
// The value received on the channel is the time of the tick. It carries no
// other information. Subscriber channels are never closed; loops should use
// a shutdown token to decide when to stop.
package ticker
