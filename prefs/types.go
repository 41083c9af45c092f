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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/padrelay/curated"
)

// SetError is the pattern used for failures to set a preference value.
const SetError = "prefs: set: %v"

// Value represents the actual Go preference value.
type Value interface{}

// all preference types implement the pref interface
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// typed is the common implementation of all preference types. the value is
// stored atomically so preferences can be read from any goroutine.
type typed[T any] struct {
	value    atomic.Value
	hookPost func(value Value) error
}

func (p *typed[T]) set(v Value, convert func(Value) (T, error)) error {
	nv, err := convert(v)
	if err != nil {
		return curated.Errorf(SetError, err)
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}

	return nil
}

func (p *typed[T]) get() T {
	if ov := p.value.Load(); ov != nil {
		return ov.(T)
	}
	var zero T
	return zero
}

// SetHookPost sets the function to be called just after the value has been
// updated. The function is called even if the value has not changed.
func (p *typed[T]) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Bool implements a boolean type in the prefs system. A string value of
// anything other than "true" (case insensitive) is false.
type Bool struct {
	typed[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.get())
}

// Set new value to Bool type. New value must be of type bool or string.
func (p *Bool) Set(v Value) error {
	return p.set(v, func(v Value) (bool, error) {
		switch v := v.(type) {
		case bool:
			return v, nil
		case string:
			return strings.ToLower(strings.TrimSpace(v)) == "true", nil
		}
		return false, fmt.Errorf("cannot convert %T to prefs.Bool", v)
	})
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.get()
}

// Reset sets the value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int implements an integer type in the prefs system.
type Int struct {
	typed[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.get())
}

// Set new value to Int type. New value can be an int or a string.
func (p *Int) Set(v Value) error {
	return p.set(v, func(v Value) (int, error) {
		switch v := v.(type) {
		case int:
			return v, nil
		case int64:
			return int(v), nil
		case string:
			return strconv.Atoi(strings.TrimSpace(v))
		}
		return 0, fmt.Errorf("cannot convert %T to prefs.Int", v)
	})
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.get()
}

// Reset sets the value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float implements a floating point type in the prefs system.
type Float struct {
	typed[float64]
}

func (p *Float) String() string {
	return strconv.FormatFloat(p.get(), 'f', 3, 64)
}

// Set new value to Float type. New value can be a float, an int or a string.
func (p *Float) Set(v Value) error {
	return p.set(v, func(v Value) (float64, error) {
		switch v := v.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int:
			return float64(v), nil
		case string:
			return strconv.ParseFloat(strings.TrimSpace(v), 64)
		}
		return 0, fmt.Errorf("cannot convert %T to prefs.Float", v)
	})
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	return p.get()
}

// Reset sets the value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// String implements a string type in the prefs system.
type String struct {
	typed[string]
}

func (p *String) String() string {
	return p.get()
}

// Set new value to String type. Values of any type are accepted and converted
// to a string.
func (p *String) Set(v Value) error {
	return p.set(v, func(v Value) (string, error) {
		return strings.TrimSpace(fmt.Sprintf("%v", v)), nil
	})
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.get()
}

// Reset sets the value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Duration implements a time.Duration type in the prefs system.
type Duration struct {
	typed[time.Duration]
}

func (p *Duration) String() string {
	return p.get().String()
}

// Set new value to Duration type. New value can be a time.Duration or a
// string in the format accepted by time.ParseDuration().
func (p *Duration) Set(v Value) error {
	return p.set(v, func(v Value) (time.Duration, error) {
		switch v := v.(type) {
		case time.Duration:
			return v, nil
		case string:
			return time.ParseDuration(strings.TrimSpace(v))
		}
		return 0, fmt.Errorf("cannot convert %T to prefs.Duration", v)
	})
}

// Get returns the raw pref value.
func (p *Duration) Get() Value {
	return p.get()
}

// Reset sets the value to zero.
func (p *Duration) Reset() error {
	return p.Set(time.Duration(0))
}
