// This file is part of uart8250.
//
// uart8250 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// uart8250 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with uart8250.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences collates the persistent settings of the program: the
// clock and baud rate used to program the divisor, the base address of the
// simulated device and the host port used by the bridge.
package preferences

import (
	"github.com/jetsetilly/uart8250/curated"
	"github.com/jetsetilly/uart8250/paths"
	"github.com/jetsetilly/uart8250/prefs"
)

// Default values for a PC-style COM1.
const (
	DefaultClock = 1843200
	DefaultBaud  = 115200
	DefaultBase  = 0x3f8
)

// InvalidValue is returned when a preference is set to a value that can never
// be used.
const InvalidValue = "preferences: invalid value for %s: %v"

// Preferences defines and collates all the preference values used by the
// program.
type Preferences struct {
	dsk *prefs.Disk

	// input clock of the UART in Hz
	Clock prefs.Int

	// baud rate to program during initialisation
	Baud prefs.Int

	// base address of the simulated device
	Base prefs.Int

	// host port used by the bridge
	Port prefs.String

	// echo the log to stdout
	Log prefs.Bool

	// number of register accesses kept by the simulated device
	Trace prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with an explicit
// preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	positive := func(name string) func(prefs.Value) error {
		return func(v prefs.Value) error {
			if v.(int) <= 0 {
				return curated.Errorf(InvalidValue, name, v)
			}
			return nil
		}
	}
	p.Clock.SetHookPre(positive("clock"))
	p.Baud.SetHookPre(positive("baud"))
	p.Base.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(InvalidValue, "base", v)
		}
		return nil
	})
	p.Trace.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(InvalidValue, "trace", v)
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("uart.clock", &p.Clock)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("uart.baud", &p.Baud)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("ns16550.base", &p.Base)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("ns16550.trace", &p.Trace)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("line.port", &p.Port)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("program.log", &p.Log)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.Clock.Set(DefaultClock)
	p.Baud.Set(DefaultBaud)
	p.Base.Set(DefaultBase)
	p.Trace.Set(0)
	p.Port.Set("")
	p.Log.Set(false)
}

// ClockRate returns the clock preference as a value suitable for the divisor
// functions.
func (p *Preferences) ClockRate() uint {
	return uint(p.Clock.Get().(int))
}

// BaudRate returns the baud preference as a value suitable for the divisor
// functions.
func (p *Preferences) BaudRate() uint {
	return uint(p.Baud.Get().(int))
}

// BaseAddress returns the base address preference.
func (p *Preferences) BaseAddress() uintptr {
	return uintptr(p.Base.Get().(int))
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
