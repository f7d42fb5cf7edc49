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

package uart

import (
	"github.com/jetsetilly/uart8250/hardware/uart/linecontrol"
	"github.com/jetsetilly/uart8250/hardware/uart/registers"
)

// EnableDLAB sets the divisor latch access bit. Offsets 0 and 1 then address
// the divisor latch.
func (u *UART) EnableDLAB() {
	u.bus.Modify(registers.LineControl, func(v uint8) uint8 {
		return linecontrol.SetDLAB(v, true)
	})
}

// DisableDLAB clears the divisor latch access bit.
func (u *UART) DisableDLAB() {
	u.bus.Modify(registers.LineControl, func(v uint8) uint8 {
		return linecontrol.SetDLAB(v, false)
	})
}

// ToggleDLAB inverts the divisor latch access bit.
func (u *UART) ToggleDLAB() {
	u.bus.Modify(registers.LineControl, func(v uint8) uint8 {
		return v ^ linecontrol.MaskDLAB
	})
}

// IsDLABEnabled returns the state of the divisor latch access bit.
func (u *UART) IsDLABEnabled() bool {
	return linecontrol.GetDLAB(u.bus.Read(registers.LineControl))
}

// Parity returns the parity setting of the line control register. The error
// is UnrecognisedParity if the register holds a reserved pattern.
func (u *UART) Parity() (linecontrol.Parity, error) {
	return linecontrol.GetParity(u.bus.Read(registers.LineControl))
}

// SetParity changes the parity setting. An invalid parity value returns an
// InvalidFieldValue error and the register is not accessed.
// Callers that treat an invalid value as fatal should panic on the error.
func (u *UART) SetParity(p linecontrol.Parity) error {
	if err := linecontrol.ValidateParity(p); err != nil {
		return err
	}
	u.bus.Modify(registers.LineControl, func(v uint8) uint8 {
		v, _ = linecontrol.SetParity(v, p)
		return v
	})
	return nil
}

// StopBits returns the number of stop bits, one or two. Two stop bits with a
// five bit word length means 1.5 stop bits.
func (u *UART) StopBits() int {
	return linecontrol.GetStopBits(u.bus.Read(registers.LineControl))
}

// SetStopBits changes the number of stop bits. Values other than one and two
// return an InvalidFieldValue error and the register is not accessed.
// Callers that treat an invalid value as fatal should panic on the error.
func (u *UART) SetStopBits(n int) error {
	if err := linecontrol.ValidateStopBits(n); err != nil {
		return err
	}
	u.bus.Modify(registers.LineControl, func(v uint8) uint8 {
		v, _ = linecontrol.SetStopBits(v, n)
		return v
	})
	return nil
}

// WordLength returns the number of data bits, five to eight.
func (u *UART) WordLength() int {
	return linecontrol.GetWordLength(u.bus.Read(registers.LineControl))
}

// SetWordLength changes the number of data bits. Values outside five to
// eight return an InvalidFieldValue error and the register is not accessed.
// Callers that treat an invalid value as fatal should panic on the error.
func (u *UART) SetWordLength(n int) error {
	if err := linecontrol.ValidateWordLength(n); err != nil {
		return err
	}
	u.bus.Modify(registers.LineControl, func(v uint8) uint8 {
		v, _ = linecontrol.SetWordLength(v, n)
		return v
	})
	return nil
}

// LineConfig returns word length, parity and stop bits from a single read of
// the line control register.
func (u *UART) LineConfig() (linecontrol.Config, error) {
	return linecontrol.Decode(u.bus.Read(registers.LineControl))
}

// SetLineConfig changes word length, parity and stop bits with a single
// read-modify-write of the line control register. The register is not
// accessed if any field is invalid.
// Callers that treat an invalid value as fatal should panic on the error.
func (u *UART) SetLineConfig(cfg linecontrol.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	u.bus.Modify(registers.LineControl, func(v uint8) uint8 {
		v, _ = cfg.Encode(v)
		return v
	})
	return nil
}

// IsBreakEnabled returns the state of the break enable bit.
func (u *UART) IsBreakEnabled() bool {
	return linecontrol.GetBreak(u.bus.Read(registers.LineControl))
}

// SetBreak sets or clears the break enable bit. While set the transmitter
// output is held in the spacing state.
func (u *UART) SetBreak(set bool) {
	u.bus.Modify(registers.LineControl, func(v uint8) uint8 {
		return linecontrol.SetBreak(v, set)
	})
}
