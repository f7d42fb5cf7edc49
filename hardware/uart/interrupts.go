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
	"github.com/jetsetilly/uart8250/hardware/uart/interrupts"
	"github.com/jetsetilly/uart8250/hardware/uart/registers"
)

// InterruptEnable reads the interrupt enable register. Assumes DLAB is
// clear.
func (u *UART) InterruptEnable() registers.IER {
	return registers.NewIER(u.bus.Read(registers.InterruptEnable))
}

// SetInterruptEnable writes the complete interrupt enable register. Assumes
// DLAB is clear.
func (u *UART) SetInterruptEnable(ier registers.IER) {
	u.bus.Write(registers.InterruptEnable, ier.Bits())
}

// EnableInterrupts sets the interrupt enable flags. Other flags are not
// changed.
func (u *UART) EnableInterrupts(flags registers.IER) {
	u.SetInterruptEnable(u.InterruptEnable().Union(flags))
}

// DisableInterrupts clears the interrupt enable flags. Other flags are not
// changed.
func (u *UART) DisableInterrupts(flags registers.IER) {
	u.SetInterruptEnable(u.InterruptEnable().Difference(flags))
}

// ToggleInterrupts inverts the interrupt enable flags. Other flags are not
// changed.
func (u *UART) ToggleInterrupts(flags registers.IER) {
	u.SetInterruptEnable(u.InterruptEnable().Toggle(flags))
}

// IsInterruptEnabled returns true if all the flags are set in the interrupt
// enable register.
func (u *UART) IsInterruptEnabled(flags registers.IER) bool {
	return u.InterruptEnable().Contains(flags)
}

// InterruptCause reads IIR and returns the cause of the highest priority
// pending interrupt. The boolean is false if no interrupt is pending.
//
// Reading IIR clears a pending transmitter empty interrupt. Calling
// InterruptCause() twice will not report the same TransmitterEmpty cause
// twice.
func (u *UART) InterruptCause() (interrupts.Cause, bool) {
	return interrupts.Decode(u.ReadIIR())
}

// InterruptPending reads IIR and returns true if an interrupt is pending.
// Has the same side effect as InterruptCause().
func (u *UART) InterruptPending() bool {
	return interrupts.Pending(u.ReadIIR())
}

// FIFOState reads IIR and returns the state of the FIFOs. Has the same side
// effect as InterruptCause().
func (u *UART) FIFOState() interrupts.FIFOState {
	return interrupts.DecodeFIFO(u.ReadIIR())
}

// Has64ByteFIFO reads IIR and returns true if the 64 byte FIFO flag is set.
// Has the same side effect as InterruptCause().
func (u *UART) Has64ByteFIFO() bool {
	return interrupts.Has64ByteFIFO(u.ReadIIR())
}
