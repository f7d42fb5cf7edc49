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
	"github.com/jetsetilly/uart8250/hardware/uart/registers"
)

// The raw accessors perform a single access and do not touch DLAB. The
// divisor latch accessors assume DLAB is set and the others that share
// offsets 0 and 1 assume it is clear.

// ReadDLL reads the low byte of the divisor latch.
func (u *UART) ReadDLL() uint8 {
	return u.bus.Read(registers.DivisorLow)
}

// WriteDLL writes the low byte of the divisor latch.
func (u *UART) WriteDLL(v uint8) {
	u.bus.Write(registers.DivisorLow, v)
}

// ReadDLH reads the high byte of the divisor latch.
func (u *UART) ReadDLH() uint8 {
	return u.bus.Read(registers.DivisorHigh)
}

// WriteDLH writes the high byte of the divisor latch.
func (u *UART) WriteDLH(v uint8) {
	u.bus.Write(registers.DivisorHigh, v)
}

// ReadIER reads the interrupt enable register.
func (u *UART) ReadIER() uint8 {
	return u.bus.Read(registers.InterruptEnable)
}

// WriteIER writes the interrupt enable register.
func (u *UART) WriteIER(v uint8) {
	u.bus.Write(registers.InterruptEnable, v)
}

// WriteFCR writes the FIFO control register.
func (u *UART) WriteFCR(v uint8) {
	u.bus.Write(registers.FIFOControl, v)
}

// ReadMCR reads the modem control register.
func (u *UART) ReadMCR() uint8 {
	return u.bus.Read(registers.ModemControl)
}

// WriteMCR writes the modem control register.
func (u *UART) WriteMCR(v uint8) {
	u.bus.Write(registers.ModemControl, v)
}

// ReadLSR reads the line status register. Clears line errors.
func (u *UART) ReadLSR() uint8 {
	return u.bus.Read(registers.LineStatus)
}

// ReadMSR reads the modem status register. Clears the delta flags.
func (u *UART) ReadMSR() uint8 {
	return u.bus.Read(registers.ModemStatus)
}
