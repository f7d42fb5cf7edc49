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

// Package divisor calculates and programs the baud rate divisor latch.
//
// The divisor latch shares offsets 0 and 1 with the receive/transmit buffer
// and the interrupt enable register. It is only visible while the DLAB bit
// of the line control register is set. Program() and Read() open a DLAB
// window, access the latch and close the window again, in that order.
package divisor

import (
	"github.com/jetsetilly/uart8250/hardware/mmio"
	"github.com/jetsetilly/uart8250/hardware/uart/linecontrol"
	"github.com/jetsetilly/uart8250/hardware/uart/registers"
)

// Divisor returns clock / (16 * baud), truncated to an integer and to the
// low 16 bits. A baud rate of zero returns zero.
func Divisor(clock uint, baud uint) uint16 {
	if baud == 0 {
		return 0
	}
	return uint16(uint64(clock) / (16 * uint64(baud)))
}

// BaudRate is the inverse of Divisor(). A divisor of zero returns zero.
func BaudRate(clock uint, divisor uint16) uint {
	if divisor == 0 {
		return 0
	}
	return uint(uint64(clock) / (16 * uint64(divisor)))
}

// Program writes the divisor for the clock and baud rate to the latch. There
// are exactly six accesses: a read-modify-write of LCR to set DLAB, a write of
// the low byte, a write of the high byte and a read-modify-write of LCR to
// clear DLAB.
func Program(bus mmio.Bus, clock uint, baud uint) {
	Write(bus, Divisor(clock, baud))
}

// Write the divisor value directly to the latch, with the same sequence of
// accesses as Program().
func Write(bus mmio.Bus, d uint16) {
	bus.Modify(registers.LineControl, func(v uint8) uint8 {
		return linecontrol.SetDLAB(v, true)
	})
	bus.Write(registers.DivisorLow, uint8(d))
	bus.Write(registers.DivisorHigh, uint8(d>>8))
	bus.Modify(registers.LineControl, func(v uint8) uint8 {
		return linecontrol.SetDLAB(v, false)
	})
}

// Read the current value of the divisor latch.
func Read(bus mmio.Bus) uint16 {
	bus.Modify(registers.LineControl, func(v uint8) uint8 {
		return linecontrol.SetDLAB(v, true)
	})
	lo := bus.Read(registers.DivisorLow)
	hi := bus.Read(registers.DivisorHigh)
	bus.Modify(registers.LineControl, func(v uint8) uint8 {
		return linecontrol.SetDLAB(v, false)
	})
	return uint16(hi)<<8 | uint16(lo)
}
