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
	"fmt"

	"github.com/jetsetilly/uart8250/hardware/mmio"
	"github.com/jetsetilly/uart8250/hardware/uart/divisor"
	"github.com/jetsetilly/uart8250/hardware/uart/linecontrol"
	"github.com/jetsetilly/uart8250/hardware/uart/registers"
)

// UART is a handle to a register block at a base address.
type UART struct {
	src  mmio.Source
	base uintptr
	bus  mmio.Bus
}

// New is the preferred method of initialisation for the UART type.
func New(src mmio.Source, base uintptr) *UART {
	u := &UART{src: src}
	u.SetBaseAddress(base)
	return u
}

// SetBaseAddress rebinds the handle to a different register block. No
// registers are accessed.
func (u *UART) SetBaseAddress(base uintptr) {
	u.base = base
	u.bus = u.src.Map(base)
}

// BaseAddress returns the base address the handle is bound to.
func (u *UART) BaseAddress() uintptr {
	return u.base
}

func (u *UART) String() string {
	return fmt.Sprintf("uart@%#x", u.base)
}

// Init programs the UART with the divisor for the clock and baud rate and
// sets the line to eight data bits, no parity and one stop bit. FIFOs are
// enabled, all modem control outputs are cleared and the data available
// interrupt is enabled.
//
// The sequence is a useful default and nothing more. Other configurations
// should be made with the individual methods.
func (u *UART) Init(clock uint, baud uint) {
	u.SetDivisor(clock, baud)

	// 8N1 with DLAB and break clear
	lcr, _ := linecontrol.Default8N1.Encode(0)
	u.bus.Write(registers.LineControl, lcr)

	u.bus.Write(registers.FIFOControl, registers.EnableFIFO.Bits())
	u.bus.Write(registers.ModemControl, 0)
	u.EnableInterrupts(registers.RDAI)
}

// Receive returns the next byte from the receiver. The boolean is false if
// no data is ready, in which case RBR is not read. Exactly one read of LSR is
// made in all cases.
//
// Reading LSR clears any line errors. Use LineStatus() before Receive() if
// the errors are of interest.
func (u *UART) Receive() (uint8, bool) {
	if !registers.NewLSR(u.bus.Read(registers.LineStatus)).Contains(registers.DR) {
		return 0, false
	}
	return u.bus.Read(registers.Data), true
}

// Transmit writes the byte to THR without checking whether THR is empty. A
// byte written while THR is full overwrites the previous byte.
func (u *UART) Transmit(b uint8) {
	u.bus.Write(registers.Data, b)
}

// SetDivisor programs the divisor latch for the clock and baud rate. See the
// divisor package for the exact sequence of accesses.
func (u *UART) SetDivisor(clock uint, baud uint) {
	divisor.Program(u.bus, clock, baud)
}

// Divisor reads the current value of the divisor latch.
func (u *UART) Divisor() uint16 {
	return divisor.Read(u.bus)
}

// ReadRBR reads the receive buffer register. Assumes DLAB is clear. Removes
// a byte from the receive FIFO.
func (u *UART) ReadRBR() uint8 {
	return u.bus.Read(registers.Data)
}

// WriteTHR writes the transmit holding register. Assumes DLAB is clear.
func (u *UART) WriteTHR(v uint8) {
	u.bus.Write(registers.Data, v)
}

// ReadIIR reads the interrupt identification register. Clears a pending
// transmitter empty interrupt.
func (u *UART) ReadIIR() uint8 {
	return u.bus.Read(registers.InterruptID)
}

// ReadLCR reads the line control register.
func (u *UART) ReadLCR() uint8 {
	return u.bus.Read(registers.LineControl)
}

// WriteLCR writes the line control register.
func (u *UART) WriteLCR(v uint8) {
	u.bus.Write(registers.LineControl, v)
}

// ReadSCR reads the scratch register.
func (u *UART) ReadSCR() uint8 {
	return u.bus.Read(registers.Scratch)
}

// WriteSCR writes the scratch register.
func (u *UART) WriteSCR(v uint8) {
	u.bus.Write(registers.Scratch, v)
}
