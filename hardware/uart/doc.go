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

// Package uart is the handle through which firmware drives an 8250/16550
// compatible UART. A UART is bound to a base address in an mmio.Source and
// holds no other state. Everything else lives in the hardware registers.
//
// The sub-packages provide the pieces that the UART type composes:
//
//	registers     register offsets, names and the IER/LSR/MSR/MCR/FCR views
//	linecontrol   encoding and decoding of the line control register
//	interrupts    decoding of the interrupt identification register
//	divisor       calculation and programming of the baud rate divisor
//
// None of the methods of UART block and none of them are atomic. Methods
// that change a single field of a register (SetParity(), EnableInterrupts(),
// etc.) read the register and write it back. A caller with an interrupt
// handler or a second core accessing the same UART must serialise access
// itself.
//
// Several registers have side effects when read. Reading IIR clears a
// pending transmitter empty interrupt, reading RBR removes a byte from the
// receive FIFO, reading LSR clears the line error bits and reading MSR
// clears the delta bits. Methods that read those registers document it.
package uart
