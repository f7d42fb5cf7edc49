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

// Package interrupts decodes the interrupt identification register (IIR).
//
// The lower four bits identify the highest priority pending interrupt. Bit 0
// is clear when an interrupt is pending and set when nothing is pending, so
// any odd pattern means there is no cause to report. Bits 7 and 6 give the
// state of the FIFOs and bit 5 is set on parts with a 64 byte FIFO.
//
// Reading the IIR has a side effect on real hardware: a pending transmitter
// empty interrupt is cleared by the read. Callers must treat the read of the
// register, not the decode, as consuming that cause. Nothing in this package
// touches the hardware.
package interrupts
