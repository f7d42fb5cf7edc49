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

// Package registers describes the register block of an 8250/16550 UART: the
// offset of each register, the name of the register at each offset (which for
// some offsets depends on the direction of the access and on the state of the
// divisor latch access bit) and typed flag sets for the registers whose bits
// are independent flags.
//
// The flag set types (IER, LSR, MSR, MCR, FCR) are transient views over a
// single byte. Constructing a flag set from a raw byte never fails; bits that
// the register does not define are silently truncated, because real hardware
// is free to set them.
//
// Register layout:
//
//	Offset  Read                  Write
//	0       RBR (DLAB=0)          THR (DLAB=0)
//	        DLL (DLAB=1)          DLL (DLAB=1)
//	1       IER (DLAB=0)          IER (DLAB=0)
//	        DLH (DLAB=1)          DLH (DLAB=1)
//	2       IIR                   FCR
//	3       LCR                   LCR
//	4       MCR                   MCR
//	5       LSR                   -
//	6       MSR                   -
//	7       SCR                   SCR
package registers
