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

// Package hardware is the base package for the register level support of
// 8250 and 16550 compatible UARTs.
//
// The mmio sub-package describes how a block of eight byte-wide registers is
// reached. The uart sub-package and its children give the registers meaning
// and are the code a driver would use. The ns16550 sub-package is a
// behavioural model of the chip behind the same interface, suitable for
// testing drivers without hardware.
//
// The preferences sub-package holds the settings used to configure the UART
// when the program starts.
package hardware
