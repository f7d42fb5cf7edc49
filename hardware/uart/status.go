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

import "github.com/jetsetilly/uart8250/hardware/uart/registers"

// LineStatus reads LSR. Reading LSR clears the line error bits.
func (u *UART) LineStatus() registers.LSR {
	return registers.NewLSR(u.bus.Read(registers.LineStatus))
}

// IsDataReady reads LSR and returns the state of the data ready bit.
func (u *UART) IsDataReady() bool {
	return u.LineStatus().Contains(registers.DR)
}

// IsTransmitterEmpty reads LSR and returns true if THR is empty.
func (u *UART) IsTransmitterEmpty() bool {
	return u.LineStatus().Contains(registers.THRE)
}

// ModemStatus reads MSR. Reading MSR clears the delta bits.
func (u *UART) ModemStatus() registers.MSR {
	return registers.NewMSR(u.bus.Read(registers.ModemStatus))
}

// ModemControl reads MCR.
func (u *UART) ModemControl() registers.MCR {
	return registers.NewMCR(u.bus.Read(registers.ModemControl))
}

// SetModemControl writes MCR.
func (u *UART) SetModemControl(mcr registers.MCR) {
	u.bus.Write(registers.ModemControl, mcr.Bits())
}

// SetFIFOControl writes FCR. The register is write-only.
func (u *UART) SetFIFOControl(fcr registers.FCR) {
	u.bus.Write(registers.FIFOControl, fcr.Bits())
}
