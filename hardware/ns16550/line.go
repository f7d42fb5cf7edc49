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

package ns16550

import "github.com/jetsetilly/uart8250/hardware/uart/registers"

// the line errors that can be injected and that raise a line status interrupt
const injectableErrors = registers.OE | registers.PE | registers.FE | registers.BI

// Inject bytes into the receive FIFO as though they had arrived on the
// serial line. Returns the number of bytes accepted. Bytes that arrive while
// the FIFO is full are lost and set the overrun error.
//
// Bytes are not accepted in loopback mode because the serial input is
// disconnected from the receiver.
func (dev *Device) Inject(data ...uint8) int {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.mcr.Contains(registers.LOOP) {
		return 0
	}

	n := 0
	for _, v := range data {
		if dev.receive(v) {
			n++
		}
	}
	return n
}

func (dev *Device) receive(v uint8) bool {
	if !dev.rx.push(v) {
		dev.errors |= registers.OE
		return false
	}
	return true
}

// InjectErrors sets line error bits in LSR as though the receiver had
// detected them. Only OE, PE, FE and BI are meaningful.
func (dev *Device) InjectErrors(errs registers.LSR) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.errors |= errs & injectableErrors
}

// CharacterTimeout raises the character timeout condition. On the real chip
// this happens when there is data in the FIFO below the trigger level and
// nothing has been received or read for four character times. It has no
// effect if the FIFO is disabled or empty.
func (dev *Device) CharacterTimeout() {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	if dev.fifoEnabled() && dev.rx.count > 0 {
		dev.timeout = true
	}
}

// Buffered returns the number of bytes waiting in the receive FIFO.
func (dev *Device) Buffered() int {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.rx.count
}

// SetModemInputs sets the state of the CTS, DSR, RI and DCD input lines. Only
// the upper four bits of the argument are used. The delta bits of MSR are
// updated to reflect any change.
func (dev *Device) SetModemInputs(inputs registers.MSR) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.inputs = inputs &^ registers.Deltas
	dev.updateModemStatus()
}

// ModemOutputs returns the state of the DTR and RTS output lines.
func (dev *Device) ModemOutputs() (dtr bool, rts bool) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.mcr.Contains(registers.DTR), dev.mcr.Contains(registers.RTS)
}

// recalculate the status bits of MSR and accumulate the delta bits. in
// loopback mode the inputs are driven by the outputs in MCR
func (dev *Device) updateModemStatus() {
	status := dev.inputs
	if dev.mcr.Contains(registers.LOOP) {
		status = 0
		if dev.mcr.Contains(registers.RTS) {
			status |= registers.CTS
		}
		if dev.mcr.Contains(registers.DTR) {
			status |= registers.DSR
		}
		if dev.mcr.Contains(registers.OUT1) {
			status |= registers.RI
		}
		if dev.mcr.Contains(registers.OUT2) {
			status |= registers.DCD
		}
	}

	prev := dev.msr
	delta := prev & registers.Deltas
	if prev.Contains(registers.CTS) != status.Contains(registers.CTS) {
		delta |= registers.DCTS
	}
	if prev.Contains(registers.DSR) != status.Contains(registers.DSR) {
		delta |= registers.DDSR
	}
	if prev.Contains(registers.RI) && !status.Contains(registers.RI) {
		delta |= registers.TERI
	}
	if prev.Contains(registers.DCD) != status.Contains(registers.DCD) {
		delta |= registers.DDCD
	}

	dev.msr = status | delta
}
