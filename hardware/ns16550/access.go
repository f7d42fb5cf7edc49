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

import (
	"github.com/jetsetilly/uart8250/hardware/mmio"
	"github.com/jetsetilly/uart8250/hardware/uart/interrupts"
	"github.com/jetsetilly/uart8250/hardware/uart/linecontrol"
	"github.com/jetsetilly/uart8250/hardware/uart/registers"
)

// Read implements the mmio.Bus interface.
func (dev *Device) Read(offset uint8) uint8 {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	offset %= mmio.NumRegisters
	dev.reads[offset]++
	v := dev.read(offset)
	dev.record(mmio.Access{Offset: offset, Data: v})
	return v
}

func (dev *Device) read(offset uint8) uint8 {
	switch offset {
	case registers.Data:
		if dev.dlab() {
			return dev.dll
		}
		// reading an empty buffer returns the previous byte again
		if v, ok := dev.rx.pop(); ok {
			dev.rbr = v
		}
		dev.timeout = false
		return dev.rbr

	case registers.InterruptEnable:
		if dev.dlab() {
			return dev.dlh
		}
		return dev.ier.Bits()

	case registers.InterruptID:
		var fifo uint8
		if dev.fifoEnabled() {
			fifo = interrupts.Enabled.Bits()
		}
		c, ok := dev.cause()
		if !ok {
			return fifo | 0x01
		}
		if c == interrupts.TransmitterEmpty {
			dev.threPending = false
		}
		return fifo | c.Pattern()

	case registers.LineControl:
		return dev.lcr

	case registers.ModemControl:
		return dev.mcr.Bits()

	case registers.LineStatus:
		v := dev.lineStatus()
		dev.errors = 0
		return v.Bits()

	case registers.ModemStatus:
		v := dev.msr
		dev.msr &^= registers.Deltas
		return v.Bits()

	case registers.Scratch:
		return dev.scr
	}

	return 0
}

// Write implements the mmio.Bus interface.
func (dev *Device) Write(offset uint8, data uint8) {
	dev.crit.Lock()

	offset %= mmio.NumRegisters
	dev.writes[offset]++
	dev.record(mmio.Access{Write: true, Offset: offset, Data: data})
	changed := dev.write(offset, data)

	hook := dev.lineChange
	lcr := dev.lcr
	div := dev.divisor()

	dev.crit.Unlock()

	if changed && hook != nil {
		hook(lcr, div)
	}
}

// returns true if the line configuration has changed
func (dev *Device) write(offset uint8, data uint8) bool {
	switch offset {
	case registers.Data:
		if dev.dlab() {
			dev.linePending = dev.linePending || dev.dll != data
			dev.dll = data
			return false
		}
		dev.transmit(data)

	case registers.InterruptEnable:
		if dev.dlab() {
			dev.linePending = dev.linePending || dev.dlh != data
			dev.dlh = data
			return false
		}

		// the 16550 has only the lower four bits
		ier := registers.NewIER(data & 0x0f)

		// enabling THRE interrupts while THR is empty raises the interrupt
		// immediately
		if !dev.ier.Contains(registers.THREI) && ier.Contains(registers.THREI) {
			dev.threPending = true
		}
		dev.ier = ier

	case registers.FIFOControl:
		dev.setFCR(registers.FCR(data))

	case registers.LineControl:
		const format = linecontrol.MaskParity | linecontrol.MaskStopBits | linecontrol.MaskWordLength
		dev.linePending = dev.linePending || dev.lcr&format != data&format
		dev.lcr = data

		// the divisor is only complete once DLAB has been cleared
		if dev.dlab() {
			return false
		}
		changed := dev.linePending
		dev.linePending = false
		return changed

	case registers.ModemControl:
		dev.mcr = registers.NewMCR(data & 0x1f)
		dev.updateModemStatus()

	case registers.LineStatus, registers.ModemStatus:
		dev.logf("write to read-only register %s ignored (%#02x)", registers.ReadSymbols[offset], data)

	case registers.Scratch:
		dev.scr = data
	}

	return false
}

// Modify implements the mmio.Bus interface. The read and the write are
// separate accesses and another goroutine may access the device between
// them.
func (dev *Device) Modify(offset uint8, f func(uint8) uint8) {
	dev.Write(offset, f(dev.Read(offset)))
}

func (dev *Device) transmit(data uint8) {
	dev.threPending = false

	if dev.mcr.Contains(registers.LOOP) {
		dev.receive(data)
	} else if dev.tx != nil {
		if _, err := dev.tx.Write([]uint8{data}); err != nil {
			dev.logf("transmit: %v", err)
		}
	}

	// the byte has gone and THR is empty again
	dev.threPending = true
}

func (dev *Device) setFCR(fcr registers.FCR) {
	enable := fcr.Contains(registers.EnableFIFO)

	// changing the FIFO enable bit clears both FIFOs
	if enable != dev.fifoEnabled() {
		dev.rx.clear()
		dev.timeout = false
	}

	if fcr.Contains(registers.ClearReceiveFIFO) {
		dev.rx.clear()
		dev.timeout = false
	}

	if enable {
		dev.rx.limit = fifoSize
	} else {
		dev.rx.limit = 1
	}

	// the clear bits are self clearing
	dev.fcr = fcr &^ (registers.ClearReceiveFIFO | registers.ClearTransmitFIFO)
}
