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

package ns16550_test

import (
	"testing"

	"github.com/jetsetilly/uart8250/curated"
	"github.com/jetsetilly/uart8250/hardware/mmio"
	"github.com/jetsetilly/uart8250/hardware/ns16550"
	"github.com/jetsetilly/uart8250/hardware/uart/interrupts"
	"github.com/jetsetilly/uart8250/hardware/uart/registers"
	"github.com/jetsetilly/uart8250/logger"
	"github.com/jetsetilly/uart8250/test"
)

func TestDLABAliasing(t *testing.T) {
	tx := &test.CompareWriter{}
	dev := ns16550.NewDevice("uart0", tx)

	dev.Write(registers.LineControl, 0x83)
	dev.Write(registers.DivisorLow, 0x0c)
	dev.Write(registers.DivisorHigh, 0x00)
	test.ExpectEquality(t, dev.Read(registers.DivisorLow), 0x0c)
	test.ExpectSuccess(t, tx.Compare(""))

	dev.Write(registers.LineControl, 0x03)
	dev.Write(registers.Data, 'A')
	dev.Write(registers.InterruptEnable, 0x01)
	test.ExpectSuccess(t, tx.Compare("A"))
	test.ExpectEquality(t, dev.Read(registers.InterruptEnable), 0x01)

	lcr, div := dev.LineConfig()
	test.ExpectEquality(t, lcr, 0x03)
	test.ExpectEquality(t, div, 12)
}

func TestReceiveWithoutFIFO(t *testing.T) {
	dev := ns16550.NewDevice("uart0", nil)
	test.ExpectEquality(t, dev.Read(registers.LineStatus), 0x60)

	// without FIFOs the receive buffer holds one byte
	test.ExpectEquality(t, dev.Inject(1, 2), 1)

	// overrun error is cleared by reading LSR
	test.ExpectEquality(t, dev.Read(registers.LineStatus), 0x63)
	test.ExpectEquality(t, dev.Read(registers.LineStatus), 0x61)

	test.ExpectEquality(t, dev.Read(registers.Data), 0x01)
	test.ExpectEquality(t, dev.Read(registers.LineStatus), 0x60)

	// reading an empty buffer returns the previous byte
	test.ExpectEquality(t, dev.Read(registers.Data), 0x01)
}

func TestFIFO(t *testing.T) {
	dev := ns16550.NewDevice("uart0", nil)
	dev.Write(registers.FIFOControl, 0x01)
	dev.Write(registers.InterruptEnable, 0x01)

	data := make([]uint8, 20)
	for i := range data {
		data[i] = uint8(i)
	}
	test.ExpectEquality(t, dev.Inject(data...), 16)
	test.ExpectEquality(t, dev.Buffered(), 16)
	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0xc4)

	for i := range 16 {
		test.ExpectEquality(t, dev.Read(registers.Data), uint8(i))
	}
	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0xc1)

	// clearing the receive FIFO
	dev.Inject(0xaa, 0xbb)
	dev.Write(registers.FIFOControl, 0x03)
	test.ExpectEquality(t, dev.Buffered(), 0)
	test.ExpectEquality(t, dev.Read(registers.LineStatus)&0x01, 0x00)

	// disabling FIFOs also clears the FIFO
	dev.Inject(0xaa, 0xbb)
	dev.Write(registers.FIFOControl, 0x00)
	test.ExpectEquality(t, dev.Buffered(), 0)
	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0x01)
}

func TestTriggerAndTimeout(t *testing.T) {
	dev := ns16550.NewDevice("uart0", nil)
	dev.Write(registers.FIFOControl, 0x81)
	dev.Write(registers.InterruptEnable, 0x01)

	dev.Inject(1, 2, 3)
	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0xc1)

	dev.CharacterTimeout()
	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0xcc)

	// reading RBR resets the timeout
	test.ExpectEquality(t, dev.Read(registers.Data), 0x01)
	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0xc1)

	// reaching the trigger level
	dev.Inject(4, 5, 6, 7, 8, 9)
	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0xc4)
}

func TestTransmitterEmpty(t *testing.T) {
	dev := ns16550.NewDevice("uart0", nil)

	// enabling the interrupt with THR empty raises it immediately
	dev.Write(registers.InterruptEnable, 0x02)
	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0x02)

	// reading IIR consumed the cause
	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0x01)

	// THR becomes empty again after a write
	dev.Write(registers.Data, 'x')
	c, ok := dev.Interrupt()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, interrupts.TransmitterEmpty)
}

func TestPriority(t *testing.T) {
	dev := ns16550.NewDevice("uart0", nil)

	dev.Inject(0x42)
	dev.InjectErrors(registers.PE)
	dev.SetModemInputs(registers.CTS)
	dev.Write(registers.InterruptEnable, 0x0f)

	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0x06)
	test.ExpectEquality(t, dev.Read(registers.LineStatus), 0x65)

	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0x04)
	test.ExpectEquality(t, dev.Read(registers.Data), 0x42)

	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0x02)
	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0x00)

	// delta bits are cleared by reading MSR
	test.ExpectEquality(t, dev.Read(registers.ModemStatus), 0x11)
	test.ExpectEquality(t, dev.Read(registers.ModemStatus), 0x10)
	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0x01)
}

func TestDisabledInterrupts(t *testing.T) {
	dev := ns16550.NewDevice("uart0", nil)
	dev.Inject(0x42)
	dev.InjectErrors(registers.FE)
	test.ExpectEquality(t, dev.Read(registers.InterruptID), 0x01)
	_, ok := dev.Interrupt()
	test.ExpectFailure(t, ok)
}

func TestLoopback(t *testing.T) {
	tx := &test.CompareWriter{}
	dev := ns16550.NewDevice("uart0", tx)

	// LOOP, RTS and OUT2
	dev.Write(registers.ModemControl, 0x1a)
	test.ExpectEquality(t, dev.Read(registers.ModemStatus), 0x99)
	test.ExpectEquality(t, dev.Read(registers.ModemStatus), 0x90)

	dev.Write(registers.Data, 0x55)
	test.ExpectSuccess(t, tx.Compare(""))
	test.ExpectEquality(t, dev.Read(registers.LineStatus), 0x61)
	test.ExpectEquality(t, dev.Read(registers.Data), 0x55)

	// the serial input is disconnected
	test.ExpectEquality(t, dev.Inject(0x01), 0)

	// the modem inputs are disconnected too
	dev.SetModemInputs(registers.DSR)
	test.ExpectEquality(t, dev.Read(registers.ModemStatus), 0x90)

	// leaving loopback reconnects the inputs
	dev.Write(registers.ModemControl, 0x00)
	test.ExpectEquality(t, dev.Read(registers.ModemStatus), 0x2b)

	dev.Write(registers.Data, 'z')
	test.ExpectSuccess(t, tx.Compare("z"))
}

func TestRingIndicatorTrailingEdge(t *testing.T) {
	dev := ns16550.NewDevice("uart0", nil)

	dev.SetModemInputs(registers.RI)
	test.ExpectEquality(t, dev.Read(registers.ModemStatus), 0x40)

	dev.SetModemInputs(0)
	test.ExpectEquality(t, dev.Read(registers.ModemStatus), 0x04)
}

func TestReadOnlyWrites(t *testing.T) {
	logger.Clear()
	dev := ns16550.NewDevice("uart0", nil)

	dev.Write(registers.LineStatus, 0x12)
	test.ExpectEquality(t, dev.Read(registers.LineStatus), 0x60)

	w := &test.CompareWriter{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "uart0: write to read-only register LSR ignored (0x12)\n")
}

func TestLineChangeHook(t *testing.T) {
	dev := ns16550.NewDevice("uart0", nil)

	type change struct {
		lcr uint8
		div uint16
	}
	var changes []change
	dev.SetLineChangeHook(func(lcr uint8, div uint16) {
		changes = append(changes, change{lcr: lcr, div: div})
	})

	dev.Write(registers.LineControl, 0x03)
	dev.Write(registers.LineControl, 0x83)
	dev.Write(registers.DivisorLow, 0x01)
	dev.Write(registers.DivisorLow, 0x01)
	dev.Write(registers.LineControl, 0x03)

	// the DLAB and break bits are not part of the line configuration. the
	// divisor change is reported when DLAB is cleared
	test.DemandEquality(t, len(changes), 2)
	test.ExpectEquality(t, changes[0], change{lcr: 0x03, div: 0})
	test.ExpectEquality(t, changes[1], change{lcr: 0x03, div: 1})

	// both divisor bytes are written before the single change is reported
	changes = changes[:0]
	dev.Write(registers.LineControl, 0x83)
	dev.Write(registers.DivisorLow, 0x80)
	dev.Write(registers.DivisorHigh, 0x01)
	test.ExpectEquality(t, len(changes), 0)
	dev.Write(registers.LineControl, 0x03)
	test.DemandEquality(t, len(changes), 1)
	test.ExpectEquality(t, changes[0], change{lcr: 0x03, div: 0x0180})

	// a format change with DLAB set is also held back
	changes = changes[:0]
	dev.Write(registers.LineControl, 0x9b)
	test.ExpectEquality(t, len(changes), 0)
	dev.Write(registers.LineControl, 0x1b)
	test.DemandEquality(t, len(changes), 1)
	test.ExpectEquality(t, changes[0], change{lcr: 0x1b, div: 0x0180})

	// DLAB window with no change
	changes = changes[:0]
	dev.Write(registers.LineControl, 0x9b)
	dev.Write(registers.DivisorLow, 0x80)
	dev.Write(registers.LineControl, 0x1b)
	test.ExpectEquality(t, len(changes), 0)
}

func TestCountsAndTrace(t *testing.T) {
	dev := ns16550.NewDevice("uart0", nil)
	dev.SetTrace(2)

	dev.Write(registers.Scratch, 0x5a)
	dev.Modify(registers.Scratch, func(v uint8) uint8 { return v ^ 0xff })

	reads, writes := dev.Counts()
	test.ExpectEquality(t, reads[registers.Scratch], 1)
	test.ExpectEquality(t, writes[registers.Scratch], 2)

	trace := dev.Trace()
	test.DemandEquality(t, len(trace), 2)
	test.ExpectEquality(t, trace[0], mmio.Access{Offset: 7, Data: 0x5a})
	test.ExpectEquality(t, trace[1], mmio.Access{Write: true, Offset: 7, Data: 0xa5})

	dev.ResetCounts()
	reads, _ = dev.Counts()
	test.ExpectEquality(t, reads[registers.Scratch], 0)
}

func TestBoard(t *testing.T) {
	brd := ns16550.NewBoard()
	dev := ns16550.NewDevice("uart0", nil)
	test.ExpectSuccess(t, brd.Attach(0x3f8, dev))

	err := brd.Attach(0x3f8, ns16550.NewDevice("uart1", nil))
	test.ExpectSuccess(t, curated.Is(err, ns16550.AddressInUse))
	test.ExpectSuccess(t, brd.Attach(0x2f8, ns16550.NewDevice("uart1", nil)))

	bases := brd.Bases()
	test.DemandEquality(t, len(bases), 2)
	test.ExpectEquality(t, bases[0], 0x2f8)

	bus := brd.Map(0x3f8)
	bus.Write(registers.Scratch, 0x77)
	test.ExpectEquality(t, dev.Read(registers.Scratch), 0x77)

	// open bus
	bus = brd.Map(0x1000)
	bus.Write(registers.Scratch, 0x00)
	test.ExpectEquality(t, bus.Read(registers.Scratch), 0xff)
}
