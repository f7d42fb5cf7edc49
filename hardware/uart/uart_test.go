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

package uart_test

import (
	"testing"

	"github.com/jetsetilly/uart8250/curated"
	"github.com/jetsetilly/uart8250/hardware/mmio"
	"github.com/jetsetilly/uart8250/hardware/ns16550"
	"github.com/jetsetilly/uart8250/hardware/uart"
	"github.com/jetsetilly/uart8250/hardware/uart/interrupts"
	"github.com/jetsetilly/uart8250/hardware/uart/linecontrol"
	"github.com/jetsetilly/uart8250/hardware/uart/registers"
	"github.com/jetsetilly/uart8250/test"
)

func TestReceiveNotReady(t *testing.T) {
	var blk mmio.Block
	u := uart.New(&blk, 0)

	_, ok := u.Receive()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, blk.Reads[registers.LineStatus], 1)
	test.ExpectEquality(t, blk.Reads[registers.Data], 0)

	blk.ResetCounts()
	blk.Registers[registers.LineStatus] = 0x61
	blk.Registers[registers.Data] = 0x41

	v, ok := u.Receive()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0x41)
	test.ExpectEquality(t, blk.Reads[registers.LineStatus], 1)
	test.ExpectEquality(t, blk.Reads[registers.Data], 1)
}

func TestTransmit(t *testing.T) {
	var blk mmio.Block
	u := uart.New(&blk, 0)

	// THR is written regardless of LSR
	u.Transmit('a')
	test.ExpectEquality(t, blk.Registers[registers.Data], 'a')
	test.ExpectEquality(t, blk.Writes[registers.Data], 1)
	test.ExpectEquality(t, blk.Reads[registers.LineStatus], 0)
}

func TestInitSequence(t *testing.T) {
	var blk mmio.Block
	rec := &mmio.Recorder{Bus: &blk}
	u := uart.New(rec, 0)

	u.Init(1843200, 115200)

	expected := []mmio.Access{
		{Write: true, Offset: 3, Data: 0x80},
		{Write: true, Offset: 0, Data: 0x01},
		{Write: true, Offset: 1, Data: 0x00},
		{Write: true, Offset: 3, Data: 0x00},
		{Write: true, Offset: 3, Data: 0x03},
		{Write: true, Offset: 2, Data: 0x01},
		{Write: true, Offset: 4, Data: 0x00},
		{Write: true, Offset: 1, Data: 0x01},
	}

	w := rec.Writes()
	test.DemandEquality(t, len(w), len(expected))
	for i := range expected {
		test.ExpectEquality(t, w[i], expected[i], i)
	}
}

func TestInitDevice(t *testing.T) {
	tx := &test.CompareWriter{}
	dev := ns16550.NewDevice("uart0", tx)
	brd := ns16550.NewBoard()
	test.DemandSuccess(t, brd.Attach(0x3f8, dev))

	u := uart.New(brd, 0x3f8)
	u.Init(1843200, 9600)

	test.ExpectEquality(t, u.Divisor(), 12)
	test.ExpectFailure(t, u.IsDLABEnabled())
	test.ExpectEquality(t, u.FIFOState(), interrupts.Enabled)
	test.ExpectSuccess(t, u.IsInterruptEnabled(registers.RDAI))

	cfg, err := u.LineConfig()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cfg, linecontrol.Default8N1)

	for _, b := range []uint8("hello") {
		u.Transmit(b)
	}
	test.ExpectSuccess(t, tx.Compare("hello"))

	_, ok := u.InterruptCause()
	test.ExpectFailure(t, ok)

	dev.Inject('x')
	c, ok := u.InterruptCause()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, interrupts.DataAvailable)

	v, ok := u.Receive()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 'x')
	test.ExpectFailure(t, u.InterruptPending())

	_, ok = u.Receive()
	test.ExpectFailure(t, ok)
}

func TestRebind(t *testing.T) {
	brd := ns16550.NewBoard()
	a := ns16550.NewDevice("uart0", nil)
	b := ns16550.NewDevice("uart1", nil)
	test.DemandSuccess(t, brd.Attach(0x3f8, a))
	test.DemandSuccess(t, brd.Attach(0x2f8, b))

	u := uart.New(brd, 0x3f8)
	u.WriteSCR(0x11)
	u.SetBaseAddress(0x2f8)
	test.ExpectEquality(t, u.BaseAddress(), 0x2f8)
	u.WriteSCR(0x22)

	test.ExpectEquality(t, a.Read(registers.Scratch), 0x11)
	test.ExpectEquality(t, b.Read(registers.Scratch), 0x22)

	u.SetBaseAddress(0x3f8)
	test.ExpectEquality(t, u.ReadSCR(), 0x11)
}

func TestLineControl(t *testing.T) {
	var blk mmio.Block
	u := uart.New(&blk, 0)

	test.ExpectSuccess(t, u.SetWordLength(7))
	test.ExpectSuccess(t, u.SetParity(linecontrol.ParityOdd))
	test.ExpectSuccess(t, u.SetStopBits(2))
	test.ExpectEquality(t, u.ReadLCR(), 0x0e)

	test.ExpectEquality(t, u.WordLength(), 7)
	test.ExpectEquality(t, u.StopBits(), 2)
	p, err := u.Parity()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, linecontrol.ParityOdd)

	// invalid values do not touch the register
	blk.ResetCounts()
	err = u.SetWordLength(4)
	test.ExpectSuccess(t, curated.Is(err, linecontrol.InvalidFieldValue))
	err = u.SetStopBits(3)
	test.ExpectSuccess(t, curated.Is(err, linecontrol.InvalidFieldValue))
	err = u.SetParity(0b010)
	test.ExpectSuccess(t, curated.Is(err, linecontrol.InvalidFieldValue))
	err = u.SetLineConfig(linecontrol.Config{WordLength: 8, Parity: linecontrol.ParityNone, StopBits: 0})
	test.ExpectSuccess(t, curated.Is(err, linecontrol.InvalidFieldValue))
	test.ExpectEquality(t, blk.Reads[registers.LineControl], 0)
	test.ExpectEquality(t, blk.Writes[registers.LineControl], 0)

	// reserved parity pattern
	u.WriteLCR(0x20)
	_, err = u.Parity()
	test.ExpectSuccess(t, curated.Is(err, linecontrol.UnrecognisedParity))

	test.ExpectSuccess(t, u.SetLineConfig(linecontrol.Default8N1))
	test.ExpectEquality(t, u.ReadLCR(), 0x03)
}

func TestDLAB(t *testing.T) {
	var blk mmio.Block
	blk.Registers[registers.LineControl] = 0x1b
	u := uart.New(&blk, 0)

	u.EnableDLAB()
	test.ExpectSuccess(t, u.IsDLABEnabled())
	test.ExpectEquality(t, u.ReadLCR(), 0x9b)

	u.ToggleDLAB()
	test.ExpectFailure(t, u.IsDLABEnabled())

	u.ToggleDLAB()
	u.DisableDLAB()
	test.ExpectEquality(t, u.ReadLCR(), 0x1b)

	u.SetBreak(true)
	test.ExpectSuccess(t, u.IsBreakEnabled())
	test.ExpectEquality(t, u.ReadLCR(), 0x5b)
}

func TestInterruptEnable(t *testing.T) {
	var blk mmio.Block
	blk.Registers[registers.InterruptEnable] = 0x05
	u := uart.New(&blk, 0)

	// toggling twice restores the original value
	u.ToggleInterrupts(registers.THREI)
	test.ExpectEquality(t, blk.Registers[registers.InterruptEnable], 0x07)
	u.ToggleInterrupts(registers.THREI)
	test.ExpectEquality(t, blk.Registers[registers.InterruptEnable], 0x05)

	u.EnableInterrupts(registers.MSI)
	test.ExpectSuccess(t, u.IsInterruptEnabled(registers.MSI|registers.RDAI))

	u.DisableInterrupts(registers.RDAI | registers.RLSI)
	test.ExpectEquality(t, u.InterruptEnable(), registers.MSI)

	// IER is always written as a complete byte
	blk.ResetCounts()
	u.SetInterruptEnable(0)
	test.ExpectEquality(t, blk.Reads[registers.InterruptEnable], 0)
	test.ExpectEquality(t, blk.Writes[registers.InterruptEnable], 1)
}

func TestStatus(t *testing.T) {
	dev := ns16550.NewDevice("uart0", nil)
	u := uart.New(ns16550Source{dev}, 0)

	test.ExpectSuccess(t, u.IsTransmitterEmpty())
	test.ExpectFailure(t, u.IsDataReady())

	dev.Inject(1, 2)
	lsr := u.LineStatus()
	test.ExpectSuccess(t, lsr.Contains(registers.DR|registers.OE))
	test.ExpectSuccess(t, lsr.HasError())

	// errors cleared by the previous read
	test.ExpectFailure(t, u.LineStatus().HasError())

	dev.SetModemInputs(registers.DCD)
	test.ExpectEquality(t, u.ModemStatus(), registers.DCD|registers.DDCD)
	test.ExpectEquality(t, u.ModemStatus(), registers.DCD)

	u.SetModemControl(registers.DTR | registers.RTS)
	test.ExpectEquality(t, u.ModemControl(), registers.DTR|registers.RTS)
	dtr, rts := dev.ModemOutputs()
	test.ExpectSuccess(t, dtr)
	test.ExpectSuccess(t, rts)

	u.SetFIFOControl(registers.EnableFIFO | registers.Trigger4)
	test.ExpectEquality(t, u.FIFOState(), interrupts.Enabled)
	test.ExpectFailure(t, u.Has64ByteFIFO())
}

// a Source for a single device regardless of base address
type ns16550Source struct {
	dev *ns16550.Device
}

func (s ns16550Source) Map(_ uintptr) mmio.Bus {
	return s.dev
}

func TestRawAccessors(t *testing.T) {
	var blk mmio.Block
	u := uart.New(&blk, 0)

	u.WriteDLL(0x0c)
	u.WriteDLH(0x01)
	test.ExpectEquality(t, blk.Registers[registers.DivisorLow], 0x0c)
	test.ExpectEquality(t, blk.Registers[registers.DivisorHigh], 0x01)
	test.ExpectEquality(t, u.ReadDLL(), 0x0c)
	test.ExpectEquality(t, u.ReadDLH(), 0x01)

	// offsets 0 and 1 are shared so on plain memory the aliases are visible
	test.ExpectEquality(t, u.ReadRBR(), 0x0c)
	test.ExpectEquality(t, u.ReadIER(), 0x01)

	u.WriteIER(0x0f)
	test.ExpectEquality(t, u.InterruptEnable(), registers.RDAI|registers.THREI|registers.RLSI|registers.MSI)

	u.WriteFCR(0xc7)
	test.ExpectEquality(t, blk.Registers[registers.FIFOControl], 0xc7)

	u.WriteMCR(0x1b)
	test.ExpectEquality(t, u.ReadMCR(), 0x1b)
	test.ExpectSuccess(t, u.ModemControl().Contains(registers.LOOP))

	blk.Registers[registers.LineStatus] = 0x60
	blk.Registers[registers.ModemStatus] = 0xb0
	test.ExpectEquality(t, u.ReadLSR(), 0x60)
	test.ExpectEquality(t, u.ReadMSR(), 0xb0)

	blk.ResetCounts()
	u.ReadLSR()
	u.ReadMSR()
	test.ExpectEquality(t, blk.Reads[registers.LineStatus], 1)
	test.ExpectEquality(t, blk.Reads[registers.ModemStatus], 1)
	test.ExpectEquality(t, blk.Writes, [mmio.NumRegisters]int{})
}
