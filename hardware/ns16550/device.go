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
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jetsetilly/uart8250/hardware/mmio"
	"github.com/jetsetilly/uart8250/hardware/uart/interrupts"
	"github.com/jetsetilly/uart8250/hardware/uart/linecontrol"
	"github.com/jetsetilly/uart8250/hardware/uart/registers"
	"github.com/jetsetilly/uart8250/logger"
)

// LineChangeHook is called when the character format or the divisor latch
// has changed. Changes made while DLAB is set are reported by the LCR write
// that clears DLAB, so the hook never sees a partly written divisor. The hook
// is called after the register access has completed and outside of the
// Device's critical section.
type LineChangeHook func(lcr uint8, divisor uint16)

// Device is a simulated 16550. Create with NewDevice().
type Device struct {
	crit sync.Mutex

	// label is used as the logging tag
	label string

	// transmitted bytes are written here when not in loopback mode
	tx io.Writer

	rx  fifo
	rbr uint8

	ier registers.IER
	fcr registers.FCR
	lcr uint8
	mcr registers.MCR
	scr uint8
	dll uint8
	dlh uint8

	// line errors waiting to be reported by LSR
	errors registers.LSR

	// modem status. inputs holds the state of the external CTS, DSR, RI and
	// DCD lines, which are disconnected in loopback mode
	msr    registers.MSR
	inputs registers.MSR

	// the transmitter empty interrupt is an event. it is raised when THR
	// becomes empty and is consumed by a read of IIR or a write to THR
	threPending bool

	// character timeout has been raised and not yet consumed
	timeout bool

	reads  [mmio.NumRegisters]int
	writes [mmio.NumRegisters]int

	traceLimit int
	trace      []mmio.Access

	lineChange LineChangeHook

	// the line configuration has changed but the hook has not been called
	linePending bool
}

// NewDevice is the preferred method of initialisation for the Device type.
// The label is used to tag log entries. Transmitted bytes are written to tx,
// which may be nil.
func NewDevice(label string, tx io.Writer) *Device {
	dev := &Device{
		label: label,
		tx:    tx,
	}
	dev.Reset()
	return dev
}

// Reset puts the device into the state it has after a master reset.
func (dev *Device) Reset() {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	dev.rx.clear()
	dev.rx.limit = 1
	dev.rbr = 0
	dev.ier = 0
	dev.fcr = 0
	dev.lcr = 0
	dev.mcr = 0
	dev.scr = 0
	dev.dll = 0
	dev.dlh = 0
	dev.errors = 0
	dev.msr = dev.inputs
	dev.threPending = false
	dev.timeout = false
	dev.linePending = false
}

// SetOutput changes the writer that transmitted bytes are written to. A nil
// writer discards transmitted bytes.
func (dev *Device) SetOutput(tx io.Writer) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.tx = tx
}

// SetLineChangeHook sets the function to be called when the guest changes
// the line configuration. A nil hook removes any existing hook.
func (dev *Device) SetLineChangeHook(hook LineChangeHook) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.lineChange = hook
}

// LineConfig returns the current value of LCR and the divisor latch.
func (dev *Device) LineConfig() (uint8, uint16) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.lcr, dev.divisor()
}

func (dev *Device) divisor() uint16 {
	return uint16(dev.dlh)<<8 | uint16(dev.dll)
}

func (dev *Device) dlab() bool {
	return linecontrol.GetDLAB(dev.lcr)
}

func (dev *Device) fifoEnabled() bool {
	return dev.fcr.Contains(registers.EnableFIFO)
}

// the value of LSR as it would be read. THRE and TEMT are always set because
// transmission is instantaneous
func (dev *Device) lineStatus() registers.LSR {
	lsr := dev.errors | registers.THRE | registers.TEMT
	if dev.rx.count > 0 {
		lsr |= registers.DR
	}
	if dev.fifoEnabled() && dev.errors.HasError() {
		lsr |= registers.RFE
	}
	return lsr
}

// Counts returns the number of reads and writes made to each offset.
func (dev *Device) Counts() (reads [mmio.NumRegisters]int, writes [mmio.NumRegisters]int) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.reads, dev.writes
}

// ResetCounts sets the access counters to zero.
func (dev *Device) ResetCounts() {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.reads = [mmio.NumRegisters]int{}
	dev.writes = [mmio.NumRegisters]int{}
}

// SetTrace enables the recording of register accesses. The most recent limit
// accesses are kept. A limit of zero disables tracing and discards the trace.
func (dev *Device) SetTrace(limit int) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.traceLimit = limit
	if limit == 0 {
		dev.trace = nil
	}
}

// Trace returns a copy of the recorded accesses, oldest first.
func (dev *Device) Trace() []mmio.Access {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	t := make([]mmio.Access, len(dev.trace))
	copy(t, dev.trace)
	return t
}

func (dev *Device) record(a mmio.Access) {
	if dev.traceLimit == 0 {
		return
	}
	if len(dev.trace) >= dev.traceLimit {
		dev.trace = dev.trace[1:]
	}
	dev.trace = append(dev.trace, a)
}

// Label returns the label the device was created with.
func (dev *Device) Label() string {
	return dev.label
}

func (dev *Device) String() string {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	s := strings.Builder{}
	cfg, err := linecontrol.Decode(dev.lcr)
	if err != nil {
		s.WriteString(fmt.Sprintf("%s: LCR=%#02x (bad parity)", dev.label, dev.lcr))
	} else {
		s.WriteString(fmt.Sprintf("%s: LCR=%#02x (%s)", dev.label, dev.lcr, cfg))
	}
	s.WriteString(fmt.Sprintf(" DIV=%#04x IER=%s MCR=%s LSR=%s MSR=%s FCR=%s",
		dev.divisor(), dev.ier, dev.mcr, dev.lineStatus(), dev.msr, dev.fcr))
	if c, ok := dev.cause(); ok {
		s.WriteString(fmt.Sprintf(" INT=%s", c))
	}
	return s.String()
}

func (dev *Device) logf(format string, args ...any) {
	logger.Logf(logger.Allow, dev.label, format, args...)
}

// Interrupt returns the cause of the highest priority pending interrupt. The
// boolean is false if no interrupt is pending. Unlike a read of IIR this has
// no side effects.
func (dev *Device) Interrupt() (interrupts.Cause, bool) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.cause()
}

// the highest priority pending interrupt that is also enabled in IER
func (dev *Device) cause() (interrupts.Cause, bool) {
	if dev.ier.Contains(registers.RLSI) && dev.errors&injectableErrors != 0 {
		return interrupts.LineStatus, true
	}

	if dev.ier.Contains(registers.RDAI) && dev.rx.count > 0 {
		if !dev.fifoEnabled() || dev.rx.count >= dev.fcr.TriggerLevel() {
			return interrupts.DataAvailable, true
		}
		if dev.timeout {
			return interrupts.Timeout, true
		}
	}

	if dev.ier.Contains(registers.THREI) && dev.threPending {
		return interrupts.TransmitterEmpty, true
	}

	if dev.ier.Contains(registers.MSI) && dev.msr&registers.Deltas != 0 {
		return interrupts.ModemStatus, true
	}

	return interrupts.Reserved, false
}
