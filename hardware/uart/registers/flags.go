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

package registers

import "strings"

// flagNames is a list of names for bits 0 to 7 of a register. an empty string
// is a bit that is not defined.
type flagNames [8]string

func (n flagNames) format(v uint8) string {
	s := strings.Builder{}
	for i := range n {
		if v&(1<<i) != 0 && n[i] != "" {
			if s.Len() > 0 {
				s.WriteString("|")
			}
			s.WriteString(n[i])
		}
	}
	if s.Len() == 0 {
		return "none"
	}
	return s.String()
}

// IER is the interrupt enable register.
type IER uint8

// List of valid IER flags.
const (
	// received data available
	RDAI IER = 1 << iota

	// transmitter holding register empty
	THREI

	// receiver line status
	RLSI

	// modem status
	MSI

	// sleep mode (16750)
	SM

	// low power mode (16750)
	LPM
)

const ierMask = uint8(RDAI | THREI | RLSI | MSI | SM | LPM)

var ierNames = flagNames{"RDAI", "THREI", "RLSI", "MSI", "SM", "LPM"}

// NewIER creates an IER flag set from the raw register value. Undefined bits
// are truncated.
func NewIER(v uint8) IER {
	return IER(v & ierMask)
}

// Bits returns the raw value of the flag set.
func (f IER) Bits() uint8 {
	return uint8(f)
}

// Contains returns true if every flag in o is also in f.
func (f IER) Contains(o IER) bool {
	return f&o == o
}

// Union returns the flags that are in either f or o.
func (f IER) Union(o IER) IER {
	return f | o
}

// Difference returns the flags in f that are not in o.
func (f IER) Difference(o IER) IER {
	return f &^ o
}

// Toggle returns f with the flags in o inverted. Toggling the same flags twice
// restores the original value.
func (f IER) Toggle(o IER) IER {
	return f ^ o
}

func (f IER) String() string {
	return ierNames.format(uint8(f))
}

// LSR is the line status register. The register is read-only.
type LSR uint8

// List of valid LSR flags.
const (
	// data ready
	DR LSR = 1 << iota

	// overrun error
	OE

	// parity error
	PE

	// framing error
	FE

	// break interrupt
	BI

	// transmitter holding register empty
	THRE

	// data holding registers empty (transmitter empty)
	TEMT

	// error in received FIFO
	RFE
)

// LineErrors is the set of flags that indicate a problem with received data.
const LineErrors = OE | PE | FE | BI | RFE

var lsrNames = flagNames{"DR", "OE", "PE", "FE", "BI", "THRE", "TEMT", "RFE"}

// NewLSR creates an LSR flag set from the raw register value.
func NewLSR(v uint8) LSR {
	return LSR(v)
}

// Bits returns the raw value of the flag set.
func (f LSR) Bits() uint8 {
	return uint8(f)
}

// Contains returns true if every flag in o is also in f.
func (f LSR) Contains(o LSR) bool {
	return f&o == o
}

// HasError returns true if any of the LineErrors flags are set.
func (f LSR) HasError() bool {
	return f&LineErrors != 0
}

func (f LSR) String() string {
	return lsrNames.format(uint8(f))
}

// MSR is the modem status register. The register is read-only. The four delta
// flags are cleared by the hardware when the register is read.
type MSR uint8

// List of valid MSR flags.
const (
	// delta clear to send
	DCTS MSR = 1 << iota

	// delta data set ready
	DDSR

	// trailing edge ring indicator
	TERI

	// delta data carrier detect
	DDCD

	// clear to send
	CTS

	// data set ready
	DSR

	// ring indicator
	RI

	// data carrier detect
	DCD
)

// Deltas is the set of flags that record a change in the modem lines since
// the last read of the register.
const Deltas = DCTS | DDSR | TERI | DDCD

var msrNames = flagNames{"DCTS", "DDSR", "TERI", "DDCD", "CTS", "DSR", "RI", "DCD"}

// NewMSR creates an MSR flag set from the raw register value.
func NewMSR(v uint8) MSR {
	return MSR(v)
}

// Bits returns the raw value of the flag set.
func (f MSR) Bits() uint8 {
	return uint8(f)
}

// Contains returns true if every flag in o is also in f.
func (f MSR) Contains(o MSR) bool {
	return f&o == o
}

func (f MSR) String() string {
	return msrNames.format(uint8(f))
}

// MCR is the modem control register.
type MCR uint8

// List of valid MCR flags.
const (
	// data terminal ready
	DTR MCR = 1 << iota

	// request to send
	RTS

	// auxiliary output 1
	OUT1

	// auxiliary output 2. most PC designs gate the interrupt line with this
	// output
	OUT2

	// loopback mode
	LOOP

	// autoflow control (16750)
	AFE
)

const mcrMask = uint8(DTR | RTS | OUT1 | OUT2 | LOOP | AFE)

var mcrNames = flagNames{"DTR", "RTS", "OUT1", "OUT2", "LOOP", "AFE"}

// NewMCR creates an MCR flag set from the raw register value. Undefined bits
// are truncated.
func NewMCR(v uint8) MCR {
	return MCR(v & mcrMask)
}

// Bits returns the raw value of the flag set.
func (f MCR) Bits() uint8 {
	return uint8(f)
}

// Contains returns true if every flag in o is also in f.
func (f MCR) Contains(o MCR) bool {
	return f&o == o
}

func (f MCR) String() string {
	return mcrNames.format(uint8(f))
}
