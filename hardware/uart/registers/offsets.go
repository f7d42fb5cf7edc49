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

// Register offsets from the base address of the register block.
const (
	Data            uint8 = 0
	InterruptEnable uint8 = 1
	InterruptID     uint8 = 2
	LineControl     uint8 = 3
	ModemControl    uint8 = 4
	LineStatus      uint8 = 5
	ModemStatus     uint8 = 6
	Scratch         uint8 = 7

	// offsets 0 and 1 are the divisor latch while the DLAB bit of the line
	// control register is set
	DivisorLow  uint8 = Data
	DivisorHigh uint8 = InterruptEnable

	// reading offset 2 returns the interrupt identification register.
	// writing it sets the FIFO control register
	FIFOControl uint8 = InterruptID
)

// Register is the canonical name of a UART register.
type Register string

// List of valid Register values.
const (
	RegRBR Register = "RBR"
	RegTHR Register = "THR"
	RegDLL Register = "DLL"
	RegDLH Register = "DLH"
	RegIER Register = "IER"
	RegIIR Register = "IIR"
	RegFCR Register = "FCR"
	RegLCR Register = "LCR"
	RegMCR Register = "MCR"
	RegLSR Register = "LSR"
	RegMSR Register = "MSR"
	RegSCR Register = "SCR"

	// NoRegister is returned by Name() for accesses that have no register,
	// such as a write to the line status register
	NoRegister Register = ""
)

// ReadSymbols indexes register names by offset for reads with DLAB clear.
var ReadSymbols = map[uint8]Register{
	Data:            RegRBR,
	InterruptEnable: RegIER,
	InterruptID:     RegIIR,
	LineControl:     RegLCR,
	ModemControl:    RegMCR,
	LineStatus:      RegLSR,
	ModemStatus:     RegMSR,
	Scratch:         RegSCR,
}

// WriteSymbols indexes register names by offset for writes with DLAB clear.
// There are no entries for the two status registers because they are
// read-only.
var WriteSymbols = map[uint8]Register{
	Data:            RegTHR,
	InterruptEnable: RegIER,
	FIFOControl:     RegFCR,
	LineControl:     RegLCR,
	ModemControl:    RegMCR,
	Scratch:         RegSCR,
}

// Name returns the register accessed at the offset for the given DLAB state
// and direction of access. Returns NoRegister if the access does not address
// a register.
func Name(offset uint8, dlab bool, write bool) Register {
	if dlab {
		switch offset {
		case DivisorLow:
			return RegDLL
		case DivisorHigh:
			return RegDLH
		}
	}
	if write {
		return WriteSymbols[offset]
	}
	return ReadSymbols[offset]
}

// Offset returns the offset of the named register. The second return value
// is false if the name is not recognised. Register names are case sensitive.
func Offset(name Register) (uint8, bool) {
	switch name {
	case RegDLL:
		return DivisorLow, true
	case RegDLH:
		return DivisorHigh, true
	}
	for o, n := range ReadSymbols {
		if n == name {
			return o, true
		}
	}
	for o, n := range WriteSymbols {
		if n == name {
			return o, true
		}
	}
	return 0, false
}
