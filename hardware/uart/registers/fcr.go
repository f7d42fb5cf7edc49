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

import "fmt"

// FCR is the FIFO control register. The register is write-only; reading the
// same offset returns the interrupt identification register.
type FCR uint8

// List of valid FCR flags.
const (
	EnableFIFO FCR = 1 << iota
	ClearReceiveFIFO
	ClearTransmitFIFO
	DMAMode
	_

	// enable 64 byte FIFO (16750)
	Enable64ByteFIFO
)

// Receive FIFO interrupt trigger levels (bits 7 and 6). The number of bytes
// is for a 16 byte FIFO. For the 64 byte FIFO of the 16750 the levels are 1,
// 16, 32 and 56 bytes.
const (
	Trigger1  FCR = 0b0000_0000
	Trigger4  FCR = 0b0100_0000
	Trigger8  FCR = 0b1000_0000
	Trigger14 FCR = 0b1100_0000

	triggerMask = Trigger14
)

// Bits returns the raw value of the register.
func (f FCR) Bits() uint8 {
	return uint8(f)
}

// Contains returns true if every flag in o is also in f. The trigger level
// bits are compared in the same way as the other bits.
func (f FCR) Contains(o FCR) bool {
	return f&o == o
}

// TriggerLevel returns the number of bytes in a 16 byte receive FIFO that
// will trigger a data available interrupt.
func (f FCR) TriggerLevel() int {
	switch f & triggerMask {
	case Trigger4:
		return 4
	case Trigger8:
		return 8
	case Trigger14:
		return 14
	}
	return 1
}

var fcrNames = flagNames{"FIFO", "CLRRX", "CLRTX", "DMA", "", "FIFO64"}

func (f FCR) String() string {
	return fmt.Sprintf("%s trigger=%d", fcrNames.format(uint8(f)), f.TriggerLevel())
}
