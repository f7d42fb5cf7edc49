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

package interrupts

// Cause is the reason for a pending interrupt.
type Cause int

// List of valid Cause values.
const (
	ModemStatus Cause = iota
	TransmitterEmpty
	DataAvailable
	LineStatus
	Timeout
	Reserved
)

const causeMask = 0b0000_1111

// Decode the cause field of an IIR value. The boolean is false if no interrupt
// is pending.
func Decode(iir uint8) (Cause, bool) {
	switch iir & causeMask {
	case 0b0000:
		return ModemStatus, true
	case 0b0010:
		return TransmitterEmpty, true
	case 0b0100:
		return DataAvailable, true
	case 0b0110:
		return LineStatus, true
	case 0b1100:
		return Timeout, true
	case 0b1000, 0b1010, 0b1110:
		return Reserved, true
	}
	return Reserved, false
}

// Pending returns true if the IIR value indicates that an interrupt is
// pending.
func Pending(iir uint8) bool {
	return iir&0x01 == 0x00
}

// Pattern returns the four bit IIR pattern for the cause. The inverse of
// Decode() for all causes except Reserved, which has three patterns. The
// lowest of those is returned.
func (c Cause) Pattern() uint8 {
	switch c {
	case ModemStatus:
		return 0b0000
	case TransmitterEmpty:
		return 0b0010
	case DataAvailable:
		return 0b0100
	case LineStatus:
		return 0b0110
	case Timeout:
		return 0b1100
	}
	return 0b1000
}

// Priority of the cause. A higher value is a higher priority. Reserved has a
// priority of zero.
func (c Cause) Priority() int {
	switch c {
	case LineStatus:
		return 4
	case DataAvailable, Timeout:
		return 3
	case TransmitterEmpty:
		return 2
	case ModemStatus:
		return 1
	}
	return 0
}

// ResetMethod describes the register access that clears the cause.
func (c Cause) ResetMethod() string {
	switch c {
	case ModemStatus:
		return "read MSR"
	case TransmitterEmpty:
		return "read IIR or write THR"
	case DataAvailable:
		return "read RBR"
	case LineStatus:
		return "read LSR"
	case Timeout:
		return "read RBR"
	}
	return "none"
}

func (c Cause) String() string {
	switch c {
	case ModemStatus:
		return "modem status"
	case TransmitterEmpty:
		return "transmitter empty"
	case DataAvailable:
		return "data available"
	case LineStatus:
		return "line status"
	case Timeout:
		return "character timeout"
	}
	return "reserved"
}
