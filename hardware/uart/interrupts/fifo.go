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

// FIFOState is the state of the FIFOs as reported by bits 7 and 6 of the IIR.
type FIFOState int

// List of valid FIFOState values.
const (
	NoFIFO FIFOState = iota
	ReservedFIFO
	EnabledNotFunctioning
	Enabled
)

// DecodeFIFO returns the FIFO state field of an IIR value.
func DecodeFIFO(iir uint8) FIFOState {
	return FIFOState(iir >> 6)
}

// Bits returns the FIFO state in the position it occupies in the IIR.
func (s FIFOState) Bits() uint8 {
	return uint8(s&0b11) << 6
}

// Has64ByteFIFO returns true if bit 5 of the IIR value is set.
func Has64ByteFIFO(iir uint8) bool {
	return iir&0x20 == 0x20
}

func (s FIFOState) String() string {
	switch s {
	case NoFIFO:
		return "no FIFO"
	case ReservedFIFO:
		return "reserved"
	case EnabledNotFunctioning:
		return "enabled but not functioning"
	case Enabled:
		return "enabled"
	}
	return "unknown"
}
