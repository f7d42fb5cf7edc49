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

package linecontrol

import (
	"fmt"

	"github.com/jetsetilly/uart8250/curated"
)

// Bit masks for the fields of the line control register.
const (
	MaskDLAB       uint8 = 0b1000_0000
	MaskBreak      uint8 = 0b0100_0000
	MaskParity     uint8 = 0b0011_1000
	MaskStopBits   uint8 = 0b0000_0100
	MaskWordLength uint8 = 0b0000_0011

	parityShift = 3
	stopShift   = 2
)

// Parity is the value of the three bit parity field.
type Parity uint8

// List of valid Parity values. The underlying value is the bit pattern stored
// in bits 5 to 3 of the register.
const (
	ParityNone  Parity = 0b000
	ParityOdd   Parity = 0b001
	ParityEven  Parity = 0b011
	ParityMark  Parity = 0b101
	ParitySpace Parity = 0b111
)

// Valid returns true if the parity value is one of the five defined values.
func (p Parity) Valid() bool {
	switch p {
	case ParityNone, ParityOdd, ParityEven, ParityMark, ParitySpace:
		return true
	}
	return false
}

func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "none"
	case ParityOdd:
		return "odd"
	case ParityEven:
		return "even"
	case ParityMark:
		return "mark"
	case ParitySpace:
		return "space"
	}
	return "unrecognised"
}

// Letter returns the single letter used for the parity in the conventional
// "8N1" notation. Returns '?' for an invalid parity value.
func (p Parity) Letter() byte {
	switch p {
	case ParityNone:
		return 'N'
	case ParityOdd:
		return 'O'
	case ParityEven:
		return 'E'
	case ParityMark:
		return 'M'
	case ParitySpace:
		return 'S'
	}
	return '?'
}

// ValidateParity returns an InvalidFieldValue error if the parity value is not
// one of the five defined values.
func ValidateParity(p Parity) error {
	if !p.Valid() {
		return curated.Errorf(InvalidFieldValue, "parity", fmt.Sprintf("%03b", uint8(p)))
	}
	return nil
}

// ValidateStopBits returns an InvalidFieldValue error if the number of stop
// bits is not one or two.
func ValidateStopBits(n int) error {
	if n != 1 && n != 2 {
		return curated.Errorf(InvalidFieldValue, "stop bits", n)
	}
	return nil
}

// ValidateWordLength returns an InvalidFieldValue error if the word length is
// not in the range five to eight.
func ValidateWordLength(n int) error {
	if n < 5 || n > 8 {
		return curated.Errorf(InvalidFieldValue, "word length", n)
	}
	return nil
}

// GetParity decodes the parity field of the register value. Returns an
// UnrecognisedParity error for the three reserved patterns.
func GetParity(lcr uint8) (Parity, error) {
	p := Parity((lcr & MaskParity) >> parityShift)
	if !p.Valid() {
		return p, curated.Errorf(UnrecognisedParity, uint8(p))
	}
	return p, nil
}

// SetParity returns the register value with the parity field replaced. All
// other bits are preserved.
func SetParity(lcr uint8, p Parity) (uint8, error) {
	if err := ValidateParity(p); err != nil {
		return lcr, err
	}
	return (lcr &^ MaskParity) | uint8(p)<<parityShift, nil
}

// GetStopBits decodes the stop bit field of the register value. The result is
// either 1 or 2.
func GetStopBits(lcr uint8) int {
	return int((lcr&MaskStopBits)>>stopShift) + 1
}

// SetStopBits returns the register value with the stop bit field replaced.
// All other bits are preserved.
func SetStopBits(lcr uint8, n int) (uint8, error) {
	if err := ValidateStopBits(n); err != nil {
		return lcr, err
	}
	return (lcr &^ MaskStopBits) | uint8(n-1)<<stopShift, nil
}

// GetWordLength decodes the word length field of the register value. The
// result is in the range five to eight.
func GetWordLength(lcr uint8) int {
	return int(lcr&MaskWordLength) + 5
}

// SetWordLength returns the register value with the word length field
// replaced. All other bits are preserved.
func SetWordLength(lcr uint8, n int) (uint8, error) {
	if err := ValidateWordLength(n); err != nil {
		return lcr, err
	}
	return (lcr &^ MaskWordLength) | uint8(n-5), nil
}

// GetDLAB returns the state of the divisor latch access bit.
func GetDLAB(lcr uint8) bool {
	return lcr&MaskDLAB == MaskDLAB
}

// SetDLAB returns the register value with the divisor latch access bit set or
// cleared.
func SetDLAB(lcr uint8, set bool) uint8 {
	if set {
		return lcr | MaskDLAB
	}
	return lcr &^ MaskDLAB
}

// GetBreak returns the state of the break enable bit.
func GetBreak(lcr uint8) bool {
	return lcr&MaskBreak == MaskBreak
}

// SetBreak returns the register value with the break enable bit set or
// cleared.
func SetBreak(lcr uint8, set bool) uint8 {
	if set {
		return lcr | MaskBreak
	}
	return lcr &^ MaskBreak
}
