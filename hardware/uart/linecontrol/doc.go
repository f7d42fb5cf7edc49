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

// Package linecontrol encodes and decodes the fields of the line control
// register (LCR).
//
//	Bit  7     divisor latch access bit (DLAB)
//	Bit  6     break enable
//	Bits 5-3   parity
//	Bit  2     stop bits
//	Bits 1-0   word length
//
// The encoding functions take the current value of the register and return a
// new value with only the one field changed. Values outside the legal range
// of a field are a programming error and are rejected with an error created
// with the InvalidFieldValue pattern. The register value is never clamped.
//
// Of the eight patterns of the parity field only five are defined. Decoding
// one of the other three returns an error created with the UnrecognisedParity
// pattern. The encoding functions never produce those patterns.
//
// The stop bit field distinguishes only between one stop bit and "more than
// one". The hardware sends 1.5 stop bits if the word length is five bits and
// two stop bits otherwise. This package represents "more than one" as the
// integer two, in the same way as the register itself, and leaves any
// interpretation to the caller.
package linecontrol
