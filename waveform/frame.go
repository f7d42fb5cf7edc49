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

// Package waveform describes the line level of a serial character frame and
// renders it as an image.
package waveform

import (
	"github.com/jetsetilly/uart8250/hardware/uart/linecontrol"
)

// Kind is the role of a bit in a character frame.
type Kind int

// List of valid Kind values.
const (
	Start Kind = iota
	Data
	Parity
	Stop
)

// Bit is one element of a frame. Width is measured in bit times and is one
// for every bit except the half bit at the end of a 1.5 stop bit frame.
type Bit struct {
	Kind  Kind
	Level bool
	Width float64

	// the index of a data bit. zero is the least significant bit
	Index int
}

// Label returns a short label for the bit.
func (b Bit) Label() string {
	switch b.Kind {
	case Start:
		return "S"
	case Data:
		return string(rune('0' + b.Index))
	case Parity:
		return "P"
	}
	return "T"
}

// Frame expands the byte into the sequence of line levels that a UART with
// the configuration would transmit. Level true is the mark (idle) state.
//
// Only the lowest WordLength bits of the byte are sent. Data bits are sent
// least significant bit first.
func Frame(cfg linecontrol.Config, b uint8) ([]Bit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := make([]Bit, 0, 12)
	f = append(f, Bit{Kind: Start, Level: false, Width: 1})

	ones := 0
	for i := 0; i < cfg.WordLength; i++ {
		l := b&(1<<i) != 0
		if l {
			ones++
		}
		f = append(f, Bit{Kind: Data, Level: l, Width: 1, Index: i})
	}

	switch cfg.Parity {
	case linecontrol.ParityOdd:
		f = append(f, Bit{Kind: Parity, Level: ones%2 == 0, Width: 1})
	case linecontrol.ParityEven:
		f = append(f, Bit{Kind: Parity, Level: ones%2 == 1, Width: 1})
	case linecontrol.ParityMark:
		f = append(f, Bit{Kind: Parity, Level: true, Width: 1})
	case linecontrol.ParitySpace:
		f = append(f, Bit{Kind: Parity, Level: false, Width: 1})
	}

	f = append(f, Bit{Kind: Stop, Level: true, Width: 1})
	if cfg.StopBits == 2 {
		if cfg.WordLength == 5 {
			f = append(f, Bit{Kind: Stop, Level: true, Width: 0.5})
		} else {
			f = append(f, Bit{Kind: Stop, Level: true, Width: 1})
		}
	}

	return f, nil
}

// Duration returns the width of the frame in bit times.
func Duration(f []Bit) float64 {
	var d float64
	for _, b := range f {
		d += b.Width
	}
	return d
}
