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

// the FIFO size when FIFOs are enabled. with FIFOs disabled the receive
// buffer holds a single byte
const fifoSize = 16

// receive FIFO. a simple ring buffer with a variable capacity
type fifo struct {
	data  [fifoSize]uint8
	head  int
	count int
	limit int
}

func (f *fifo) clear() {
	f.head = 0
	f.count = 0
}

func (f *fifo) full() bool {
	return f.count >= f.limit
}

func (f *fifo) push(v uint8) bool {
	if f.full() {
		return false
	}
	f.data[(f.head+f.count)%fifoSize] = v
	f.count++
	return true
}

func (f *fifo) pop() (uint8, bool) {
	if f.count == 0 {
		return 0, false
	}
	v := f.data[f.head]
	f.head = (f.head + 1) % fifoSize
	f.count--
	return v, true
}
