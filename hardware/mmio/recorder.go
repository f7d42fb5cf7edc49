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

package mmio

import "fmt"

// Access is a single register access recorded by a Recorder.
type Access struct {
	Write  bool
	Offset uint8
	Data   uint8
}

func (a Access) String() string {
	if a.Write {
		return fmt.Sprintf("W%d=%02x", a.Offset, a.Data)
	}
	return fmt.Sprintf("R%d=%02x", a.Offset, a.Data)
}

// Recorder wraps a Bus and records every access in the order it was made.
type Recorder struct {
	Bus      Bus
	Accesses []Access
}

// Read implements the Bus interface.
func (rec *Recorder) Read(offset uint8) uint8 {
	d := rec.Bus.Read(offset)
	rec.Accesses = append(rec.Accesses, Access{Offset: offset, Data: d})
	return d
}

// Write implements the Bus interface.
func (rec *Recorder) Write(offset uint8, data uint8) {
	rec.Bus.Write(offset, data)
	rec.Accesses = append(rec.Accesses, Access{Write: true, Offset: offset, Data: data})
}

// Modify implements the Bus interface. The read and the write are recorded
// as two accesses.
func (rec *Recorder) Modify(offset uint8, f func(uint8) uint8) {
	modify(rec, offset, f)
}

// Map implements the Source interface by wrapping the Bus returned by the
// Source that the Recorder was created with. Only valid if the Bus field is
// also a Source.
func (rec *Recorder) Map(base uintptr) Bus {
	if src, ok := rec.Bus.(Source); ok {
		rec.Bus = src.Map(base)
	}
	return rec
}

// Writes returns only the recorded write accesses.
func (rec *Recorder) Writes() []Access {
	var w []Access
	for _, a := range rec.Accesses {
		if a.Write {
			w = append(w, a)
		}
	}
	return w
}

// Clear the recorded accesses.
func (rec *Recorder) Clear() {
	rec.Accesses = rec.Accesses[:0]
}
