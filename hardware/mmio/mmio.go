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

// NumRegisters is the number of byte-wide registers in an 8250/16550 register
// block.
const NumRegisters = 8

// Bus is the capability to access a block of byte-wide registers.
//
// Every access to a real register may have side effects. For example, reading
// the interrupt identification register can clear a pending interrupt and
// reading the receive buffer removes a byte from the FIFO. Implementations
// must therefore perform exactly one access per call and callers must not
// assume that any access is idempotent.
type Bus interface {
	// Read the register at offset
	Read(offset uint8) uint8

	// Write data to the register at offset
	Write(offset uint8, data uint8)

	// Modify reads the register at offset, passes the value to the function
	// and writes the result back. This is two accesses and is not atomic.
	Modify(offset uint8, f func(uint8) uint8)
}

// Source maps a base address to a register block.
type Source interface {
	Map(base uintptr) Bus
}

// modify is the read-then-write sequence shared by Bus implementations that
// have no special support for read-modify-write.
func modify(bus Bus, offset uint8, f func(uint8) uint8) {
	bus.Write(offset, f(bus.Read(offset)))
}
