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

import "unsafe"

// Physical is a Source that treats the base address as the address of the
// first register in memory. Registers are spaced Stride bytes apart. A zero
// Stride is the same as a Stride of one, which is the layout of a PC style
// 16550. Many SoCs space the registers four bytes apart.
type Physical struct {
	Stride uintptr
}

// Map implements the Source interface.
func (p Physical) Map(base uintptr) Bus {
	stride := p.Stride
	if stride == 0 {
		stride = 1
	}
	return &physicalBus{base: base, stride: stride}
}

type physicalBus struct {
	base   uintptr
	stride uintptr
}

func (b *physicalBus) addr(offset uint8) uintptr {
	return b.base + uintptr(offset)*b.stride
}

// Read implements the Bus interface.
func (b *physicalBus) Read(offset uint8) uint8 {
	return load(b.addr(offset))
}

// Write implements the Bus interface.
func (b *physicalBus) Write(offset uint8, data uint8) {
	store(b.addr(offset), data)
}

// Modify implements the Bus interface.
func (b *physicalBus) Modify(offset uint8, f func(uint8) uint8) {
	modify(b, offset, f)
}

//go:noinline
func load(addr uintptr) uint8 {
	return *(*uint8)(unsafe.Pointer(addr))
}

//go:noinline
func store(addr uintptr, data uint8) {
	*(*uint8)(unsafe.Pointer(addr)) = data
}
