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

// Block is a plain register block with no side effects. Every read returns
// the last value written to the same offset. Reads and writes are counted per
// offset.
//
// Block implements both the Bus and Source interfaces. As a Source it ignores
// the base address and always maps to itself.
type Block struct {
	Registers [NumRegisters]uint8
	Reads     [NumRegisters]int
	Writes    [NumRegisters]int
}

// Map implements the Source interface.
func (blk *Block) Map(_ uintptr) Bus {
	return blk
}

// Read implements the Bus interface.
func (blk *Block) Read(offset uint8) uint8 {
	offset %= NumRegisters
	blk.Reads[offset]++
	return blk.Registers[offset]
}

// Write implements the Bus interface.
func (blk *Block) Write(offset uint8, data uint8) {
	offset %= NumRegisters
	blk.Writes[offset]++
	blk.Registers[offset] = data
}

// Modify implements the Bus interface.
func (blk *Block) Modify(offset uint8, f func(uint8) uint8) {
	modify(blk, offset, f)
}

// ResetCounts sets all access counters to zero. Register values are not
// changed.
func (blk *Block) ResetCounts() {
	blk.Reads = [NumRegisters]int{}
	blk.Writes = [NumRegisters]int{}
}
