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

// Package mmio is the lowest layer of the UART model: byte-granularity access
// to a block of memory-mapped registers.
//
// The Bus interface is the capability handed to every other package. It
// offers read, write and modify at fixed offsets from the start of a register
// block. Nothing above this package knows whether the registers are real
// hardware, a plain block of memory or a simulated device.
//
// A Source maps a base address to a Bus. The UART handle in the uart package
// holds a Source and a base address rather than a Bus directly, so that it
// can be rebound to another base address without knowing how addresses are
// turned into registers.
//
// Physical is the only Source that touches real memory. It converts the base
// address to a pointer with the unsafe package and so must only be used in
// firmware where the address is known to be mapped to the device. There is no
// volatile qualifier in Go, every access is made through a fresh pointer
// dereference in a function that is not inlined, which prevents the compiler
// from caching or eliding the access.
//
// Block is a plain eight byte register block with access counters. It has no
// side effects and is useful for testing the encoding and decoding of
// register values in isolation.
package mmio
