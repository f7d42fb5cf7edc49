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

import (
	"sort"

	"github.com/jetsetilly/uart8250/curated"
	"github.com/jetsetilly/uart8250/hardware/mmio"
)

// Sentinel error patterns. Use with curated.Is() and curated.Has().
const (
	AddressInUse = "ns16550: address in use: %#x"
)

// Board maps base addresses to simulated devices. It implements the
// mmio.Source interface so that the register layer can be bound to a base
// address on the board in the same way as it would be bound to a physical
// address.
//
// Mapping an address with no device returns an open bus. Reads from the
// open bus return 0xff and writes are ignored.
type Board struct {
	devices map[uintptr]*Device
}

// NewBoard is the preferred method of initialisation for the Board type.
func NewBoard() *Board {
	return &Board{
		devices: make(map[uintptr]*Device),
	}
}

// Attach a device at the base address.
func (brd *Board) Attach(base uintptr, dev *Device) error {
	if _, ok := brd.devices[base]; ok {
		return curated.Errorf(AddressInUse, base)
	}
	brd.devices[base] = dev
	return nil
}

// Device returns the device attached at the base address.
func (brd *Board) Device(base uintptr) (*Device, bool) {
	dev, ok := brd.devices[base]
	return dev, ok
}

// Bases returns the base addresses of all attached devices in ascending
// order.
func (brd *Board) Bases() []uintptr {
	b := make([]uintptr, 0, len(brd.devices))
	for k := range brd.devices {
		b = append(b, k)
	}
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return b
}

// Map implements the mmio.Source interface.
func (brd *Board) Map(base uintptr) mmio.Bus {
	if dev, ok := brd.devices[base]; ok {
		return dev
	}
	return openBus{}
}

type openBus struct{}

func (openBus) Read(_ uint8) uint8 {
	return 0xff
}

func (openBus) Write(_ uint8, _ uint8) {
}

func (openBus) Modify(_ uint8, _ func(uint8) uint8) {
}
