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

// Package ns16550 is a behavioural model of the National Semiconductor 16550
// UART. The Device type sits behind the mmio.Bus interface so that the
// register layer in the hardware/uart packages can drive it exactly as it
// would drive the real chip.
//
// The model covers what is visible through the registers: DLAB aliasing of
// offsets 0 and 1, the receive FIFO (sixteen bytes when enabled, one byte
// otherwise) with overrun, loopback, modem status inputs and their delta
// bits, and the prioritised interrupt identification register, including
// the side effects of reading IIR, LSR, MSR and RBR.
//
// Transmission is instantaneous. A byte written to THR is passed immediately
// to the output io.Writer (or to the receive FIFO in loopback mode) and THRE
// is set again before the write returns. There is no model of bit timing.
// The character timeout is raised explicitly with CharacterTimeout().
//
// The Board type maps base addresses to devices and implements mmio.Source.
//
// Unlike the register layer, Device is safe for concurrent use. Every
// register access is serialised by a mutex. A Modify() through the Bus
// interface is still two separate accesses.
package ns16550
