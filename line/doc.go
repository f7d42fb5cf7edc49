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

// Package line connects a simulated 16550 to a serial port on the host.
//
// Bytes transmitted by the simulated device are written to the host port and
// bytes read from the host port are injected into the device's receive FIFO.
// When the program running against the device changes the line control
// register or the divisor latch, the new configuration is applied to the
// host port with ModeOf(). The modem status lines of the host port are
// mirrored into the MSR of the device and the DTR and RTS outputs of the
// device are mirrored to the host port.
//
// The host port is anything that satisfies the Port interface. The Port
// returned by go.bug.st/serial does.
package line
