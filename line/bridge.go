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

package line

import (
	"context"
	"io"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/jetsetilly/uart8250/curated"
	"github.com/jetsetilly/uart8250/hardware/ns16550"
	"github.com/jetsetilly/uart8250/hardware/uart/registers"
	"github.com/jetsetilly/uart8250/logger"
)

// Port is the part of a host serial port used by Bridge.
type Port interface {
	io.ReadWriteCloser
	SetMode(mode *serial.Mode) error
	SetReadTimeout(t time.Duration) error
	SetDTR(dtr bool) error
	SetRTS(rts bool) error
	GetModemStatusBits() (*serial.ModemStatusBits, error)
}

// the read timeout of the host port. a read that times out without data is
// treated as a character timeout by the device
const readTimeout = 50 * time.Millisecond

const logTag = "line"

// Bridge connects a simulated device to a host port.
type Bridge struct {
	dev   *ns16550.Device
	port  Port
	clock uint

	// the DTR and RTS outputs last sent to the port
	crit sync.Mutex
	dtr  bool
	rts  bool
	mode serial.Mode
}

// Open the named host serial port and connect it to the device. The port is
// opened with the device's current line configuration if it is valid and
// with the serial package defaults otherwise.
func Open(name string, dev *ns16550.Device, clock uint) (*Bridge, error) {
	return openWith(func(name string, mode *serial.Mode) (Port, error) {
		return serial.Open(name, mode)
	}, name, dev, clock)
}

// the port is closed if the bridge cannot be created
func openWith(open func(string, *serial.Mode) (Port, error), name string, dev *ns16550.Device, clock uint) (*Bridge, error) {
	lcr, div := dev.LineConfig()
	mode, err := ModeOf(lcr, div, clock)
	if err != nil {
		mode = &serial.Mode{}
	}

	port, err := open(name, mode)
	if err != nil {
		return nil, curated.Errorf(PortError, err)
	}

	br, err := NewBridge(dev, port, clock)
	if err != nil {
		_ = port.Close()
		return nil, err
	}

	return br, nil
}

// NewBridge connects the device to an already open port. The device's output
// is redirected to the port and the bridge is registered as the device's
// line change hook.
func NewBridge(dev *ns16550.Device, port Port, clock uint) (*Bridge, error) {
	br := &Bridge{
		dev:   dev,
		port:  port,
		clock: clock,
	}

	if err := port.SetReadTimeout(readTimeout); err != nil {
		return nil, curated.Errorf(PortError, err)
	}

	lcr, div := dev.LineConfig()
	br.apply(lcr, div)

	dev.SetOutput(br)
	dev.SetLineChangeHook(br.apply)

	return br, nil
}

// Write implements the io.Writer interface. Bytes are written to the host
// port.
func (br *Bridge) Write(p []byte) (int, error) {
	return br.port.Write(p)
}

// Mode returns the mode most recently applied to the host port.
func (br *Bridge) Mode() serial.Mode {
	br.crit.Lock()
	defer br.crit.Unlock()
	return br.mode
}

// apply the line configuration to the host port. an invalid configuration is
// normal while the guest is part way through programming the UART so errors
// are logged and the port is left unchanged
func (br *Bridge) apply(lcr uint8, div uint16) {
	mode, err := ModeOf(lcr, div, br.clock)
	if err != nil {
		logger.Log(logger.Allow, logTag, err)
		return
	}

	br.crit.Lock()
	defer br.crit.Unlock()

	if *mode == br.mode {
		return
	}

	if err := br.port.SetMode(mode); err != nil {
		logger.Log(logger.Allow, logTag, curated.Errorf(PortError, err))
		return
	}
	br.mode = *mode

	logger.Logf(logger.Allow, logTag, "mode changed: %s", ModeString(mode))
}

// Run pumps bytes from the host port into the device and keeps the modem
// lines in step until the context is cancelled or the port fails. Bytes from
// the device to the port are written as they are transmitted and do not need
// Run().
func (br *Bridge) Run(ctx context.Context) error {
	buf := make([]byte, 64)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := br.port.Read(buf)
		if err != nil {
			return curated.Errorf(PortError, err)
		}

		if n > 0 {
			if m := br.dev.Inject(buf[:n]...); m < n {
				logger.Logf(logger.Allow, logTag, "receive FIFO overrun: %d bytes lost", n-m)
			}
		} else {
			br.dev.CharacterTimeout()
		}

		if err := br.syncModem(); err != nil {
			return err
		}
	}
}

// copy the host port's modem status lines into the device and the device's
// outputs to the host port
func (br *Bridge) syncModem() error {
	bits, err := br.port.GetModemStatusBits()
	if err != nil {
		return curated.Errorf(PortError, err)
	}

	var msr registers.MSR
	if bits.CTS {
		msr |= registers.CTS
	}
	if bits.DSR {
		msr |= registers.DSR
	}
	if bits.RI {
		msr |= registers.RI
	}
	if bits.DCD {
		msr |= registers.DCD
	}
	br.dev.SetModemInputs(msr)

	dtr, rts := br.dev.ModemOutputs()

	br.crit.Lock()
	defer br.crit.Unlock()

	if dtr != br.dtr {
		if err := br.port.SetDTR(dtr); err != nil {
			return curated.Errorf(PortError, err)
		}
		br.dtr = dtr
	}
	if rts != br.rts {
		if err := br.port.SetRTS(rts); err != nil {
			return curated.Errorf(PortError, err)
		}
		br.rts = rts
	}

	return nil
}

// Close disconnects the device from the host port and closes the port.
func (br *Bridge) Close() error {
	br.dev.SetLineChangeHook(nil)
	br.dev.SetOutput(nil)
	if err := br.port.Close(); err != nil {
		return curated.Errorf(PortError, err)
	}
	return nil
}
