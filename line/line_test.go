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

package line_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"go.bug.st/serial"

	"github.com/jetsetilly/uart8250/curated"
	"github.com/jetsetilly/uart8250/hardware/mmio"
	"github.com/jetsetilly/uart8250/hardware/ns16550"
	"github.com/jetsetilly/uart8250/hardware/uart"
	"github.com/jetsetilly/uart8250/hardware/uart/linecontrol"
	"github.com/jetsetilly/uart8250/hardware/uart/registers"
	"github.com/jetsetilly/uart8250/line"
	"github.com/jetsetilly/uart8250/test"
)

func TestModeOf(t *testing.T) {
	mode, err := line.ModeOf(0x03, 1, 1843200)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *mode, serial.Mode{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	test.ExpectEquality(t, line.ModeString(mode), "115200 8N1")

	// five bit word with the stop bit field set is 1.5 stop bits
	mode, err = line.ModeOf(0x1c, 12, 1843200)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mode.StopBits, serial.OnePointFiveStopBits)
	test.ExpectEquality(t, mode.Parity, serial.EvenParity)
	test.ExpectEquality(t, line.ModeString(mode), "9600 5E1.5")

	mode, err = line.ModeOf(0x3f, 12, 1843200)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, line.ModeString(mode), "9600 8S2")

	_, err = line.ModeOf(0x03, 0, 1843200)
	test.ExpectSuccess(t, curated.Is(err, line.InvalidMode))

	_, err = line.ModeOf(0x13, 1, 1843200)
	test.ExpectSuccess(t, curated.Is(err, line.InvalidMode))
	test.ExpectSuccess(t, curated.Has(err, linecontrol.UnrecognisedParity))
}

type fakePort struct {
	in      [][]byte
	out     test.CompareWriter
	mode    *serial.Mode
	bauds   []int
	timeout time.Duration
	failSet error
	dtr     bool
	rts     bool
	status  serial.ModemStatusBits
	closed  bool
}

func (p *fakePort) Read(b []byte) (int, error) {
	if len(p.in) == 0 {
		return 0, io.EOF
	}
	n := copy(b, p.in[0])
	p.in = p.in[1:]
	return n, nil
}

func (p *fakePort) Write(b []byte) (int, error) {
	return p.out.Write(b)
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func (p *fakePort) SetMode(mode *serial.Mode) error {
	p.mode = mode
	p.bauds = append(p.bauds, mode.BaudRate)
	return nil
}

func (p *fakePort) SetReadTimeout(t time.Duration) error {
	if p.failSet != nil {
		return p.failSet
	}
	p.timeout = t
	return nil
}

func (p *fakePort) SetDTR(dtr bool) error {
	p.dtr = dtr
	return nil
}

func (p *fakePort) SetRTS(rts bool) error {
	p.rts = rts
	return nil
}

func (p *fakePort) GetModemStatusBits() (*serial.ModemStatusBits, error) {
	s := p.status
	return &s, nil
}

type singleDevice struct {
	dev *ns16550.Device
}

func (s singleDevice) Map(_ uintptr) mmio.Bus {
	return s.dev
}

func TestBridge(t *testing.T) {
	dev := ns16550.NewDevice("uart0", nil)
	port := &fakePort{}

	br, err := line.NewBridge(dev, port, 1843200)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, port.timeout, 0)

	// the device has not been programmed yet so the port is unchanged
	test.ExpectSuccess(t, port.mode == nil)

	u := uart.New(singleDevice{dev}, 0)
	u.Init(1843200, 115200)
	test.DemandSuccess(t, port.mode != nil)
	test.ExpectEquality(t, line.ModeString(port.mode), "115200 8N1")
	test.ExpectEquality(t, br.Mode(), *port.mode)

	test.ExpectSuccess(t, u.SetParity(linecontrol.ParityOdd))
	test.ExpectEquality(t, line.ModeString(port.mode), "115200 8O1")

	for _, b := range []byte("ok") {
		u.Transmit(b)
	}
	test.ExpectSuccess(t, port.out.Compare("ok"))

	// two bytes followed by an idle read and then the end of the port
	port.in = [][]byte{[]byte("hi"), {}}
	port.status = serial.ModemStatusBits{CTS: true, DCD: true}
	u.SetModemControl(registers.DTR)
	u.SetFIFOControl(registers.EnableFIFO | registers.Trigger8)
	u.EnableInterrupts(registers.MSI)

	err = br.Run(context.Background())
	test.ExpectSuccess(t, curated.Is(err, line.PortError))

	test.ExpectEquality(t, dev.Buffered(), 2)
	test.ExpectSuccess(t, port.dtr)
	test.ExpectFailure(t, port.rts)

	// the idle read raised the character timeout
	c, ok := u.InterruptCause()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.String(), "character timeout")

	v, ok := u.Receive()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 'h')

	msr := u.ModemStatus()
	test.ExpectSuccess(t, msr.Contains(registers.CTS|registers.DCD|registers.DCTS|registers.DDCD))

	test.ExpectSuccess(t, br.Close())
	test.ExpectSuccess(t, port.closed)

	// the device no longer writes to the port
	u.Transmit('!')
	test.ExpectSuccess(t, port.out.Compare("ok"))
}

func TestBridgeCancel(t *testing.T) {
	dev := ns16550.NewDevice("uart0", nil)
	port := &fakePort{}

	br, err := line.NewBridge(dev, port, 1843200)
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	test.ExpectSuccess(t, br.Run(ctx))
}

func TestBridgeDivisorChange(t *testing.T) {
	dev := ns16550.NewDevice("uart0", nil)
	port := &fakePort{}

	_, err := line.NewBridge(dev, port, 1843200)
	test.DemandSuccess(t, err)

	u := uart.New(singleDevice{dev}, 0)
	u.Init(1843200, 115200)
	test.ExpectEquality(t, line.ModeString(port.mode), "115200 8N1")

	// the divisor for 300 baud is 0x0180. the port must never see the
	// intermediate divisor of 0x0080 (900 baud) left by the DLL write
	port.bauds = port.bauds[:0]
	u.SetDivisor(1843200, 300)
	test.DemandEquality(t, len(port.bauds), 1)
	test.ExpectEquality(t, port.bauds[0], 300)

	// and in the other direction the intermediate divisor is 0x0101
	port.bauds = port.bauds[:0]
	u.SetDivisor(1843200, 115200)
	test.DemandEquality(t, len(port.bauds), 1)
	test.ExpectEquality(t, port.bauds[0], 115200)
}

func TestOpenFailure(t *testing.T) {
	dev := ns16550.NewDevice("uart0", nil)
	port := &fakePort{failSet: errors.New("unsupported")}

	var opened string
	open := func(name string, _ *serial.Mode) (line.Port, error) {
		opened = name
		return port, nil
	}

	br, err := line.OpenWith(open, "/dev/ttyS9", dev, 1843200)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, line.PortError))
	test.ExpectSuccess(t, br == nil)
	test.ExpectEquality(t, opened, "/dev/ttyS9")

	// the port that was opened has been closed again
	test.ExpectSuccess(t, port.closed)

	port = &fakePort{}
	br, err = line.OpenWith(open, "/dev/ttyS9", dev, 1843200)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, port.closed)
	test.ExpectSuccess(t, br.Close())
	test.ExpectSuccess(t, port.closed)
}
