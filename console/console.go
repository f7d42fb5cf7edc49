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

package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/uart8250/console/easyterm"
	"github.com/jetsetilly/uart8250/curated"
	"github.com/jetsetilly/uart8250/hardware/ns16550"
	"github.com/jetsetilly/uart8250/hardware/uart"
	"github.com/jetsetilly/uart8250/hardware/uart/registers"
	"github.com/jetsetilly/uart8250/logger"
)

// ConsoleError is the pattern for errors returned by Run().
const ConsoleError = "console: %v"

// Console is the glue between a terminal and a simulated device.
type Console struct {
	board *ns16550.Board
	dev   *ns16550.Device
	uart  *uart.UART
	out   io.Writer

	// whether the console should stop on an interrupt key
	quit bool
}

// NewConsole creates a board with a single device at the base address and
// initialises it through the facade.
func NewConsole(out io.Writer, clock uint, baud uint, base uintptr) (*Console, error) {
	con := &Console{
		board: ns16550.NewBoard(),
		out:   out,
	}

	con.dev = ns16550.NewDevice("console", nil)
	if err := con.board.Attach(base, con.dev); err != nil {
		return nil, curated.Errorf(ConsoleError, err)
	}

	con.uart = uart.New(con.board, base)
	con.uart.Init(clock, baud)
	con.uart.SetModemControl(registers.DTR | registers.RTS | registers.LOOP)

	logger.Logf(logger.Allow, "console", "%s ready: %s", con.uart, con.dev)

	return con, nil
}

// Board returns the board the console device is attached to.
func (con *Console) Board() *ns16550.Board {
	return con.board
}

// Device returns the simulated device.
func (con *Console) Device() *ns16550.Device {
	return con.dev
}

// UART returns the facade used by the console.
func (con *Console) UART() *uart.UART {
	return con.uart
}

// Run reads keys from the input until the interrupt key is pressed, the
// input is exhausted or the context is cancelled.
//
// Reads happen on a separate goroutine. After Run returns that goroutine may
// remain blocked in Read until the next byte arrives or the input is closed.
// The byte it then reads is discarded.
func (con *Console) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	con.quit = false

	keys := make(chan uint8)
	errs := make(chan error, 1)

	go func() {
		b := make([]byte, 1)
		for {
			n, err := in.Read(b)
			if err != nil {
				errs <- err
				return
			}
			if n == 0 {
				continue
			}
			select {
			case keys <- b[0]:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errs:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf(ConsoleError, err)
		case k := <-keys:
			if err := con.key(k); err != nil {
				return err
			}
			if con.quit {
				return nil
			}
		}
	}
}

func (con *Console) key(k uint8) error {
	switch k {
	case easyterm.KeyInterrupt:
		con.quit = true
		return nil
	case easyterm.KeyStatus:
		return con.status()
	case easyterm.KeyBreak:
		con.dev.InjectErrors(registers.BI)
		return con.status()
	case easyterm.KeySuspend:
		easyterm.SuspendProcess()
		return nil
	}

	con.uart.Transmit(k)
	return con.drain()
}

// drain copies everything in the receiver to the output.
func (con *Console) drain() error {
	for {
		b, ok := con.uart.Receive()
		if !ok {
			return nil
		}
		if b == easyterm.KeyCarriageReturn {
			b = easyterm.KeyLineFeed
		}
		if _, err := con.out.Write([]byte{b}); err != nil {
			return curated.Errorf(ConsoleError, err)
		}
	}
}

func (con *Console) status() error {
	lsr := con.uart.LineStatus()

	cfg, err := con.uart.LineConfig()
	if err != nil {
		return curated.Errorf(ConsoleError, err)
	}

	cause := "none"
	if c, ok := con.uart.InterruptCause(); ok {
		cause = c.String()
	}

	_, err = fmt.Fprintf(con.out, "\n[%s %s div=%d lsr=%s msr=%s int=%s]\n",
		con.uart, cfg, con.uart.Divisor(), lsr, con.uart.ModemStatus(), cause)
	if err != nil {
		return curated.Errorf(ConsoleError, err)
	}
	return nil
}
