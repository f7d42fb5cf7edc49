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
	"fmt"

	"go.bug.st/serial"

	"github.com/jetsetilly/uart8250/curated"
	"github.com/jetsetilly/uart8250/hardware/uart/divisor"
	"github.com/jetsetilly/uart8250/hardware/uart/linecontrol"
)

// Sentinel error patterns. Use with curated.Is() and curated.Has().
const (
	InvalidMode = "line: invalid mode: %v"
	PortError   = "line: port: %v"
)

// ModeOf converts the line configuration of a UART to a serial.Mode suitable
// for a host serial port. The clock is the frequency of the UART's reference
// clock.
//
// A zero divisor is an error because there is no baud rate that it
// corresponds to. So is a reserved parity pattern in the LCR value.
func ModeOf(lcr uint8, div uint16, clock uint) (*serial.Mode, error) {
	baud := divisor.BaudRate(clock, div)
	if baud == 0 {
		return nil, curated.Errorf(InvalidMode, "zero divisor")
	}

	cfg, err := linecontrol.Decode(lcr)
	if err != nil {
		return nil, curated.Errorf(InvalidMode, err)
	}

	mode := &serial.Mode{
		BaudRate: int(baud),
		DataBits: cfg.WordLength,
	}

	switch cfg.Parity {
	case linecontrol.ParityNone:
		mode.Parity = serial.NoParity
	case linecontrol.ParityOdd:
		mode.Parity = serial.OddParity
	case linecontrol.ParityEven:
		mode.Parity = serial.EvenParity
	case linecontrol.ParityMark:
		mode.Parity = serial.MarkParity
	case linecontrol.ParitySpace:
		mode.Parity = serial.SpaceParity
	}

	switch {
	case cfg.StopBits == 1:
		mode.StopBits = serial.OneStopBit
	case cfg.WordLength == 5:
		mode.StopBits = serial.OnePointFiveStopBits
	default:
		mode.StopBits = serial.TwoStopBits
	}

	return mode, nil
}

// Ports returns the names of the serial ports on the host.
func Ports() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, curated.Errorf(PortError, err)
	}
	return ports, nil
}

// ModeString returns the mode in the conventional notation. For example,
// "115200 8N1".
func ModeString(mode *serial.Mode) string {
	p := "N"
	switch mode.Parity {
	case serial.OddParity:
		p = "O"
	case serial.EvenParity:
		p = "E"
	case serial.MarkParity:
		p = "M"
	case serial.SpaceParity:
		p = "S"
	}

	s := "1"
	switch mode.StopBits {
	case serial.OnePointFiveStopBits:
		s = "1.5"
	case serial.TwoStopBits:
		s = "2"
	}

	return fmt.Sprintf("%d %d%s%s", mode.BaudRate, mode.DataBits, p, s)
}
