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

package interrupts_test

import (
	"testing"

	"github.com/jetsetilly/uart8250/hardware/uart/interrupts"
	"github.com/jetsetilly/uart8250/test"
)

func TestDecodeAllPatterns(t *testing.T) {
	type result struct {
		cause   interrupts.Cause
		pending bool
	}

	expected := map[uint8]result{
		0b0000: {interrupts.ModemStatus, true},
		0b0010: {interrupts.TransmitterEmpty, true},
		0b0100: {interrupts.DataAvailable, true},
		0b0110: {interrupts.LineStatus, true},
		0b1000: {interrupts.Reserved, true},
		0b1010: {interrupts.Reserved, true},
		0b1100: {interrupts.Timeout, true},
		0b1110: {interrupts.Reserved, true},
	}

	for p := uint8(0); p < 16; p++ {
		c, ok := interrupts.Decode(p)
		test.ExpectEquality(t, interrupts.Pending(p), ok, p)

		if p&0x01 == 0x01 {
			test.ExpectFailure(t, ok, p)
			continue
		}

		e := expected[p]
		test.ExpectSuccess(t, ok, p)
		test.ExpectEquality(t, c, e.cause, p)
	}
}

func TestUpperBitsIgnored(t *testing.T) {
	// FIFO enabled and 64 byte flag set do not affect the cause
	c, ok := interrupts.Decode(0xe4)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, interrupts.DataAvailable)

	_, ok = interrupts.Decode(0xc1)
	test.ExpectFailure(t, ok)
}

func TestPattern(t *testing.T) {
	for _, c := range []interrupts.Cause{
		interrupts.ModemStatus,
		interrupts.TransmitterEmpty,
		interrupts.DataAvailable,
		interrupts.LineStatus,
		interrupts.Timeout,
		interrupts.Reserved,
	} {
		d, ok := interrupts.Decode(c.Pattern())
		test.ExpectSuccess(t, ok, c)
		test.ExpectEquality(t, d, c)
	}
}

func TestPriority(t *testing.T) {
	test.ExpectSuccess(t, interrupts.LineStatus.Priority() > interrupts.DataAvailable.Priority())
	test.ExpectEquality(t, interrupts.DataAvailable.Priority(), interrupts.Timeout.Priority())
	test.ExpectSuccess(t, interrupts.Timeout.Priority() > interrupts.TransmitterEmpty.Priority())
	test.ExpectSuccess(t, interrupts.TransmitterEmpty.Priority() > interrupts.ModemStatus.Priority())
	test.ExpectSuccess(t, interrupts.ModemStatus.Priority() > interrupts.Reserved.Priority())
}

func TestResetMethod(t *testing.T) {
	test.ExpectEquality(t, interrupts.TransmitterEmpty.ResetMethod(), "read IIR or write THR")
	test.ExpectEquality(t, interrupts.Timeout.ResetMethod(), interrupts.DataAvailable.ResetMethod())
	test.ExpectEquality(t, interrupts.Reserved.ResetMethod(), "none")
}

func TestFIFO(t *testing.T) {
	test.ExpectEquality(t, interrupts.DecodeFIFO(0x01), interrupts.NoFIFO)
	test.ExpectEquality(t, interrupts.DecodeFIFO(0x41), interrupts.ReservedFIFO)
	test.ExpectEquality(t, interrupts.DecodeFIFO(0x81), interrupts.EnabledNotFunctioning)
	test.ExpectEquality(t, interrupts.DecodeFIFO(0xc1), interrupts.Enabled)

	test.ExpectFailure(t, interrupts.Has64ByteFIFO(0xc1))
	test.ExpectSuccess(t, interrupts.Has64ByteFIFO(0xe1))

	test.ExpectEquality(t, interrupts.Enabled.Bits(), 0xc0)
	test.ExpectEquality(t, interrupts.Enabled.String(), "enabled")
}
