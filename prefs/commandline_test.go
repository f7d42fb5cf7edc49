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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/uart8250/prefs"
	"github.com/jetsetilly/uart8250/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("uart.baud::9600")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "uart.baud::9600")

	// additional space is trimmed
	prefs.PushCommandLineStack("   uart.baud:: 9600 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "uart.baud::9600")

	// the remaining string is sorted by key
	prefs.PushCommandLineStack("uart.clock::1843200; uart.baud::9600")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "uart.baud::9600; uart.clock::1843200")

	// invalid prefs string
	prefs.PushCommandLineStack("uart.baud")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// partially invalid prefs string
	prefs.PushCommandLineStack("uart.baud;uart.clock::1843200")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "uart.clock::1843200")

	// values are consumed when they are read
	prefs.PushCommandLineStack("uart.baud::9600;uart.port")
	ok, v := prefs.GetCommandLinePref("uart.baud")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "9600")
	ok, _ = prefs.GetCommandLinePref("uart.port")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top group is visible
	ok, _ := prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
