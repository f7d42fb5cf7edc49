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

// Package prefs holds persistent preference values. A preference is one of
// the Bool, String or Int types. Preferences are grouped by adding them to a
// Disk, which saves them to and loads them from a file.
//
// Values can be overridden for one run of the program by pushing a group of
// key/value pairs onto the command line stack:
//
//	prefs.PushCommandLineStack("uart.clock::24000000; uart.baud::9600")
//
// A Disk takes values from the top group of the stack when it loads. Each
// value is used once.
package prefs
