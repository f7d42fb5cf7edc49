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

package easyterm

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt      = 3  // end-of-text character
	KeyBreak          = 2  // ctrl-b
	KeyStatus         = 20 // ctrl-t
	KeyTab            = 9
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeySuspend        = 26 // substitute character
	KeyEsc            = 27
	KeyBackspace      = 127
)

// Ctrl returns the key code produced by holding the control key with the
// letter c.
func Ctrl(c byte) byte {
	return c & 0x1f
}
