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

package linecontrol

// Sentinel error patterns. Use with curated.Is() and curated.Has().
const (
	InvalidFieldValue  = "linecontrol: invalid field value: %s %v"
	UnrecognisedParity = "linecontrol: unrecognised parity pattern: %03b"
	InvalidConfig      = "linecontrol: invalid line configuration: %s"
)
