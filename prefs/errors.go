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

package prefs

// Sentinel error patterns. Use with curated.Is() and curated.Has().
const (
	ConversionError = "prefs: cannot convert %T to %s"
	IllegalKey      = "prefs: illegal character [%c] in key [%s]"
	DiskError       = "prefs: disk: %v"
)
