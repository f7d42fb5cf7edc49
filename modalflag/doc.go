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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// sub-modes, each mode having its own set of flags.
//
// A mode is selected by the first argument that is not a flag. For example,
// the following command line selects the DIVISOR mode of the uart8250
// program with a clock flag given at the top level and two further
// arguments:
//
//	uart8250 -clock 1843200 DIVISOR 1843200 115200
//
// Modes are listed with AddSubModes() before the call to Parse(). The first
// mode in the list is the default mode and is selected if the first argument
// is not one of the listed modes. Mode names are not case sensitive.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CONSOLE", "DIVISOR", "DECODE")
//	clock := md.AddUint("clock", 1843200, "reference clock")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "DIVISOR":
//		md.NewMode()
//		...
//	}
//
// After a mode has been selected, NewMode() starts a new layer of flags and
// sub-modes for the arguments that follow it. The Path() function returns
// the modes encountered so far, separated by a forward slash.
//
// Help is printed to the Output writer when the -help flag is given. The
// help lists the flags of the current layer, the available sub-modes and any
// text given to AdditionalHelp().
package modalflag
