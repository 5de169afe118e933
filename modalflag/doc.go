// This file is part of uBot.
//
// uBot is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// uBot is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with uBot.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient way of handling sub-modes on the command
// line:
//
//	ubot RUN -log
//	ubot PLAY "F(R*4)"
//	ubot DISASM "F(R*4)"
//
// A Modes instance is created with NewArgs() and the available sub-modes are
// added with AddSubModes(). The first sub-mode in the list is the default and
// is selected if the first argument is not a recognised sub-mode.
//
// After the first call to Parse(), the selected mode is returned by Mode().
// Mode specific flags are added by calling NewMode() and then the Add*()
// functions, before calling Parse() again.
//
// Flags for the sub-modes can be specified by the user between the mode and
// the arguments of the mode. The -help flag prints the flags and sub-modes of
// the current mode.
package modalflag
