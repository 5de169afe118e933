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

// Package prefs facilitates the storage of preferential values in the
// application. Values of type Bool, Int, Float and String are safe to read
// and write from different goroutines.
//
// Values are associated with a key by adding them to a Disk instance. The
// Disk type saves all associated values to a file in the form:
//
//	key :: value
//
// preceded by a single warning line. Keys in the file that have not been
// added to the Disk instance are preserved when the file is saved, so that
// different parts of the application can share the same file.
//
// Values can be overridden from the command line with the commandline stack.
// A string of the form "key::value; key::value" is pushed onto the stack
// before the preferences are loaded. When a key is loaded the command line
// value takes priority over the value in the file.
package prefs
